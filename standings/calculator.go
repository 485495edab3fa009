package standings

import (
	"sort"

	"github.com/alinapilipuk-web/kspro/models"
)

// Row — строка турнирной таблицы одной команды.
type Row struct {
	Team         string `json:"name"`
	Games        int    `json:"games"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"gf"`
	GoalsAgainst int    `json:"ga"`
	Points       int    `json:"pts"`
}

func (r Row) GoalDiff() int {
	return r.GoalsFor - r.GoalsAgainst
}

// counts сообщает, идёт ли матч в зачёт таблицы: он должен быть завершён,
// не быть техническим поражением и иметь оба счёта.
func counts(m models.Match) bool {
	return m.IsFinished && !m.IsTechnicalDefeat && m.HomeScore != nil && m.AwayScore != nil
}

// Calculate строит таблицу чемпионата из списка команд и матчей.
// Функция чистая и детерминированная: одинаковый вход даёт одинаковый
// выход, поэтому таблицу безопасно пересчитывать при каждом обновлении.
//
// Связь матч→команда — по имени команды. Если матч ссылается на имя,
// которого нет в списке команд, эта сторона молча не учитывается.
// Сортировка: очки по убыванию, при равенстве — разница мячей по
// убыванию; при полном равенстве сохраняется исходный порядок команд.
func Calculate(teams []models.Team, matches []models.Match) []Row {
	rows := make([]Row, len(teams))
	index := make(map[string]*Row, len(teams))
	for i, t := range teams {
		rows[i] = Row{Team: t.Name}
		index[t.Name] = &rows[i]
	}

	for _, m := range matches {
		if !counts(m) {
			continue
		}
		home := index[m.HomeTeam]
		away := index[m.AwayTeam]
		hs, as := *m.HomeScore, *m.AwayScore

		if home != nil {
			home.Games++
			home.GoalsFor += hs
			home.GoalsAgainst += as
		}
		if away != nil {
			away.Games++
			away.GoalsFor += as
			away.GoalsAgainst += hs
		}

		switch {
		case hs > as:
			if home != nil {
				home.Wins++
				home.Points += 3
			}
			if away != nil {
				away.Losses++
			}
		case hs < as:
			if away != nil {
				away.Wins++
				away.Points += 3
			}
			if home != nil {
				home.Losses++
			}
		default:
			if home != nil {
				home.Draws++
				home.Points++
			}
			if away != nil {
				away.Draws++
				away.Points++
			}
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].GoalDiff() > rows[j].GoalDiff()
	})

	return rows
}

// UnknownTeams возвращает имена команд из зачётных матчей, которых нет в
// списке команд чемпионата. Calculate такие стороны молча пропускает;
// этот срез нужен вызывающему, чтобы хотя бы залогировать их.
func UnknownTeams(teams []models.Team, matches []models.Match) []string {
	known := make(map[string]struct{}, len(teams))
	for _, t := range teams {
		known[t.Name] = struct{}{}
	}

	seen := make(map[string]struct{})
	var unknown []string
	for _, m := range matches {
		if !counts(m) {
			continue
		}
		for _, name := range []string{m.HomeTeam, m.AwayTeam} {
			if _, ok := known[name]; ok {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			unknown = append(unknown, name)
		}
	}
	return unknown
}
