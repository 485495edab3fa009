package standings

import (
	"sort"

	"github.com/alinapilipuk-web/kspro/models"
)

// CupStages — фиксированная последовательность стадий кубка,
// от 1/32 финала до финала.
var CupStages = []string{
	"1/32 final",
	"1/16 final",
	"1/8 final",
	"1/4 final",
	"1/2 final",
	"Final",
}

type StageGroup struct {
	Stage   string         `json:"stage"`
	Matches []models.Match `json:"matches"`
}

// GroupByStage раскладывает матчи кубка по шести каноническим стадиям.
// Принадлежность стадии — точное совпадение строки-метки. Пустая стадия
// присутствует в результате как группа с пустым списком, а не отсутствует.
// Внутри стадии матчи упорядочены по дате по возрастанию.
func GroupByStage(matches []models.Match) []StageGroup {
	groups := make([]StageGroup, len(CupStages))
	byStage := make(map[string]int, len(CupStages))
	for i, stage := range CupStages {
		groups[i] = StageGroup{Stage: stage, Matches: []models.Match{}}
		byStage[stage] = i
	}

	for _, m := range matches {
		if m.CupStage == nil {
			continue
		}
		i, ok := byStage[*m.CupStage]
		if !ok {
			// Нераспознанная метка: матч не попадает ни в одну группу.
			continue
		}
		groups[i].Matches = append(groups[i].Matches, m)
	}

	for i := range groups {
		ms := groups[i].Matches
		sort.SliceStable(ms, func(a, b int) bool {
			return ms[a].Date.Before(ms[b].Date)
		})
	}

	return groups
}

// OrphanMatches возвращает матчи с меткой стадии, не входящей в
// CupStages. Такие матчи не видны в сетке; вызывающий может их
// залогировать для операторов.
func OrphanMatches(matches []models.Match) []models.Match {
	known := make(map[string]struct{}, len(CupStages))
	for _, stage := range CupStages {
		known[stage] = struct{}{}
	}

	var orphans []models.Match
	for _, m := range matches {
		if m.CupStage == nil {
			continue
		}
		if _, ok := known[*m.CupStage]; !ok {
			orphans = append(orphans, m)
		}
	}
	return orphans
}
