package repositories

import (
	"time"

	"github.com/alinapilipuk-web/kspro/models"
)

// Демонстрационный набор KS Liga. Используется, когда база данных не
// сконфигурирована или недоступна, чтобы сайту всегда было что показать.
func seedFixtures(s *MemoryStore) {
	now := time.Now()
	date := func(value string) time.Time {
		t, _ := time.Parse("2006-01-02", value)
		return t
	}
	intPtr := func(v int) *int { return &v }

	s.championships = []models.Championship{
		{
			ID:             s.allocID(),
			Name:           "KS Liga",
			Season:         "2024-2025",
			IsActive:       true,
			TournamentType: models.TournamentLeague,
			CreatedAt:      now,
		},
		{
			ID:             s.allocID(),
			Name:           "KS Liga Cup",
			Season:         "2024-2025",
			IsActive:       false,
			TournamentType: models.TournamentCup,
			CreatedAt:      now,
		},
	}
	leagueID := s.championships[0].ID

	for _, name := range []string{
		"Динамо Київ",
		"Шахтар Донецьк",
		"Дніпро-1",
		"Ворскла Полтава",
	} {
		s.teams = append(s.teams, models.Team{
			ID:             s.allocID(),
			Name:           name,
			ChampionshipID: leagueID,
			CreatedAt:      now,
		})
	}

	s.matches = []models.Match{
		{
			ID:             s.allocID(),
			ChampionshipID: leagueID,
			Round:          1,
			Date:           date("2024-08-15"),
			HomeTeam:       "Динамо Київ",
			AwayTeam:       "Шахтар Донецьк",
			HomeScore:      intPtr(2),
			AwayScore:      intPtr(1),
			IsFinished:     true,
			CreatedAt:      now,
		},
		{
			ID:             s.allocID(),
			ChampionshipID: leagueID,
			Round:          1,
			Date:           date("2024-08-15"),
			HomeTeam:       "Дніпро-1",
			AwayTeam:       "Ворскла Полтава",
			HomeScore:      intPtr(0),
			AwayScore:      intPtr(0),
			IsFinished:     true,
			CreatedAt:      now,
		},
		{
			ID:             s.allocID(),
			ChampionshipID: leagueID,
			Round:          2,
			Date:           date("2024-08-22"),
			HomeTeam:       "Шахтар Донецьк",
			AwayTeam:       "Дніпро-1",
			IsFinished:     false,
			CreatedAt:      now,
		},
	}

	s.players = []models.Player{
		{
			ID:             s.allocID(),
			Name:           "Андрій Ярмоленко",
			Team:           "Динамо Київ",
			Goals:          5,
			ChampionshipID: leagueID,
			CreatedAt:      now,
		},
		{
			ID:             s.allocID(),
			Name:           "Георгій Судаков",
			Team:           "Шахтар Донецьк",
			Goals:          3,
			ChampionshipID: leagueID,
			CreatedAt:      now,
		},
		{
			ID:             s.allocID(),
			Name:           "Олександр Пихальонок",
			Team:           "Дніпро-1",
			Goals:          2,
			ChampionshipID: leagueID,
			CreatedAt:      now,
		},
	}
}
