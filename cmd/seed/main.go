// Команда seed наполняет базу демонстрационным чемпионатом:
// четыре команды, полный круг матчей и случайные бомбардиры.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/alinapilipuk-web/kspro/config"
	"github.com/alinapilipuk-web/kspro/db"
	"github.com/alinapilipuk-web/kspro/models"
	"github.com/alinapilipuk-web/kspro/repositories"
	"github.com/brianvoe/gofakeit/v6"
)

const playersPerTeam = 5

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	if cfg.DatabaseURL == "" {
		logger.Error("DATABASE_URL is required for seeding")
		os.Exit(1)
	}

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbConn.Close()

	championshipRepo := repositories.NewPostgresChampionshipRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)

	ctx := context.Background()

	championship := &models.Championship{
		Name:           "KS Liga",
		Season:         "2024-2025",
		IsActive:       true,
		TournamentType: models.TournamentLeague,
	}
	if err := championshipRepo.Create(ctx, championship); err != nil {
		logger.Error("failed to create championship", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("championship created", slog.Int("id", championship.ID), slog.String("name", championship.Name))

	teamNames := []string{"Динамо Київ", "Шахтар Донецьк", "Дніпро-1", "Ворскла Полтава"}
	for _, name := range teamNames {
		team := &models.Team{Name: name, ChampionshipID: championship.ID}
		if err := teamRepo.Create(ctx, team); err != nil {
			logger.Error("failed to create team", slog.String("name", name), slog.Any("error", err))
			os.Exit(1)
		}

		for i := 0; i < playersPerTeam; i++ {
			player := &models.Player{
				Name:           gofakeit.Name(),
				Team:           name,
				Goals:          gofakeit.IntRange(0, 12),
				ChampionshipID: championship.ID,
			}
			if err := playerRepo.Create(ctx, player); err != nil {
				logger.Error("failed to create player", slog.Any("error", err))
				os.Exit(1)
			}
		}
	}
	logger.Info("teams and players created", slog.Int("teams", len(teamNames)))

	// Один полный круг: каждая команда играет с каждой один раз.
	// Первая половина туров сыграна, остальные ждут своей даты.
	round := 1
	matchDate := gofakeit.DateRange(
		time.Now().AddDate(0, -2, 0),
		time.Now().AddDate(0, -1, 0),
	)
	for i := 0; i < len(teamNames); i++ {
		for j := i + 1; j < len(teamNames); j++ {
			finished := round <= len(teamNames)-1
			match := &models.Match{
				ChampionshipID: championship.ID,
				HomeTeam:       teamNames[i],
				AwayTeam:       teamNames[j],
				Round:          round,
				Date:           matchDate,
				IsFinished:     finished,
			}
			if finished {
				home := gofakeit.IntRange(0, 4)
				away := gofakeit.IntRange(0, 4)
				match.HomeScore = &home
				match.AwayScore = &away
			}
			if err := matchRepo.Create(ctx, match); err != nil {
				logger.Error("failed to create match", slog.Any("error", err))
				os.Exit(1)
			}
			round++
			matchDate = matchDate.AddDate(0, 0, 7)
		}
	}
	logger.Info("matches created", slog.Int("count", round-1))

	logger.Info("seeding complete")
}
