package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/alinapilipuk-web/kspro/models"
	"github.com/alinapilipuk-web/kspro/repositories"
	"github.com/alinapilipuk-web/kspro/standings"
	"golang.org/x/sync/errgroup"
)

// Overview — всё, что нужно странице чемпионата за один запрос.
type Overview struct {
	Championship models.Championship        `json:"championship"`
	Teams        []models.Team              `json:"teams"`
	Table        []standings.Row            `json:"table,omitempty"`
	Bracket      []standings.StageGroup     `json:"bracket,omitempty"`
	Calendar     []models.Match             `json:"calendar"`
	Results      []models.Match             `json:"results"`
	Scorers      []models.Player            `json:"scorers"`
	Goals        map[int][]models.MatchGoal `json:"goals"`
}

type OverviewService interface {
	ChampionshipOverview(ctx context.Context, championshipID int) (*Overview, error)
}

type overviewService struct {
	championshipRepo repositories.ChampionshipRepository
	teamService      TeamService
	matchRepo        repositories.MatchRepository
	playerRepo       repositories.PlayerRepository
	goalRepo         repositories.GoalRepository
	logger           *slog.Logger
}

func NewOverviewService(
	championshipRepo repositories.ChampionshipRepository,
	teamService TeamService,
	matchRepo repositories.MatchRepository,
	playerRepo repositories.PlayerRepository,
	goalRepo repositories.GoalRepository,
	logger *slog.Logger,
) OverviewService {
	return &overviewService{
		championshipRepo: championshipRepo,
		teamService:      teamService,
		matchRepo:        matchRepo,
		playerRepo:       playerRepo,
		goalRepo:         goalRepo,
		logger:           logger,
	}
}

// ChampionshipOverview загружает команды, матчи и игроков чемпионата
// параллельно; ошибка любой из трёх загрузок проваливает всю выборку
// (частично заполненная страница хуже, чем честная ошибка). Затем для
// каждого завершённого матча параллельно подтягиваются события голов —
// здесь сбой одного матча изолирован и даёт ему пустой список.
func (s *overviewService) ChampionshipOverview(ctx context.Context, championshipID int) (*Overview, error) {
	championship, err := s.championshipRepo.GetByID(ctx, championshipID)
	if err != nil {
		if errors.Is(err, repositories.ErrChampionshipNotFound) {
			return nil, ErrChampionshipNotFound
		}
		return nil, fmt.Errorf("failed to get championship %d: %w", championshipID, err)
	}

	var (
		teams   []models.Team
		matches []models.Match
		players []models.Player
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		teams, err = s.teamService.ListByChampionship(gCtx, &championshipID)
		return err
	})
	g.Go(func() error {
		var err error
		matches, err = s.matchRepo.ListByChampionship(gCtx, &championshipID)
		return err
	})
	g.Go(func() error {
		var err error
		players, err = s.playerRepo.ListByChampionship(gCtx, &championshipID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load championship %d data: %w", championshipID, err)
	}

	ov := &Overview{
		Championship: *championship,
		Teams:        teams,
		Calendar:     make([]models.Match, 0),
		Results:      make([]models.Match, 0),
		Scorers:      players,
		Goals:        make(map[int][]models.MatchGoal),
	}
	for _, m := range matches {
		if m.IsFinished {
			ov.Results = append(ov.Results, m)
		} else {
			ov.Calendar = append(ov.Calendar, m)
		}
	}

	switch championship.TournamentType {
	case models.TournamentCup:
		ov.Bracket = standings.GroupByStage(matches)
		if orphans := standings.OrphanMatches(matches); len(orphans) > 0 {
			s.logger.Warn("matches with unknown cup stage are hidden from the bracket",
				slog.Int("championship_id", championshipID),
				slog.Int("count", len(orphans)))
		}
	default:
		ov.Table = standings.Calculate(teams, matches)
		if unknown := standings.UnknownTeams(teams, matches); len(unknown) > 0 {
			s.logger.Warn("matches reference teams missing from the championship",
				slog.Int("championship_id", championshipID),
				slog.Any("teams", unknown))
		}
	}

	// Второй веер: события голов по завершённым матчам. Сбой одного
	// матча не валит страницу — матч просто остаётся без событий.
	var mu sync.Mutex
	gg, ggCtx := errgroup.WithContext(ctx)
	for _, m := range ov.Results {
		match := m
		gg.Go(func() error {
			goals, err := s.goalRepo.ListByMatch(ggCtx, match.ID)
			if err != nil {
				s.logger.Warn("failed to load goal events, match rendered without them",
					slog.Int("match_id", match.ID),
					slog.Any("error", err))
				goals = []models.MatchGoal{}
			}
			if goals == nil {
				goals = []models.MatchGoal{}
			}
			mu.Lock()
			ov.Goals[match.ID] = goals
			mu.Unlock()
			return nil
		})
	}
	// Горутины выше никогда не возвращают ошибку.
	_ = gg.Wait()

	return ov, nil
}
