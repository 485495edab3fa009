package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alinapilipuk-web/kspro/models"
	"github.com/alinapilipuk-web/kspro/repositories"
)

var (
	ErrGoalPlayerRequired = errors.New("goal scorer name is required")
	ErrGoalTeamRequired   = errors.New("goal team name is required")
	ErrGoalCreateFailed   = errors.New("failed to add goal event")
	ErrGoalDeleteFailed   = errors.New("failed to delete goal event")
)

type GoalService interface {
	ListByMatch(ctx context.Context, matchID int) ([]models.MatchGoal, error)
	Add(ctx context.Context, input AddGoalInput) (*models.MatchGoal, error)
	Delete(ctx context.Context, id int) error
}

type AddGoalInput struct {
	MatchID    int             `json:"match_id"`
	PlayerName string          `json:"player_name"`
	TeamName   string          `json:"team_name"`
	Minute     *int            `json:"minute,omitempty"`
	GoalType   models.GoalType `json:"goal_type"`
}

type goalService struct {
	goalRepo  repositories.GoalRepository
	matchRepo repositories.MatchRepository
}

func NewGoalService(goalRepo repositories.GoalRepository, matchRepo repositories.MatchRepository) GoalService {
	return &goalService{goalRepo: goalRepo, matchRepo: matchRepo}
}

func (s *goalService) ListByMatch(ctx context.Context, matchID int) ([]models.MatchGoal, error) {
	goals, err := s.goalRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals for match %d: %w", matchID, err)
	}
	if goals == nil {
		return []models.MatchGoal{}, nil
	}
	return goals, nil
}

func (s *goalService) Add(ctx context.Context, input AddGoalInput) (*models.MatchGoal, error) {
	input.PlayerName = strings.TrimSpace(input.PlayerName)
	input.TeamName = strings.TrimSpace(input.TeamName)

	if input.PlayerName == "" {
		return nil, ErrGoalPlayerRequired
	}
	if input.TeamName == "" {
		return nil, ErrGoalTeamRequired
	}
	if !input.GoalType.Valid() {
		return nil, ErrInvalidGoalType
	}
	if input.Minute != nil && (*input.Minute < 1 || *input.Minute > 120) {
		return nil, ErrInvalidGoalMinute
	}

	m, err := s.matchRepo.GetByID(ctx, input.MatchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match %d: %w", input.MatchID, err)
	}
	// Голы привязываются только к сыгранным матчам.
	if !m.IsFinished {
		return nil, ErrMatchNotFinished
	}

	g := &models.MatchGoal{
		MatchID:    input.MatchID,
		PlayerName: input.PlayerName,
		TeamName:   input.TeamName,
		Minute:     input.Minute,
		GoalType:   input.GoalType,
	}
	if err := s.goalRepo.Create(ctx, g); err != nil {
		if errors.Is(err, repositories.ErrGoalInvalidMatch) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrGoalCreateFailed, err)
	}
	return g, nil
}

func (s *goalService) Delete(ctx context.Context, id int) error {
	if err := s.goalRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrGoalNotFound) {
			return ErrGoalNotFound
		}
		return fmt.Errorf("%w (id: %d): %w", ErrGoalDeleteFailed, id, err)
	}
	return nil
}
