package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alinapilipuk-web/kspro/models"
	"github.com/alinapilipuk-web/kspro/repositories"
)

func newGoalFixture(t *testing.T) (GoalService, int, int) {
	t.Helper()
	ctx := context.Background()
	store := repositories.NewEmptyMemoryStore()

	two := 2
	zero := 0
	finished := &models.Match{
		ChampionshipID: 1,
		HomeTeam:       "Home",
		AwayTeam:       "Away",
		Date:           time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		HomeScore:      &two,
		AwayScore:      &zero,
		IsFinished:     true,
	}
	if err := store.Matches().Create(ctx, finished); err != nil {
		t.Fatalf("match Create() error: %v", err)
	}
	upcoming := &models.Match{
		ChampionshipID: 1,
		HomeTeam:       "Home",
		AwayTeam:       "Away",
		Date:           time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := store.Matches().Create(ctx, upcoming); err != nil {
		t.Fatalf("match Create() error: %v", err)
	}

	return NewGoalService(store.Goals(), store.Matches()), finished.ID, upcoming.ID
}

func TestGoalAddValidation(t *testing.T) {
	svc, finishedID, upcomingID := newGoalFixture(t)
	ctx := context.Background()

	minute := func(v int) *int { return &v }

	tests := []struct {
		name    string
		input   AddGoalInput
		wantErr error
	}{
		{
			name:  "valid",
			input: AddGoalInput{MatchID: finishedID, PlayerName: "Scorer", TeamName: "Home", Minute: minute(12), GoalType: models.GoalRegular},
		},
		{
			name:  "valid without minute",
			input: AddGoalInput{MatchID: finishedID, PlayerName: "Scorer", TeamName: "Home", GoalType: models.GoalOwnGoal},
		},
		{
			name:    "missing player",
			input:   AddGoalInput{MatchID: finishedID, PlayerName: " ", TeamName: "Home", GoalType: models.GoalRegular},
			wantErr: ErrGoalPlayerRequired,
		},
		{
			name:    "missing team",
			input:   AddGoalInput{MatchID: finishedID, PlayerName: "Scorer", GoalType: models.GoalRegular},
			wantErr: ErrGoalTeamRequired,
		},
		{
			name:    "bad goal type",
			input:   AddGoalInput{MatchID: finishedID, PlayerName: "Scorer", TeamName: "Home", GoalType: "header"},
			wantErr: ErrInvalidGoalType,
		},
		{
			name:    "minute too small",
			input:   AddGoalInput{MatchID: finishedID, PlayerName: "Scorer", TeamName: "Home", Minute: minute(0), GoalType: models.GoalRegular},
			wantErr: ErrInvalidGoalMinute,
		},
		{
			name:    "minute too large",
			input:   AddGoalInput{MatchID: finishedID, PlayerName: "Scorer", TeamName: "Home", Minute: minute(121), GoalType: models.GoalRegular},
			wantErr: ErrInvalidGoalMinute,
		},
		{
			name:    "match not found",
			input:   AddGoalInput{MatchID: 404, PlayerName: "Scorer", TeamName: "Home", GoalType: models.GoalRegular},
			wantErr: ErrMatchNotFound,
		},
		{
			name:    "match not finished",
			input:   AddGoalInput{MatchID: upcomingID, PlayerName: "Scorer", TeamName: "Home", GoalType: models.GoalRegular},
			wantErr: ErrMatchNotFinished,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(ctx, tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Add() error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Add() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGoalAddAndDeleteRoundTrip(t *testing.T) {
	svc, finishedID, _ := newGoalFixture(t)
	ctx := context.Background()

	minute := 30
	g, err := svc.Add(ctx, AddGoalInput{
		MatchID:    finishedID,
		PlayerName: "Scorer",
		TeamName:   "Home",
		Minute:     &minute,
		GoalType:   models.GoalPenalty,
	})
	if err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	goals, err := svc.ListByMatch(ctx, finishedID)
	if err != nil {
		t.Fatalf("ListByMatch() error: %v", err)
	}
	if len(goals) != 1 || goals[0].ID != g.ID {
		t.Fatalf("ListByMatch() = %+v, want the added goal", goals)
	}

	if err := svc.Delete(ctx, g.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	goals, _ = svc.ListByMatch(ctx, finishedID)
	if len(goals) != 0 {
		t.Errorf("after Delete, ListByMatch() = %+v, want empty", goals)
	}

	if err := svc.Delete(ctx, g.ID); !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("double Delete() = %v, want ErrGoalNotFound", err)
	}
}
