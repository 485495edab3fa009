package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alinapilipuk-web/kspro/models"
	"github.com/alinapilipuk-web/kspro/repositories"
)

func newMatchFixture(t *testing.T) (MatchService, int) {
	t.Helper()
	ctx := context.Background()
	store := repositories.NewEmptyMemoryStore()

	c := &models.Championship{Name: "Liga", Season: "2025", TournamentType: models.TournamentLeague}
	if err := store.Championships().Create(ctx, c); err != nil {
		t.Fatalf("championship Create() error: %v", err)
	}
	for _, name := range []string{"Home", "Away"} {
		if err := store.Teams().Create(ctx, &models.Team{Name: name, ChampionshipID: c.ID}); err != nil {
			t.Fatalf("team Create() error: %v", err)
		}
	}

	svc := NewMatchService(store.Matches(), store.Teams(), store.Championships())
	return svc, c.ID
}

func validMatchInput(championshipID int) MatchInput {
	return MatchInput{
		ChampionshipID: championshipID,
		Round:          1,
		Date:           time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		HomeTeam:       "Home",
		AwayTeam:       "Away",
	}
}

func TestMatchCreateValidation(t *testing.T) {
	svc, championshipID := newMatchFixture(t)
	ctx := context.Background()

	winner := "Home"
	stranger := "Stranger"
	one := 1

	tests := []struct {
		name    string
		mutate  func(*MatchInput)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(in *MatchInput) {},
		},
		{
			name:    "missing home team",
			mutate:  func(in *MatchInput) { in.HomeTeam = "  " },
			wantErr: ErrMatchTeamsRequired,
		},
		{
			name:    "same teams",
			mutate:  func(in *MatchInput) { in.AwayTeam = "Home" },
			wantErr: ErrSameTeams,
		},
		{
			name:    "missing date",
			mutate:  func(in *MatchInput) { in.Date = time.Time{} },
			wantErr: ErrMatchDateRequired,
		},
		{
			name:    "unknown championship",
			mutate:  func(in *MatchInput) { in.ChampionshipID = 999 },
			wantErr: ErrNoChampionship,
		},
		{
			name:    "team outside championship",
			mutate:  func(in *MatchInput) { in.AwayTeam = "Ghost" },
			wantErr: ErrMatchUnknownTeam,
		},
		{
			name: "technical defeat without winner",
			mutate: func(in *MatchInput) {
				in.IsFinished = true
				in.IsTechnicalDefeat = true
			},
			wantErr: ErrInvalidTechWinner,
		},
		{
			name: "technical winner not playing",
			mutate: func(in *MatchInput) {
				in.IsFinished = true
				in.IsTechnicalDefeat = true
				in.TechnicalWinner = &stranger
			},
			wantErr: ErrInvalidTechWinner,
		},
		{
			name: "penalty on unfinished match",
			mutate: func(in *MatchInput) {
				in.PenaltyHome = &one
			},
			wantErr: ErrPenaltyNotApplicable,
		},
		{
			name: "penalty winner not playing",
			mutate: func(in *MatchInput) {
				in.IsFinished = true
				in.HomeScore = &one
				in.AwayScore = &one
				in.PenaltyWinner = &stranger
			},
			wantErr: ErrInvalidPenaltyWinner,
		},
		{
			name: "penalty winner with technical defeat",
			mutate: func(in *MatchInput) {
				in.IsFinished = true
				in.IsTechnicalDefeat = true
				in.TechnicalWinner = &winner
				in.PenaltyWinner = &winner
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validMatchInput(championshipID)
			tt.mutate(&input)

			_, err := svc.Create(ctx, input)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Create() error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMatchCreateTechnicalDefeatClearsScores(t *testing.T) {
	svc, championshipID := newMatchFixture(t)
	ctx := context.Background()

	winner := "Away"
	three := 3
	input := validMatchInput(championshipID)
	input.IsFinished = true
	input.IsTechnicalDefeat = true
	input.TechnicalWinner = &winner
	input.HomeScore = &three
	input.AwayScore = &three

	m, err := svc.Create(ctx, input)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if m.HomeScore != nil || m.AwayScore != nil {
		t.Errorf("technical defeat must clear scores, got %v:%v", m.HomeScore, m.AwayScore)
	}
	if m.TechnicalWinner == nil || *m.TechnicalWinner != "Away" {
		t.Errorf("technical winner not kept, got %v", m.TechnicalWinner)
	}
}

func TestMatchUpdateNotFound(t *testing.T) {
	svc, championshipID := newMatchFixture(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, 404, validMatchInput(championshipID))
	if !errors.Is(err, ErrMatchNotFound) {
		t.Errorf("Update() error = %v, want ErrMatchNotFound", err)
	}
}

func TestMatchDeleteNotFound(t *testing.T) {
	svc, _ := newMatchFixture(t)
	if err := svc.Delete(context.Background(), 404); !errors.Is(err, ErrMatchNotFound) {
		t.Errorf("Delete() error = %v, want ErrMatchNotFound", err)
	}
}

func TestMatchListEmptyIsNotNil(t *testing.T) {
	svc, championshipID := newMatchFixture(t)

	matches, err := svc.ListByChampionship(context.Background(), &championshipID)
	if err != nil {
		t.Fatalf("ListByChampionship() error: %v", err)
	}
	if matches == nil {
		t.Error("ListByChampionship() must return an empty slice, not nil")
	}
}
