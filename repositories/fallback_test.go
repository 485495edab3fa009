package repositories

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/alinapilipuk-web/kspro/models"
)

var errPrimaryDown = errors.New("primary store unavailable")

// failingChampionshipRepo имитирует недоступное основное хранилище.
type failingChampionshipRepo struct{}

func (failingChampionshipRepo) Create(context.Context, *models.Championship) error {
	return errPrimaryDown
}
func (failingChampionshipRepo) GetByID(context.Context, int) (*models.Championship, error) {
	return nil, errPrimaryDown
}
func (failingChampionshipRepo) GetActive(context.Context) (*models.Championship, error) {
	return nil, errPrimaryDown
}
func (failingChampionshipRepo) List(context.Context) ([]models.Championship, error) {
	return nil, errPrimaryDown
}
func (failingChampionshipRepo) Update(context.Context, *models.Championship) error {
	return errPrimaryDown
}
func (failingChampionshipRepo) Delete(context.Context, int) error {
	return errPrimaryDown
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFallbackReadsDegradeToFixtures(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewFallbackChampionshipRepository(failingChampionshipRepo{}, store.Championships(), discardLogger())

	active, err := repo.GetActive(ctx)
	if err != nil {
		t.Fatalf("GetActive() must fall back, got error: %v", err)
	}
	if active.Name != "KS Liga" {
		t.Errorf("fallback active championship = %q, want KS Liga", active.Name)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() must fall back, got error: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("fallback championship list = %d entries, want 2", len(list))
	}
}

func TestFallbackWritesPropagatePrimaryError(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewFallbackChampionshipRepository(failingChampionshipRepo{}, store.Championships(), discardLogger())

	c := &models.Championship{Name: "New", Season: "2025", TournamentType: models.TournamentLeague}
	if err := repo.Create(ctx, c); !errors.Is(err, errPrimaryDown) {
		t.Errorf("Create() = %v, want the primary error", err)
	}
	if err := repo.Update(ctx, c); !errors.Is(err, errPrimaryDown) {
		t.Errorf("Update() = %v, want the primary error", err)
	}
	if err := repo.Delete(ctx, 1); !errors.Is(err, errPrimaryDown) {
		t.Errorf("Delete() = %v, want the primary error", err)
	}
}

func TestFallbackNotFoundIsNotDegraded(t *testing.T) {
	ctx := context.Background()
	// Основное хранилище живо, записи просто нет: откат не нужен,
	// иначе фикстурные данные подменили бы честный 404.
	primary := NewEmptyMemoryStore()
	fallback := NewMemoryStore()
	repo := NewFallbackChampionshipRepository(primary.Championships(), fallback.Championships(), discardLogger())

	if _, err := repo.GetByID(ctx, 1); !errors.Is(err, ErrChampionshipNotFound) {
		t.Errorf("GetByID() = %v, want ErrChampionshipNotFound from the primary", err)
	}
	if _, err := repo.GetActive(ctx); !errors.Is(err, ErrNoActiveChampionship) {
		t.Errorf("GetActive() = %v, want ErrNoActiveChampionship from the primary", err)
	}
}
