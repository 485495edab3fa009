package services

import (
	"context"
	"io"
	"testing"

	"github.com/alinapilipuk-web/kspro/models"
	"github.com/alinapilipuk-web/kspro/repositories"
	"github.com/alinapilipuk-web/kspro/storage"
)

// recordingUploader запоминает удалённые ключи хранилища.
type recordingUploader struct {
	deleted []string
}

func (u *recordingUploader) Upload(_ context.Context, key string, _ string, _ io.Reader) (*storage.UploadResult, error) {
	return &storage.UploadResult{Key: key}, nil
}

func (u *recordingUploader) Delete(_ context.Context, key string) error {
	u.deleted = append(u.deleted, key)
	return nil
}

func (u *recordingUploader) GetPublicURL(key string) string {
	return "https://cdn.test/" + key
}

func newTeamFixture(t *testing.T, uploader storage.FileUploader) (TeamService, *repositories.MemoryStore, int) {
	t.Helper()
	ctx := context.Background()
	store := repositories.NewEmptyMemoryStore()

	c := &models.Championship{Name: "Liga", Season: "2025", TournamentType: models.TournamentLeague}
	if err := store.Championships().Create(ctx, c); err != nil {
		t.Fatalf("championship Create() error: %v", err)
	}

	svc := NewTeamService(store.Teams(), store.Championships(), uploader)
	return svc, store, c.ID
}

func TestTeamDeleteRemovesLogoFromStorage(t *testing.T) {
	uploader := &recordingUploader{}
	svc, store, championshipID := newTeamFixture(t, uploader)
	ctx := context.Background()

	team, err := svc.Create(ctx, CreateTeamInput{Name: "Фенікс", ChampionshipID: championshipID})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	logoKey := "teams/1/logo"
	if err := store.Teams().UpdateLogoKey(ctx, team.ID, &logoKey); err != nil {
		t.Fatalf("UpdateLogoKey() error: %v", err)
	}

	if err := svc.Delete(ctx, team.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}

	if len(uploader.deleted) != 1 || uploader.deleted[0] != logoKey {
		t.Errorf("deleted storage keys = %v, want [%s]", uploader.deleted, logoKey)
	}
}

func TestTeamDeleteWithoutLogoSkipsStorage(t *testing.T) {
	uploader := &recordingUploader{}
	svc, _, championshipID := newTeamFixture(t, uploader)
	ctx := context.Background()

	team, err := svc.Create(ctx, CreateTeamInput{Name: "Зоря", ChampionshipID: championshipID})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if err := svc.Delete(ctx, team.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}

	if len(uploader.deleted) != 0 {
		t.Errorf("deleted storage keys = %v, want none", uploader.deleted)
	}
}
