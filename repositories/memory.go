package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/alinapilipuk-web/kspro/models"
)

// MemoryStore — процессное хранилище на случай, когда база не
// сконфигурирована или недоступна. Отдаёт те же интерфейсы
// репозиториев, что и Postgres; отличается только долговечностью:
// мутации живут до конца процесса. Создаётся один раз на старте,
// вся мутация идёт через CRUD-контракт.
type MemoryStore struct {
	mu sync.RWMutex

	championships []models.Championship
	teams         []models.Team
	players       []models.Player
	matches       []models.Match
	goals         []models.MatchGoal

	nextID int
}

// NewMemoryStore создаёт хранилище, заполненное демонстрационным
// набором KS Liga.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{nextID: 1}
	seedFixtures(s)
	return s
}

// NewEmptyMemoryStore создаёт пустое хранилище (для тестов).
func NewEmptyMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) allocID() int {
	id := s.nextID
	s.nextID++
	return id
}

func (s *MemoryStore) Championships() ChampionshipRepository { return &memoryChampionshipRepo{s} }
func (s *MemoryStore) Teams() TeamRepository                 { return &memoryTeamRepo{s} }
func (s *MemoryStore) Matches() MatchRepository              { return &memoryMatchRepo{s} }
func (s *MemoryStore) Players() PlayerRepository             { return &memoryPlayerRepo{s} }
func (s *MemoryStore) Goals() GoalRepository                 { return &memoryGoalRepo{s} }

// --- championships ---

type memoryChampionshipRepo struct {
	s *MemoryStore
}

func (r *memoryChampionshipRepo) Create(_ context.Context, c *models.Championship) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c.ID = r.s.allocID()
	c.CreatedAt = time.Now()
	r.s.championships = append(r.s.championships, *c)
	return nil
}

func (r *memoryChampionshipRepo) GetByID(_ context.Context, id int) (*models.Championship, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.championships {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, ErrChampionshipNotFound
}

func (r *memoryChampionshipRepo) GetActive(_ context.Context) (*models.Championship, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.championships {
		if c.IsActive {
			out := c
			return &out, nil
		}
	}
	return nil, ErrNoActiveChampionship
}

func (r *memoryChampionshipRepo) List(_ context.Context) ([]models.Championship, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Championship, len(r.s.championships))
	copy(out, r.s.championships)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memoryChampionshipRepo) Update(_ context.Context, c *models.Championship) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.championships {
		if r.s.championships[i].ID == c.ID {
			c.CreatedAt = r.s.championships[i].CreatedAt
			r.s.championships[i] = *c
			return nil
		}
	}
	return ErrChampionshipNotFound
}

func (r *memoryChampionshipRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	idx := -1
	for i := range r.s.championships {
		if r.s.championships[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrChampionshipNotFound
	}
	r.s.championships = append(r.s.championships[:idx], r.s.championships[idx+1:]...)

	// Каскад, который в Postgres делает ON DELETE CASCADE.
	kept := r.s.teams[:0]
	for _, t := range r.s.teams {
		if t.ChampionshipID != id {
			kept = append(kept, t)
		}
	}
	r.s.teams = kept

	keptPlayers := r.s.players[:0]
	for _, p := range r.s.players {
		if p.ChampionshipID != id {
			keptPlayers = append(keptPlayers, p)
		}
	}
	r.s.players = keptPlayers

	removedMatches := make(map[int]struct{})
	keptMatches := r.s.matches[:0]
	for _, m := range r.s.matches {
		if m.ChampionshipID == id {
			removedMatches[m.ID] = struct{}{}
			continue
		}
		keptMatches = append(keptMatches, m)
	}
	r.s.matches = keptMatches

	keptGoals := r.s.goals[:0]
	for _, g := range r.s.goals {
		if _, gone := removedMatches[g.MatchID]; !gone {
			keptGoals = append(keptGoals, g)
		}
	}
	r.s.goals = keptGoals

	return nil
}

// --- teams ---

type memoryTeamRepo struct {
	s *MemoryStore
}

func (r *memoryTeamRepo) Create(_ context.Context, t *models.Team) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t.ID = r.s.allocID()
	t.CreatedAt = time.Now()
	r.s.teams = append(r.s.teams, *t)
	return nil
}

func (r *memoryTeamRepo) GetByID(_ context.Context, id int) (*models.Team, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, t := range r.s.teams {
		if t.ID == id {
			out := t
			return &out, nil
		}
	}
	return nil, ErrTeamNotFound
}

func (r *memoryTeamRepo) ListByChampionship(_ context.Context, championshipID *int) ([]models.Team, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Team, 0)
	for _, t := range r.s.teams {
		if championshipID == nil || t.ChampionshipID == *championshipID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memoryTeamRepo) Update(_ context.Context, t *models.Team) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.teams {
		if r.s.teams[i].ID == t.ID {
			t.CreatedAt = r.s.teams[i].CreatedAt
			t.LogoKey = r.s.teams[i].LogoKey
			r.s.teams[i] = *t
			return nil
		}
	}
	return ErrTeamNotFound
}

func (r *memoryTeamRepo) UpdateLogoKey(_ context.Context, teamID int, logoKey *string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.teams {
		if r.s.teams[i].ID == teamID {
			r.s.teams[i].LogoKey = logoKey
			return nil
		}
	}
	return ErrTeamNotFound
}

func (r *memoryTeamRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.teams {
		if r.s.teams[i].ID == id {
			r.s.teams = append(r.s.teams[:i], r.s.teams[i+1:]...)
			return nil
		}
	}
	return ErrTeamNotFound
}

// --- matches ---

type memoryMatchRepo struct {
	s *MemoryStore
}

func (r *memoryMatchRepo) Create(_ context.Context, m *models.Match) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m.ID = r.s.allocID()
	m.CreatedAt = time.Now()
	r.s.matches = append(r.s.matches, *m)
	return nil
}

func (r *memoryMatchRepo) GetByID(_ context.Context, id int) (*models.Match, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, m := range r.s.matches {
		if m.ID == id {
			out := m
			return &out, nil
		}
	}
	return nil, ErrMatchNotFound
}

func (r *memoryMatchRepo) ListByChampionship(_ context.Context, championshipID *int) ([]models.Match, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Match, 0)
	for _, m := range r.s.matches {
		if championshipID == nil || m.ChampionshipID == *championshipID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Round != out[j].Round {
			return out[i].Round < out[j].Round
		}
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *memoryMatchRepo) ListByStage(_ context.Context, championshipID int, stage string) ([]models.Match, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Match, 0)
	for _, m := range r.s.matches {
		if m.ChampionshipID != championshipID {
			continue
		}
		if m.CupStage == nil || *m.CupStage != stage {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *memoryMatchRepo) Update(_ context.Context, m *models.Match) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.matches {
		if r.s.matches[i].ID == m.ID {
			m.CreatedAt = r.s.matches[i].CreatedAt
			r.s.matches[i] = *m
			return nil
		}
	}
	return ErrMatchNotFound
}

func (r *memoryMatchRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.matches {
		if r.s.matches[i].ID == id {
			r.s.matches = append(r.s.matches[:i], r.s.matches[i+1:]...)

			kept := r.s.goals[:0]
			for _, g := range r.s.goals {
				if g.MatchID != id {
					kept = append(kept, g)
				}
			}
			r.s.goals = kept
			return nil
		}
	}
	return ErrMatchNotFound
}

// --- players ---

type memoryPlayerRepo struct {
	s *MemoryStore
}

func (r *memoryPlayerRepo) Create(_ context.Context, p *models.Player) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.ID = r.s.allocID()
	p.CreatedAt = time.Now()
	r.s.players = append(r.s.players, *p)
	return nil
}

func (r *memoryPlayerRepo) GetByID(_ context.Context, id int) (*models.Player, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.players {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, ErrPlayerNotFound
}

func (r *memoryPlayerRepo) ListByChampionship(_ context.Context, championshipID *int) ([]models.Player, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Player, 0)
	for _, p := range r.s.players {
		if championshipID == nil || p.ChampionshipID == *championshipID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Goals != out[j].Goals {
			return out[i].Goals > out[j].Goals
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *memoryPlayerRepo) Update(_ context.Context, p *models.Player) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.players {
		if r.s.players[i].ID == p.ID {
			p.CreatedAt = r.s.players[i].CreatedAt
			r.s.players[i] = *p
			return nil
		}
	}
	return ErrPlayerNotFound
}

func (r *memoryPlayerRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.players {
		if r.s.players[i].ID == id {
			r.s.players = append(r.s.players[:i], r.s.players[i+1:]...)
			return nil
		}
	}
	return ErrPlayerNotFound
}

// --- goal events ---

type memoryGoalRepo struct {
	s *MemoryStore
}

func (r *memoryGoalRepo) Create(_ context.Context, g *models.MatchGoal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	found := false
	for _, m := range r.s.matches {
		if m.ID == g.MatchID {
			found = true
			break
		}
	}
	if !found {
		return ErrGoalInvalidMatch
	}

	g.ID = r.s.allocID()
	g.CreatedAt = time.Now()
	r.s.goals = append(r.s.goals, *g)
	return nil
}

func (r *memoryGoalRepo) ListByMatch(_ context.Context, matchID int) ([]models.MatchGoal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.MatchGoal, 0)
	for _, g := range r.s.goals {
		if g.MatchID == matchID {
			out = append(out, g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		switch {
		case out[i].Minute == nil:
			return false
		case out[j].Minute == nil:
			return true
		case *out[i].Minute != *out[j].Minute:
			return *out[i].Minute < *out[j].Minute
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *memoryGoalRepo) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.goals {
		if r.s.goals[i].ID == id {
			r.s.goals = append(r.s.goals[:i], r.s.goals[i+1:]...)
			return nil
		}
	}
	return ErrGoalNotFound
}
