package standings

import (
	"reflect"
	"testing"

	"github.com/alinapilipuk-web/kspro/models"
)

func intPtr(v int) *int { return &v }

func teamList(names ...string) []models.Team {
	teams := make([]models.Team, len(names))
	for i, name := range names {
		teams[i] = models.Team{ID: i + 1, Name: name}
	}
	return teams
}

func finishedMatch(home, away string, hs, as int) models.Match {
	return models.Match{
		HomeTeam:   home,
		AwayTeam:   away,
		HomeScore:  intPtr(hs),
		AwayScore:  intPtr(as),
		IsFinished: true,
	}
}

func TestCalculateBasicTable(t *testing.T) {
	teams := teamList("A", "B", "C", "D")
	matches := []models.Match{
		finishedMatch("A", "B", 2, 1),
		finishedMatch("C", "D", 0, 0),
	}

	got := Calculate(teams, matches)

	want := []Row{
		{Team: "A", Games: 1, Wins: 1, GoalsFor: 2, GoalsAgainst: 1, Points: 3},
		{Team: "C", Games: 1, Draws: 1, Points: 1},
		{Team: "D", Games: 1, Draws: 1, Points: 1},
		{Team: "B", Games: 1, Losses: 1, GoalsFor: 1, GoalsAgainst: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Calculate() = %+v, want %+v", got, want)
	}
}

func TestCalculateSkipsUnfinishedMatches(t *testing.T) {
	teams := teamList("A", "B")
	matches := []models.Match{
		{HomeTeam: "A", AwayTeam: "B", IsFinished: false},
		{HomeTeam: "A", AwayTeam: "B", HomeScore: intPtr(3), AwayScore: intPtr(0), IsFinished: false},
	}

	for _, row := range Calculate(teams, matches) {
		if row.Games != 0 || row.Points != 0 {
			t.Errorf("unfinished matches must not affect the table, got row %+v", row)
		}
	}
}

func TestCalculateSkipsTechnicalDefeats(t *testing.T) {
	winner := "A"
	teams := teamList("A", "B")
	matches := []models.Match{
		{
			HomeTeam:          "A",
			AwayTeam:          "B",
			IsFinished:        true,
			IsTechnicalDefeat: true,
			TechnicalWinner:   &winner,
		},
	}

	for _, row := range Calculate(teams, matches) {
		if row.Games != 0 || row.Points != 0 {
			t.Errorf("technical defeats must not affect the table, got row %+v", row)
		}
	}
}

func TestCalculateSkipsMatchesWithMissingScores(t *testing.T) {
	teams := teamList("A", "B")
	matches := []models.Match{
		{HomeTeam: "A", AwayTeam: "B", HomeScore: intPtr(1), IsFinished: true},
	}

	for _, row := range Calculate(teams, matches) {
		if row.Games != 0 {
			t.Errorf("a match without both scores must not count, got row %+v", row)
		}
	}
}

func TestCalculateUnknownTeamSideIgnored(t *testing.T) {
	teams := teamList("A")
	matches := []models.Match{
		finishedMatch("A", "Ghost", 2, 1),
	}

	got := Calculate(teams, matches)
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	want := Row{Team: "A", Games: 1, Wins: 1, GoalsFor: 2, GoalsAgainst: 1, Points: 3}
	if got[0] != want {
		t.Errorf("Calculate() = %+v, want %+v", got[0], want)
	}
}

func TestCalculateSortsByPointsThenGoalDiff(t *testing.T) {
	teams := teamList("A", "B", "C")
	matches := []models.Match{
		// A и C по 3 очка, но у A разница +3, у C +1.
		finishedMatch("A", "B", 3, 0),
		finishedMatch("C", "B", 2, 1),
	}

	got := Calculate(teams, matches)
	order := []string{got[0].Team, got[1].Team, got[2].Team}
	want := []string{"A", "C", "B"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("table order = %v, want %v", order, want)
	}
}

func TestCalculateStableOnFullTie(t *testing.T) {
	teams := teamList("B", "A")
	got := Calculate(teams, nil)
	if got[0].Team != "B" || got[1].Team != "A" {
		t.Errorf("full tie must keep input order, got %v then %v", got[0].Team, got[1].Team)
	}
}

func TestCalculateDeterministic(t *testing.T) {
	teams := teamList("A", "B", "C", "D")
	matches := []models.Match{
		finishedMatch("A", "B", 2, 1),
		finishedMatch("C", "D", 0, 0),
		finishedMatch("B", "C", 1, 4),
	}

	first := Calculate(teams, matches)
	second := Calculate(teams, matches)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Calculate is not deterministic: %+v vs %+v", first, second)
	}
}

func TestCalculatePointsConservation(t *testing.T) {
	teams := teamList("A", "B", "C", "D")
	matches := []models.Match{
		finishedMatch("A", "B", 2, 1),
		finishedMatch("C", "D", 0, 0),
		finishedMatch("A", "C", 1, 1),
		finishedMatch("B", "D", 5, 0),
	}

	total := 0
	games := 0
	for _, row := range Calculate(teams, matches) {
		total += row.Points
		games += row.Games
	}
	// Победа даёт 3 очка на матч, ничья — 2.
	wantTotal := 3 + 2 + 2 + 3
	if total != wantTotal {
		t.Errorf("total points = %d, want %d", total, wantTotal)
	}
	if games != len(matches)*2 {
		t.Errorf("total games = %d, want %d", games, len(matches)*2)
	}
}

func TestUnknownTeams(t *testing.T) {
	teams := teamList("A", "B")
	matches := []models.Match{
		finishedMatch("A", "Ghost", 1, 0),
		finishedMatch("Ghost", "Phantom", 2, 2),
		// Незачётный матч не даёт неизвестных команд.
		{HomeTeam: "Spirit", AwayTeam: "B", IsFinished: false},
	}

	got := UnknownTeams(teams, matches)
	want := []string{"Ghost", "Phantom"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UnknownTeams() = %v, want %v", got, want)
	}
}

func TestUnknownTeamsEmpty(t *testing.T) {
	teams := teamList("A", "B")
	matches := []models.Match{finishedMatch("A", "B", 1, 0)}
	if got := UnknownTeams(teams, matches); len(got) != 0 {
		t.Errorf("UnknownTeams() = %v, want empty", got)
	}
}
