package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/alinapilipuk-web/kspro/handlers"
	"github.com/alinapilipuk-web/kspro/repositories"
	"github.com/alinapilipuk-web/kspro/services"
	"github.com/alinapilipuk-web/kspro/storage"
)

const (
	testPassword = "ks2025"
	testSecret   = "test-secret"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := repositories.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uploader := storage.NewNoopUploader()

	authService, err := services.NewAuthService(testPassword, testSecret)
	if err != nil {
		t.Fatalf("NewAuthService() error: %v", err)
	}
	championshipService := services.NewChampionshipService(store.Championships())
	teamService := services.NewTeamService(store.Teams(), store.Championships(), uploader)
	matchService := services.NewMatchService(store.Matches(), store.Teams(), store.Championships())
	playerService := services.NewPlayerService(store.Players(), store.Teams(), store.Championships())
	goalService := services.NewGoalService(store.Goals(), store.Matches())
	overviewService := services.NewOverviewService(
		store.Championships(), teamService, store.Matches(), store.Players(), store.Goals(), logger)

	router := InitRoutes(Handlers{
		Championship: handlers.NewChampionshipHandler(championshipService),
		Team:         handlers.NewTeamHandler(teamService),
		Match:        handlers.NewMatchHandler(matchService),
		Player:       handlers.NewPlayerHandler(playerService),
		Goal:         handlers.NewGoalHandler(goalService),
		Overview:     handlers.NewOverviewHandler(overviewService),
		Auth:         handlers.NewAuthHandler(authService),
	}, testSecret)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func getJSON(t *testing.T, url string, wantStatus int) map[string]json.RawMessage {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s error: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s status = %d, want %d", url, resp.StatusCode, wantStatus)
	}
	body := map[string]json.RawMessage{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("GET %s: invalid JSON body: %v", url, err)
	}
	return body
}

func login(t *testing.T, server *httptest.Server) string {
	t.Helper()
	payload := bytes.NewBufferString(`{"password":"` + testPassword + `"}`)
	resp, err := http.Post(server.URL+"/auth/login", "application/json", payload)
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("login: invalid JSON body: %v", err)
	}
	if body.Token == "" {
		t.Fatal("login returned an empty token")
	}
	return body.Token
}

func TestPublicEndpoints(t *testing.T) {
	server := newTestServer(t)

	body := getJSON(t, server.URL+"/championships", http.StatusOK)
	if _, ok := body["championships"]; !ok {
		t.Error("GET /championships: missing championships key")
	}

	body = getJSON(t, server.URL+"/championships/active", http.StatusOK)
	var active struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(body["championship"], &active); err != nil {
		t.Fatalf("GET /championships/active: %v", err)
	}
	if active.ID == 0 {
		t.Fatal("GET /championships/active: no active championship in fixtures")
	}

	overviewURL := server.URL + "/championships/" + strconv.Itoa(active.ID)
	for _, path := range []string{"", "/overview", "/table"} {
		getJSON(t, overviewURL+path, http.StatusOK)
	}

	getJSON(t, server.URL+"/teams", http.StatusOK)
	getJSON(t, server.URL+"/matches", http.StatusOK)
	getJSON(t, server.URL+"/players", http.StatusOK)

	getJSON(t, server.URL+"/championships/999999", http.StatusNotFound)
	getJSON(t, server.URL+"/matches/abc", http.StatusBadRequest)
}

func TestAdminEndpointsRequireToken(t *testing.T) {
	server := newTestServer(t)

	payload := bytes.NewBufferString(`{"name":"New Liga","season":"2025-2026","tournament_type":"league"}`)
	resp, err := http.Post(server.URL+"/championships", "application/json", payload)
	if err != nil {
		t.Fatalf("POST error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("unauthenticated POST /championships status = %d, want 401", resp.StatusCode)
	}
}

// Пять из шести кубковых стадий содержат "/", поэтому сегмент пути
// приходит закодированным и обработчик обязан его раскодировать.
func TestStageRouteWithSlashInLabel(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server)

	postJSON := func(path, body string) map[string]json.RawMessage {
		t.Helper()
		req, err := http.NewRequest(http.MethodPost, server.URL+path, bytes.NewBufferString(body))
		if err != nil {
			t.Fatalf("request build error: %v", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("POST %s error: %v", path, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("POST %s status = %d, want 201", path, resp.StatusCode)
		}
		decoded := map[string]json.RawMessage{}
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			t.Fatalf("POST %s: invalid JSON body: %v", path, err)
		}
		return decoded
	}

	body := postJSON("/championships",
		`{"name":"KS Cup","season":"2025-2026","tournament_type":"cup"}`)
	var cup struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(body["championship"], &cup); err != nil {
		t.Fatalf("decode championship: %v", err)
	}

	cupID := strconv.Itoa(cup.ID)
	postJSON("/teams", `{"name":"Фенікс","championship_id":`+cupID+`}`)
	postJSON("/teams", `{"name":"Зоря","championship_id":`+cupID+`}`)
	postJSON("/matches", `{"championship_id":`+cupID+`,"round":1,`+
		`"date":"2026-03-01T00:00:00Z","home_team":"Фенікс","away_team":"Зоря",`+
		`"cup_stage":"1/32 final"}`)

	stagePath := "/championships/" + cupID + "/stages/" + url.PathEscape("1/32 final") + "/matches"
	got := getJSON(t, server.URL+stagePath, http.StatusOK)
	var matches []struct {
		CupStage *string `json:"cup_stage"`
	}
	if err := json.Unmarshal(got["matches"], &matches); err != nil {
		t.Fatalf("decode matches: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("GET %s: got %d matches, want 1", stagePath, len(matches))
	}
	if matches[0].CupStage == nil || *matches[0].CupStage != "1/32 final" {
		t.Errorf("match cup_stage = %v, want 1/32 final", matches[0].CupStage)
	}
}

func TestAdminChampionshipLifecycle(t *testing.T) {
	server := newTestServer(t)
	token := login(t, server)

	doJSON := func(method, path, body string) *http.Response {
		t.Helper()
		req, err := http.NewRequest(method, server.URL+path, bytes.NewBufferString(body))
		if err != nil {
			t.Fatalf("request build error: %v", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("%s %s error: %v", method, path, err)
		}
		return resp
	}

	resp := doJSON(http.MethodPost, "/championships",
		`{"name":"New Liga","season":"2025-2026","is_active":false,"tournament_type":"league"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST /championships status = %d, want 201", resp.StatusCode)
	}
	var created struct {
		Championship struct {
			ID int `json:"id"`
		} `json:"championship"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("POST /championships: invalid body: %v", err)
	}
	resp.Body.Close()

	path := "/championships/" + strconv.Itoa(created.Championship.ID)

	resp = doJSON(http.MethodPut, path, `{"name":"Renamed Liga"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("PUT %s status = %d, want 200", path, resp.StatusCode)
	}
	resp.Body.Close()

	body := getJSON(t, server.URL+path, http.StatusOK)
	var got struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body["championship"], &got); err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	if got.Name != "Renamed Liga" {
		t.Errorf("championship name after update = %q, want Renamed Liga", got.Name)
	}

	resp = doJSON(http.MethodDelete, path, "")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("DELETE %s status = %d, want 204", path, resp.StatusCode)
	}
	resp.Body.Close()

	getJSON(t, server.URL+path, http.StatusNotFound)
}
