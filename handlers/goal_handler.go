package handlers

import (
	"net/http"

	"github.com/alinapilipuk-web/kspro/services"
)

type GoalHandler struct {
	goalService services.GoalService
}

func NewGoalHandler(gs services.GoalService) *GoalHandler {
	return &GoalHandler{goalService: gs}
}

// ListByMatch отдаёт события голов матча: GET /matches/{matchID}/goals
func (h *GoalHandler) ListByMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	goals, err := h.goalService.ListByMatch(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"goals": goals}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Add добавляет событие гола: POST /matches/{matchID}/goals.
// match_id в теле запроса игнорируется, авторитетен идентификатор из URL.
func (h *GoalHandler) Add(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.AddGoalInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	input.MatchID = matchID

	goal, err := h.goalService.Add(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"goal": goal}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "goalID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.goalService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
