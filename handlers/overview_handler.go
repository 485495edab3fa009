package handlers

import (
	"net/http"

	"github.com/alinapilipuk-web/kspro/services"
)

type OverviewHandler struct {
	overviewService services.OverviewService
}

func NewOverviewHandler(os services.OverviewService) *OverviewHandler {
	return &OverviewHandler{overviewService: os}
}

// Overview отдаёт полную страницу чемпионата одним запросом:
// GET /championships/{championshipID}/overview
func (h *OverviewHandler) Overview(w http.ResponseWriter, r *http.Request) {
	championshipID, err := getIDFromURL(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	overview, err := h.overviewService.ChampionshipOverview(r.Context(), championshipID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"overview": overview}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Table отдаёт только турнирную таблицу лиги:
// GET /championships/{championshipID}/table
func (h *OverviewHandler) Table(w http.ResponseWriter, r *http.Request) {
	championshipID, err := getIDFromURL(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	overview, err := h.overviewService.ChampionshipOverview(r.Context(), championshipID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"table": overview.Table}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Bracket отдаёт только сетку кубка:
// GET /championships/{championshipID}/bracket
func (h *OverviewHandler) Bracket(w http.ResponseWriter, r *http.Request) {
	championshipID, err := getIDFromURL(r, "championshipID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	overview, err := h.overviewService.ChampionshipOverview(r.Context(), championshipID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{"bracket": overview.Bracket}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
