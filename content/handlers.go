package content

import (
	"encoding/json"
	"errors"
	"net/http"

	"bigtreat/store"
	"bigtreat/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

// Get handles GET /api/content/:section.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	section, err := h.repo.Get(r.Context(), ps.ByName("section"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Content not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, section)
}

// Update handles PUT /api/content/:section (admin).
func (h *Handler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updates Section
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.repo.Update(r.Context(), ps.ByName("section"), updates); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Content not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update content")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Content updated successfully"})
}
