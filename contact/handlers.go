package contact

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"bigtreat/models"
	"bigtreat/store"
	"bigtreat/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

type submitInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in submitInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Subject) == "" ||
		strings.TrimSpace(in.Message) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Please fill in all required fields")
		return
	}

	if !utils.ValidEmail(in.Email) {
		utils.RespondWithError(w, http.StatusBadRequest, "Please enter a valid email address")
		return
	}

	now := time.Now()
	msg := models.ContactMessage{
		ID:        utils.NewID(),
		Name:      strings.TrimSpace(in.Name),
		Email:     utils.NormalizeEmail(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Subject:   strings.TrimSpace(in.Subject),
		Message:   strings.TrimSpace(in.Message),
		Status:    "new",
		Read:      false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	h.repo.Insert(r.Context(), msg)

	// Email notification is out of scope; log the message instead.
	log.Info().
		Str("from", msg.Name).
		Str("email", msg.Email).
		Str("subject", msg.Subject).
		Msg("new contact message")

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "Thank you for your message! We will get back to you soon.",
		"success": true,
	})
}

// List handles GET /api/contact (admin).
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.repo.List(r.Context()))
}

// Get handles GET /api/contact/:id (admin).
func (h *Handler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	msg, err := h.repo.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Contact message not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, msg)
}

type updateInput struct {
	Status string `json:"status"`
	Read   *bool  `json:"read"`
	Notes  string `json:"notes"`
}

// Update handles PUT /api/contact/:id (admin).
func (h *Handler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var in updateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	now := time.Now()
	set := bson.M{"updatedAt": now}
	if in.Status != "" {
		set["status"] = in.Status
	}
	if in.Read != nil {
		set["read"] = *in.Read
	}
	if in.Notes != "" {
		set["notes"] = in.Notes
	}

	err := h.repo.Update(r.Context(), ps.ByName("id"), set, func(m *models.ContactMessage) {
		if in.Status != "" {
			m.Status = in.Status
		}
		if in.Read != nil {
			m.Read = *in.Read
		}
		if in.Notes != "" {
			m.Notes = in.Notes
		}
		m.UpdatedAt = now
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Contact message not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update contact message")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Contact message updated successfully"})
}

// Delete handles DELETE /api/contact/:id (admin).
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.repo.Delete(r.Context(), ps.ByName("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Contact message not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete contact message")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Contact message deleted successfully"})
}
