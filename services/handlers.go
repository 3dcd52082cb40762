package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"bigtreat/db"
	"bigtreat/models"
	"bigtreat/store"
	"bigtreat/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /api/services.
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.repo.List(r.Context()))
}

// Get handles GET /api/services/:id.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	service, err := h.repo.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Service not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, service)
}

// ByCategory handles GET /api/services/category/:category.
func (h *Handler) ByCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if ps.ByName("id") != "category" {
		utils.RespondWithError(w, http.StatusNotFound, "Route not found")
		return
	}
	matched := h.repo.ByCategory(r.Context(), ps.ByName("category"))
	if matched == nil {
		matched = []models.Service{}
	}
	utils.RespondWithJSON(w, http.StatusOK, matched)
}

type serviceInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Duration    string   `json:"duration"`
	Features    []string `json:"features"`
	ImageURL    string   `json:"imageUrl"`
	IsActive    *bool    `json:"isActive"`
}

// Create handles POST /api/services (admin, external store required).
func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in serviceInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Please fill in all required fields")
		return
	}

	service := models.Service{
		ID:          utils.NewID(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Duration:    in.Duration,
		Features:    in.Features,
		ImageURL:    in.ImageURL,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}

	if err := h.repo.Create(r.Context(), service); err != nil {
		if errors.Is(err, db.ErrUnavailable) {
			utils.RespondWithError(w, http.StatusServiceUnavailable, "Document store not available for admin operations")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create service")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "Service created successfully",
		"id":      service.ID,
	})
}

// Update handles PUT /api/services/:id (admin, external store required).
func (h *Handler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var in serviceInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if in.Name != "" {
		set["name"] = in.Name
	}
	if in.Description != "" {
		set["description"] = in.Description
	}
	if in.Price != 0 {
		set["price"] = in.Price
	}
	if in.Category != "" {
		set["category"] = in.Category
	}
	if in.Duration != "" {
		set["duration"] = in.Duration
	}
	if in.Features != nil {
		set["features"] = in.Features
	}
	if in.ImageURL != "" {
		set["imageUrl"] = in.ImageURL
	}
	if in.IsActive != nil {
		set["isActive"] = *in.IsActive
	}

	if err := h.repo.Update(r.Context(), ps.ByName("id"), set); err != nil {
		switch {
		case errors.Is(err, db.ErrUnavailable):
			utils.RespondWithError(w, http.StatusServiceUnavailable, "Document store not available for admin operations")
		case errors.Is(err, store.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Service not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update service")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Service updated successfully"})
}

// Delete handles DELETE /api/services/:id (admin, external store required).
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.repo.Delete(r.Context(), ps.ByName("id")); err != nil {
		switch {
		case errors.Is(err, db.ErrUnavailable):
			utils.RespondWithError(w, http.StatusServiceUnavailable, "Document store not available for admin operations")
		case errors.Is(err, store.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Service not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete service")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Service deleted successfully"})
}
