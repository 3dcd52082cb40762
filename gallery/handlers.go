package gallery

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

// List handles GET /api/gallery.
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.repo.List(r.Context()))
}

// Get handles GET /api/gallery/:id.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	item, err := h.repo.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Gallery item not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, item)
}

// ByCategory handles GET /api/gallery/category/:category.
func (h *Handler) ByCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if ps.ByName("id") != "category" {
		utils.RespondWithError(w, http.StatusNotFound, "Route not found")
		return
	}
	matched := h.repo.ByCategory(r.Context(), ps.ByName("category"))
	if matched == nil {
		matched = []models.GalleryItem{}
	}
	utils.RespondWithJSON(w, http.StatusOK, matched)
}

type itemInput struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
	Tags        []string `json:"tags"`
	IsActive    *bool    `json:"isActive"`
}

// Create handles POST /api/gallery (admin, external store required).
func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in itemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Category) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Please fill in all required fields")
		return
	}

	item := models.GalleryItem{
		ID:          utils.NewID(),
		Title:       strings.TrimSpace(in.Title),
		Category:    in.Category,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Date:        in.Date,
		Location:    in.Location,
		Tags:        in.Tags,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}

	if err := h.repo.Create(r.Context(), item); err != nil {
		if errors.Is(err, db.ErrUnavailable) {
			utils.RespondWithError(w, http.StatusServiceUnavailable, "Document store not available for admin operations")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create gallery item")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "Gallery item created successfully",
		"id":      item.ID,
	})
}

// Update handles PUT /api/gallery/:id (admin, external store required).
func (h *Handler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var in itemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if in.Title != "" {
		set["title"] = in.Title
	}
	if in.Category != "" {
		set["category"] = in.Category
	}
	if in.Description != "" {
		set["description"] = in.Description
	}
	if in.ImageURL != "" {
		set["imageUrl"] = in.ImageURL
	}
	if in.Date != "" {
		set["date"] = in.Date
	}
	if in.Location != "" {
		set["location"] = in.Location
	}
	if in.Tags != nil {
		set["tags"] = in.Tags
	}
	if in.IsActive != nil {
		set["isActive"] = *in.IsActive
	}

	if err := h.repo.Update(r.Context(), ps.ByName("id"), set); err != nil {
		switch {
		case errors.Is(err, db.ErrUnavailable):
			utils.RespondWithError(w, http.StatusServiceUnavailable, "Document store not available for admin operations")
		case errors.Is(err, store.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Gallery item not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update gallery item")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Gallery item updated successfully"})
}

// Delete handles DELETE /api/gallery/:id (admin, external store required).
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.repo.Delete(r.Context(), ps.ByName("id")); err != nil {
		switch {
		case errors.Is(err, db.ErrUnavailable):
			utils.RespondWithError(w, http.StatusServiceUnavailable, "Document store not available for admin operations")
		case errors.Is(err, store.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Gallery item not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete gallery item")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Gallery item deleted successfully"})
}
