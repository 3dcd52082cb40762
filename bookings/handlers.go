package bookings

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
	CustomerName        string  `json:"customerName"`
	CustomerEmail       string  `json:"customerEmail"`
	CustomerPhone       string  `json:"customerPhone"`
	ServiceID           string  `json:"serviceId"`
	ServiceName         string  `json:"serviceName"`
	EventDate           string  `json:"eventDate"`
	EventTime           string  `json:"eventTime"`
	EventLocation       string  `json:"eventLocation"`
	GuestCount          int     `json:"guestCount"`
	SpecialRequirements string  `json:"specialRequirements"`
	Budget              float64 `json:"budget"`
}

// Submit handles POST /api/bookings.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in submitInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(in.CustomerName) == "" ||
		strings.TrimSpace(in.CustomerEmail) == "" ||
		strings.TrimSpace(in.CustomerPhone) == "" ||
		strings.TrimSpace(in.ServiceID) == "" ||
		strings.TrimSpace(in.EventDate) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Please fill in all required fields")
		return
	}

	if !utils.ValidEmail(in.CustomerEmail) {
		utils.RespondWithError(w, http.StatusBadRequest, "Please enter a valid email address")
		return
	}

	eventDate, err := time.Parse("2006-01-02", in.EventDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Please enter a valid event date")
		return
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if eventDate.Before(today) {
		utils.RespondWithError(w, http.StatusBadRequest, "Event date cannot be in the past")
		return
	}

	serviceName := in.ServiceName
	if serviceName == "" {
		serviceName = "Custom Service"
	}

	booking := models.Booking{
		ID:                  utils.NewID(),
		CustomerName:        strings.TrimSpace(in.CustomerName),
		CustomerEmail:       utils.NormalizeEmail(in.CustomerEmail),
		CustomerPhone:       strings.TrimSpace(in.CustomerPhone),
		ServiceID:           in.ServiceID,
		ServiceName:         serviceName,
		EventDate:           in.EventDate,
		EventTime:           in.EventTime,
		EventLocation:       in.EventLocation,
		GuestCount:          in.GuestCount,
		SpecialRequirements: in.SpecialRequirements,
		Budget:              in.Budget,
		Status:              models.BookingPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	h.repo.Insert(r.Context(), booking)

	// Confirmation email is out of scope; log the summary instead.
	log.Info().
		Str("customer", booking.CustomerName).
		Str("email", booking.CustomerEmail).
		Str("service", booking.ServiceName).
		Str("date", booking.EventDate).
		Str("location", booking.EventLocation).
		Msg("new booking")

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message":   "Booking submitted successfully! We will contact you soon to confirm details.",
		"bookingId": booking.ID,
		"success":   true,
	})
}

// List handles GET /api/bookings (admin).
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.repo.List(r.Context()))
}

// Get handles GET /api/bookings/:id.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, err := h.repo.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, booking)
}

// ByCustomer handles GET /api/bookings/customer/:email.
func (h *Handler) ByCustomer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if ps.ByName("id") != "customer" {
		utils.RespondWithError(w, http.StatusNotFound, "Route not found")
		return
	}
	email := utils.NormalizeEmail(ps.ByName("email"))
	matched := h.repo.ByCustomerEmail(r.Context(), email)
	if matched == nil {
		matched = []models.Booking{}
	}
	utils.RespondWithJSON(w, http.StatusOK, matched)
}

type updateInput struct {
	Status        string  `json:"status"`
	AdminNotes    string  `json:"adminNotes"`
	Price         float64 `json:"price"`
	ConfirmedDate string  `json:"confirmedDate"`
	ConfirmedTime string  `json:"confirmedTime"`
}

// Update handles PUT /api/bookings/:id (admin). Only provided fields change.
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
	if in.AdminNotes != "" {
		set["adminNotes"] = in.AdminNotes
	}
	if in.Price != 0 {
		set["price"] = in.Price
	}
	if in.ConfirmedDate != "" {
		set["confirmedDate"] = in.ConfirmedDate
	}
	if in.ConfirmedTime != "" {
		set["confirmedTime"] = in.ConfirmedTime
	}

	err := h.repo.Update(r.Context(), ps.ByName("id"), set, func(b *models.Booking) {
		if in.Status != "" {
			b.Status = in.Status
		}
		if in.AdminNotes != "" {
			b.AdminNotes = in.AdminNotes
		}
		if in.Price != 0 {
			b.Price = in.Price
		}
		if in.ConfirmedDate != "" {
			b.ConfirmedDate = in.ConfirmedDate
		}
		if in.ConfirmedTime != "" {
			b.ConfirmedTime = in.ConfirmedTime
		}
		b.UpdatedAt = now
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Booking updated successfully"})
}

// Delete handles DELETE /api/bookings/:id (admin).
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.repo.Delete(r.Context(), ps.ByName("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete booking")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Booking deleted successfully"})
}
