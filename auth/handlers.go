package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"bigtreat/middleware"
	"bigtreat/models"
	"bigtreat/rdx"
	"bigtreat/store"
	"bigtreat/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

type registerInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register. Registration never grants
// admin.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in registerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Please fill in all required fields")
		return
	}
	if !utils.ValidEmail(in.Email) {
		utils.RespondWithError(w, http.StatusBadRequest, "Please enter a valid email address")
		return
	}
	if len(in.Password) < 6 {
		utils.RespondWithError(w, http.StatusBadRequest, "Password must be at least 6 characters long")
		return
	}

	email := utils.NormalizeEmail(in.Email)
	if _, err := h.repo.FindByEmail(r.Context(), email); err == nil {
		utils.RespondWithError(w, http.StatusConflict, "User with this email already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register user. Please try again.")
		return
	}

	user := models.User{
		ID:           utils.NewID(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		CreatedAt:    time.Now(),
	}
	h.repo.Insert(r.Context(), user)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "User registered successfully",
		"userId":  user.ID,
	})
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in loginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Please provide email and password")
		return
	}

	user, err := h.repo.FindByEmail(r.Context(), utils.NormalizeEmail(in.Email))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := generateAccessToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": "Login successful",
		"token":   token,
		"user": utils.M{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// Logout handles POST /api/auth/logout: the presented token joins the
// revocation set until it would have expired anyway.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	token := middleware.BearerToken(r)
	if token != "" {
		rdx.RevokeToken(token)
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Logged out successfully"})
}

// Profile handles GET /api/auth/profile.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user, err := h.repo.Get(r.Context(), middleware.UserID(r))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

type profileInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateProfile handles PUT /api/auth/profile.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in profileInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.Email != "" && !utils.ValidEmail(in.Email) {
		utils.RespondWithError(w, http.StatusBadRequest, "Please enter a valid email address")
		return
	}

	set := bson.M{}
	if in.Name != "" {
		set["name"] = strings.TrimSpace(in.Name)
	}
	if in.Email != "" {
		set["email"] = utils.NormalizeEmail(in.Email)
	}
	if len(set) == 0 {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Profile updated successfully"})
		return
	}

	err := h.repo.Update(r.Context(), middleware.UserID(r), set, func(u *models.User) {
		if in.Name != "" {
			u.Name = strings.TrimSpace(in.Name)
		}
		if in.Email != "" {
			u.Email = utils.NormalizeEmail(in.Email)
		}
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Profile updated successfully"})
}
