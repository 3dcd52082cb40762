// Package auth implements registration, login, logout, and profile
// management. Passwords are bcrypt-hashed and tokens are signed JWTs on
// both backends; the in-process store is a persistence fallback, not a
// security downgrade.
package auth

import (
	"context"
	"errors"
	"time"

	"bigtreat/config"
	"bigtreat/db"
	"bigtreat/globals"
	"bigtreat/middleware"
	"bigtreat/models"
	"bigtreat/store"
	"bigtreat/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenTTL = 24 * time.Hour

type Repo struct {
	col *mongo.Collection
	mem *store.Collection[models.User]
}

// NewRepo seeds the fallback store with the admin account so the panel is
// reachable before any registration happens.
func NewRepo(col *mongo.Collection, cfg *config.Config) *Repo {
	r := &Repo{
		col: col,
		mem: store.NewCollection(func(u models.User) string { return u.ID }),
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash admin password, admin seed skipped")
		return r
	}
	r.mem.Insert(models.User{
		ID:           "admin-1",
		Name:         cfg.AdminName,
		Email:        utils.NormalizeEmail(cfg.AdminEmail),
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now(),
	})
	return r
}

func (r *Repo) external() bool {
	return r.col != nil && db.Available()
}

func (r *Repo) Insert(ctx context.Context, u models.User) models.User {
	if r.external() {
		if _, err := r.col.InsertOne(ctx, u); err == nil {
			return u
		} else {
			db.MarkDown(err)
		}
	}
	return r.mem.Insert(u)
}

// FindByEmail expects an already-normalized email.
func (r *Repo) FindByEmail(ctx context.Context, email string) (models.User, error) {
	if r.external() {
		var u models.User
		err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
		if err == nil {
			return u, nil
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, store.ErrNotFound
		}
		db.MarkDown(err)
	}
	matched := r.mem.Find(func(u models.User) bool { return u.Email == email })
	if len(matched) == 0 {
		return models.User{}, store.ErrNotFound
	}
	return matched[0], nil
}

func (r *Repo) Get(ctx context.Context, id string) (models.User, error) {
	if r.external() {
		var u models.User
		err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&u)
		if err == nil {
			return u, nil
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, store.ErrNotFound
		}
		db.MarkDown(err)
	}
	return r.mem.Get(id)
}

func (r *Repo) Update(ctx context.Context, id string, set bson.M, mutate func(*models.User)) error {
	if r.external() {
		res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
		if err == nil {
			if res.MatchedCount == 0 {
				return store.ErrNotFound
			}
			return nil
		}
		db.MarkDown(err)
	}
	return r.mem.Update(id, mutate)
}

// generateAccessToken issues a signed JWT carrying the user's identity and
// role claims.
func generateAccessToken(u models.User) (string, error) {
	claims := middleware.Claims{
		Email:  u.Email,
		UserID: u.ID,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}
