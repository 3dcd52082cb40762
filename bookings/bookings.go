// Package bookings implements the public booking intake flow and the admin
// booking management endpoints.
package bookings

import (
	"context"
	"errors"
	"sort"

	"bigtreat/db"
	"bigtreat/models"
	"bigtreat/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repo persists bookings in MongoDB when it is available and in the
// in-process store otherwise. Bookings must always be capturable, so every
// operation is allowed to degrade.
type Repo struct {
	col *mongo.Collection
	mem *store.Collection[models.Booking]
}

func NewRepo(col *mongo.Collection) *Repo {
	return &Repo{
		col: col,
		mem: store.NewCollection(func(b models.Booking) string { return b.ID }),
	}
}

func (r *Repo) external() bool {
	return r.col != nil && db.Available()
}

func (r *Repo) Insert(ctx context.Context, b models.Booking) models.Booking {
	if r.external() {
		if _, err := r.col.InsertOne(ctx, b); err == nil {
			return b
		} else {
			db.MarkDown(err)
		}
	}
	return r.mem.Insert(b)
}

func newestFirst(a, b models.Booking) bool {
	return a.CreatedAt.After(b.CreatedAt)
}

func (r *Repo) List(ctx context.Context) []models.Booking {
	if r.external() {
		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		cur, err := r.col.Find(ctx, bson.M{}, opts)
		if err != nil {
			db.MarkDown(err)
		} else {
			var out []models.Booking
			if db.ReadAll(ctx, cur, &out) {
				return out
			}
		}
	}
	return r.mem.AllSorted(newestFirst)
}

func (r *Repo) Get(ctx context.Context, id string) (models.Booking, error) {
	if r.external() {
		var b models.Booking
		err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&b)
		if err == nil {
			return b, nil
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Booking{}, store.ErrNotFound
		}
		db.MarkDown(err)
	}
	return r.mem.Get(id)
}

// ByCustomerEmail matches the normalized email exactly, newest first.
func (r *Repo) ByCustomerEmail(ctx context.Context, email string) []models.Booking {
	if r.external() {
		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		cur, err := r.col.Find(ctx, bson.M{"customerEmail": email}, opts)
		if err != nil {
			db.MarkDown(err)
		} else {
			var out []models.Booking
			if db.ReadAll(ctx, cur, &out) {
				return out
			}
		}
	}
	matched := r.mem.Find(func(b models.Booking) bool { return b.CustomerEmail == email })
	sort.SliceStable(matched, func(i, j int) bool { return newestFirst(matched[i], matched[j]) })
	return matched
}

func (r *Repo) Update(ctx context.Context, id string, set bson.M, mutate func(*models.Booking)) error {
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

func (r *Repo) Delete(ctx context.Context, id string) error {
	if r.external() {
		res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
		if err == nil {
			if res.DeletedCount == 0 {
				return store.ErrNotFound
			}
			return nil
		}
		db.MarkDown(err)
	}
	return r.mem.Delete(id)
}
