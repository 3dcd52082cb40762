// Package contact implements the public contact form and the admin message
// inbox.
package contact

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

// Repo follows the same degrade-to-memory policy as bookings: a message
// must always be capturable.
type Repo struct {
	col *mongo.Collection
	mem *store.Collection[models.ContactMessage]
}

func NewRepo(col *mongo.Collection) *Repo {
	return &Repo{
		col: col,
		mem: store.NewCollection(func(m models.ContactMessage) string { return m.ID }),
	}
}

func (r *Repo) external() bool {
	return r.col != nil && db.Available()
}

func (r *Repo) Insert(ctx context.Context, m models.ContactMessage) models.ContactMessage {
	if r.external() {
		if _, err := r.col.InsertOne(ctx, m); err == nil {
			return m
		} else {
			db.MarkDown(err)
		}
	}
	return r.mem.Insert(m)
}

func (r *Repo) List(ctx context.Context) []models.ContactMessage {
	if r.external() {
		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		cur, err := r.col.Find(ctx, bson.M{}, opts)
		if err != nil {
			db.MarkDown(err)
		} else {
			var out []models.ContactMessage
			if db.ReadAll(ctx, cur, &out) {
				return out
			}
		}
	}
	out := r.mem.All()
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *Repo) Get(ctx context.Context, id string) (models.ContactMessage, error) {
	if r.external() {
		var m models.ContactMessage
		err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&m)
		if err == nil {
			return m, nil
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.ContactMessage{}, store.ErrNotFound
		}
		db.MarkDown(err)
	}
	return r.mem.Get(id)
}

func (r *Repo) Update(ctx context.Context, id string, set bson.M, mutate func(*models.ContactMessage)) error {
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
