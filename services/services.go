// Package services serves the service catalog. Reads fall back to the
// seeded in-process catalog; admin mutations require the document store.
package services

import (
	"context"
	"errors"

	"bigtreat/db"
	"bigtreat/models"
	"bigtreat/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repo struct {
	col *mongo.Collection
	mem *store.Collection[models.Service]
}

func NewRepo(col *mongo.Collection) *Repo {
	r := &Repo{
		col: col,
		mem: store.NewCollection(func(s models.Service) string { return s.ID }),
	}
	for _, s := range seedServices() {
		r.mem.Insert(s)
	}
	return r
}

func (r *Repo) external() bool {
	return r.col != nil && db.Available()
}

func (r *Repo) List(ctx context.Context) []models.Service {
	if r.external() {
		opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}})
		cur, err := r.col.Find(ctx, bson.M{}, opts)
		if err != nil {
			db.MarkDown(err)
		} else {
			var out []models.Service
			if db.ReadAll(ctx, cur, &out) {
				return out
			}
		}
	}
	return r.mem.All()
}

func (r *Repo) Get(ctx context.Context, id string) (models.Service, error) {
	if r.external() {
		var s models.Service
		err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&s)
		if err == nil {
			return s, nil
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Service{}, store.ErrNotFound
		}
		db.MarkDown(err)
	}
	return r.mem.Get(id)
}

// ByCategory is an exact string match; an unknown category yields an empty
// list, not an error.
func (r *Repo) ByCategory(ctx context.Context, category string) []models.Service {
	if r.external() {
		cur, err := r.col.Find(ctx, bson.M{"category": category})
		if err != nil {
			db.MarkDown(err)
		} else {
			var out []models.Service
			if db.ReadAll(ctx, cur, &out) {
				return out
			}
		}
	}
	return r.mem.Find(func(s models.Service) bool { return s.Category == category })
}

func (r *Repo) Create(ctx context.Context, s models.Service) error {
	if !r.external() {
		return db.ErrUnavailable
	}
	if _, err := r.col.InsertOne(ctx, s); err != nil {
		db.MarkDown(err)
		return err
	}
	return nil
}

func (r *Repo) Update(ctx context.Context, id string, set bson.M) error {
	if !r.external() {
		return db.ErrUnavailable
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		db.MarkDown(err)
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	if !r.external() {
		return db.ErrUnavailable
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		db.MarkDown(err)
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
