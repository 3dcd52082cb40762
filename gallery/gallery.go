// Package gallery serves the portfolio gallery. Same policy as the service
// catalog: reads fall back to the seeded in-process items, admin mutations
// require the document store.
package gallery

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
	mem *store.Collection[models.GalleryItem]
}

func NewRepo(col *mongo.Collection) *Repo {
	r := &Repo{
		col: col,
		mem: store.NewCollection(func(g models.GalleryItem) string { return g.ID }),
	}
	for _, g := range seedGallery() {
		r.mem.Insert(g)
	}
	return r
}

func (r *Repo) external() bool {
	return r.col != nil && db.Available()
}

// activeFilter builds the find filter for public reads, which only show
// items the admin has not deactivated.
func activeFilter(extra bson.M) bson.M {
	filter := bson.M{"isActive": true}
	for k, v := range extra {
		filter[k] = v
	}
	return filter
}

func (r *Repo) List(ctx context.Context) []models.GalleryItem {
	if r.external() {
		opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
		cur, err := r.col.Find(ctx, activeFilter(nil), opts)
		if err != nil {
			db.MarkDown(err)
		} else {
			var out []models.GalleryItem
			if db.ReadAll(ctx, cur, &out) {
				return out
			}
		}
	}
	return r.mem.All()
}

func (r *Repo) Get(ctx context.Context, id string) (models.GalleryItem, error) {
	if r.external() {
		var g models.GalleryItem
		err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&g)
		if err == nil {
			return g, nil
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.GalleryItem{}, store.ErrNotFound
		}
		db.MarkDown(err)
	}
	return r.mem.Get(id)
}

func (r *Repo) ByCategory(ctx context.Context, category string) []models.GalleryItem {
	if r.external() {
		cur, err := r.col.Find(ctx, activeFilter(bson.M{"category": category}))
		if err != nil {
			db.MarkDown(err)
		} else {
			var out []models.GalleryItem
			if db.ReadAll(ctx, cur, &out) {
				return out
			}
		}
	}
	return r.mem.Find(func(g models.GalleryItem) bool { return g.Category == category })
}

func (r *Repo) Create(ctx context.Context, g models.GalleryItem) error {
	if !r.external() {
		return db.ErrUnavailable
	}
	if _, err := r.col.InsertOne(ctx, g); err != nil {
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
