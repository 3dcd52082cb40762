// Package content manages the editable marketing copy for the three site
// sections (home, about, contact). A section is a free-form attribute map;
// updates merge at top-level keys only, so nested lists like testimonials
// are replaced wholesale.
package content

import (
	"context"
	"errors"
	"sync"

	"bigtreat/db"
	"bigtreat/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Section is one page's attribute map.
type Section map[string]interface{}

var knownSections = map[string]bool{
	"home":    true,
	"about":   true,
	"contact": true,
}

type Repo struct {
	col *mongo.Collection

	mu       sync.RWMutex
	sections map[string]Section
}

func NewRepo(col *mongo.Collection) *Repo {
	return &Repo{
		col:      col,
		sections: seedContent(),
	}
}

func (r *Repo) external() bool {
	return r.col != nil && db.Available()
}

// Get returns a section's attribute map. Unknown section names are a
// NotFound regardless of backend; a known section missing from the
// document store is served from the seeded defaults.
func (r *Repo) Get(ctx context.Context, name string) (Section, error) {
	if !knownSections[name] {
		return nil, store.ErrNotFound
	}

	if r.external() {
		var doc Section
		err := r.col.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
		if err == nil {
			delete(doc, "_id")
			return doc, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			db.MarkDown(err)
		}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	section := r.sections[name]
	out := make(Section, len(section))
	for k, v := range section {
		out[k] = v
	}
	return out, nil
}

// Update merges the provided top-level keys into the section.
func (r *Repo) Update(ctx context.Context, name string, updates Section) error {
	if !knownSections[name] {
		return store.ErrNotFound
	}
	if len(updates) == 0 {
		return nil
	}

	if r.external() {
		set := bson.M{}
		for k, v := range updates {
			if k == "_id" {
				continue
			}
			set[k] = v
		}
		opts := options.Update().SetUpsert(true)
		_, err := r.col.UpdateOne(ctx, bson.M{"_id": name}, bson.M{"$set": set}, opts)
		if err == nil {
			return nil
		}
		db.MarkDown(err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	section := r.sections[name]
	merged := make(Section, len(section)+len(updates))
	for k, v := range section {
		merged[k] = v
	}
	for k, v := range updates {
		merged[k] = v
	}
	r.sections[name] = merged
	return nil
}
