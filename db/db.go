// Package db manages the optional MongoDB connection. When the database is
// unreachable the rest of the app keeps working against the in-process
// fallback stores, so a failed connect here is logged, not fatal.
package db

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"bigtreat/config"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrUnavailable = errors.New("document store unavailable")

var (
	Client *mongo.Client

	BookingsCollection *mongo.Collection
	ContactsCollection *mongo.Collection
	UserCollection     *mongo.Collection
	ServicesCollection *mongo.Collection
	GalleryCollection  *mongo.Collection
	ContentCollection  *mongo.Collection

	available atomic.Bool
)

const (
	connectTimeout = 5 * time.Second
	probeInterval  = 30 * time.Second
)

// Connect probes MongoDB once and, on success, wires up the collections and
// starts a background re-probe loop. Availability is decided here and
// re-checked on an interval rather than re-attempted inside every operation.
func Connect(cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Warn().Err(err).Msg("mongo connect failed, running on in-memory stores")
		return
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Warn().Err(err).Msg("mongo unreachable, running on in-memory stores")
		return
	}

	Client = client
	database := client.Database(cfg.MongoDB)
	BookingsCollection = database.Collection("bookings")
	ContactsCollection = database.Collection("contacts")
	UserCollection = database.Collection("users")
	ServicesCollection = database.Collection("services")
	GalleryCollection = database.Collection("gallery")
	ContentCollection = database.Collection("siteContent")

	available.Store(true)
	log.Info().Str("db", cfg.MongoDB).Msg("connected to MongoDB")

	go probeLoop()
}

func probeLoop() {
	ticker := time.NewTicker(probeInterval)
	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		err := Client.Ping(ctx, nil)
		cancel()

		was := available.Swap(err == nil)
		if err != nil && was {
			log.Warn().Err(err).Msg("lost MongoDB connection, falling back to in-memory stores")
		} else if err == nil && !was {
			log.Info().Msg("MongoDB connection restored")
		}
	}
}

// Available reports whether the document store can currently be used.
func Available() bool {
	return available.Load()
}

// ReadAll drains cur into out. A decode failure flips the availability
// flag with the cursor's own error and reports false so the caller falls
// back.
func ReadAll(ctx context.Context, cur *mongo.Cursor, out interface{}) bool {
	if err := cur.All(ctx, out); err != nil {
		MarkDown(err)
		return false
	}
	return true
}

// MarkDown flips the availability flag after a failed operation so callers
// stop hitting a dead connection before the next probe runs.
func MarkDown(err error) {
	if available.Swap(false) {
		log.Warn().Err(err).Msg("MongoDB operation failed, falling back to in-memory stores")
	}
}

// Disconnect closes the client during shutdown.
func Disconnect(ctx context.Context) {
	if Client != nil {
		if err := Client.Disconnect(ctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}
}
