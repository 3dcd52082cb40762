package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type stampedRecord struct {
	ID        string    `bson:"id"`
	CreatedAt time.Time `bson:"createdAt"`
}

func TestReadAllDrainsCursor(t *testing.T) {
	available.Store(true)
	defer available.Store(false)

	docs := []interface{}{
		bson.D{{Key: "id", Value: "a"}, {Key: "createdAt", Value: time.Now()}},
		bson.D{{Key: "id", Value: "b"}, {Key: "createdAt", Value: time.Now()}},
	}
	cur, err := mongo.NewCursorFromDocuments(docs, nil, nil)
	require.NoError(t, err)

	var out []stampedRecord
	assert.True(t, ReadAll(context.Background(), cur, &out))
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
	assert.True(t, Available())
}

func TestReadAllDecodeFailureMarksUnavailable(t *testing.T) {
	available.Store(true)
	defer available.Store(false)

	// A string where the struct expects a timestamp makes decoding fail
	// mid-drain, after Find itself succeeded.
	docs := []interface{}{
		bson.D{{Key: "id", Value: "a"}, {Key: "createdAt", Value: "yesterday"}},
	}
	cur, err := mongo.NewCursorFromDocuments(docs, nil, nil)
	require.NoError(t, err)

	var out []stampedRecord
	assert.False(t, ReadAll(context.Background(), cur, &out))
	assert.False(t, Available())
}
