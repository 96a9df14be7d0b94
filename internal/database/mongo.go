package database

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kbatra339/mindease-backend/internal/apperr"
)

const defaultDBName = "mindease_db"

// Mongo is an explicit connection handle passed to the stores at
// construction. A failed startup connection yields a handle whose Available
// check reports ErrStoreUnavailable instead of a nil sentinel, so the service
// keeps serving and every data route answers 500 uniformly.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
	status string
}

// Connect dials MongoDB and pings it. On failure it still returns a usable
// (but unavailable) handle alongside the error.
func Connect(mongoURI string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoURI)
	clientOptions.SetServerSelectionTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return &Mongo{status: "error: " + err.Error()}, err
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(context.Background())
		return &Mongo{status: "error: " + err.Error()}, err
	}

	m := &Mongo{
		client: client,
		db:     client.Database(databaseName(mongoURI)),
		status: "connected",
	}

	log.Info().Str("database", m.db.Name()).Msg("connected to MongoDB")
	return m, nil
}

// databaseName extracts the database name from the connection string,
// falling back to the default when the URI doesn't carry one.
func databaseName(mongoURI string) string {
	parts := strings.Split(mongoURI, "/")
	if len(parts) > 3 {
		dbPart := strings.Split(parts[len(parts)-1], "?")[0]
		if dbPart != "" {
			return dbPart
		}
	}
	return defaultDBName
}

// Available reports whether the handle holds a live connection.
func (m *Mongo) Available() error {
	if m == nil || m.db == nil {
		return apperr.ErrStoreUnavailable
	}
	return nil
}

// Status is the human-readable connection state for the health endpoint.
func (m *Mongo) Status() string {
	if m == nil {
		return "error: not initialized"
	}
	return m.status
}

// Collection returns the named collection. Callers must check Available first.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

func (m *Mongo) Disconnect() error {
	if m == nil || m.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}
