package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kbatra339/mindease-backend/internal/apperr"
	"github.com/kbatra339/mindease-backend/internal/database"
	"github.com/kbatra339/mindease-backend/internal/models"
)

const (
	usersCollection   = "users"
	entriesCollection = "journal_entries"
)

// MongoUserStore implements UserStore on the users collection.
type MongoUserStore struct {
	db *database.Mongo
}

func NewMongoUserStore(db *database.Mongo) *MongoUserStore {
	return &MongoUserStore{db: db}
}

func (s *MongoUserStore) Find(ctx context.Context, username string) (models.User, error) {
	if err := s.db.Available(); err != nil {
		return models.User{}, err
	}
	var user models.User
	err := s.db.Collection(usersCollection).FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, apperr.ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *MongoUserStore) Insert(ctx context.Context, user models.User) error {
	if err := s.db.Available(); err != nil {
		return err
	}
	_, err := s.db.Collection(usersCollection).InsertOne(ctx, user)
	return err
}

func (s *MongoUserStore) UpdatePassword(ctx context.Context, username, digest string) error {
	if err := s.db.Available(); err != nil {
		return err
	}
	res, err := s.db.Collection(usersCollection).UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$set": bson.M{"password": digest}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// MongoEntryStore implements EntryStore on the journal_entries collection.
type MongoEntryStore struct {
	db *database.Mongo
}

func NewMongoEntryStore(db *database.Mongo) *MongoEntryStore {
	return &MongoEntryStore{db: db}
}

func (s *MongoEntryStore) Insert(ctx context.Context, entry models.Entry) error {
	if err := s.db.Available(); err != nil {
		return err
	}
	_, err := s.db.Collection(entriesCollection).InsertOne(ctx, entry)
	return err
}

func (s *MongoEntryStore) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Entry, error) {
	cursor, err := s.db.Collection(entriesCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *MongoEntryStore) ListByOwner(ctx context.Context, owner string) ([]models.Entry, error) {
	if err := s.db.Available(); err != nil {
		return nil, err
	}
	opts := options.Find().SetSort(bson.M{"timestamp": -1})
	return s.find(ctx, bson.M{"username": owner}, opts)
}

func (s *MongoEntryStore) ListRecent(ctx context.Context, owner string, limit int) ([]models.Entry, error) {
	if err := s.db.Available(); err != nil {
		return nil, err
	}
	opts := options.Find().SetSort(bson.M{"timestamp": -1}).SetLimit(int64(limit))
	return s.find(ctx, bson.M{"username": owner}, opts)
}

func (s *MongoEntryStore) ListBetween(ctx context.Context, owner string, start, end time.Time) ([]models.Entry, error) {
	if err := s.db.Available(); err != nil {
		return nil, err
	}
	filter := bson.M{
		"username":  owner,
		"timestamp": bson.M{"$gte": start, "$lte": end},
	}
	opts := options.Find().SetSort(bson.M{"timestamp": 1})
	return s.find(ctx, filter, opts)
}

func (s *MongoEntryStore) FindByID(ctx context.Context, owner, id string) (models.Entry, error) {
	if err := s.db.Available(); err != nil {
		return models.Entry{}, err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Entry{}, apperr.ErrNotFound
	}
	var entry models.Entry
	err = s.db.Collection(entriesCollection).FindOne(ctx, bson.M{"_id": oid, "username": owner}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Entry{}, apperr.ErrNotFound
	}
	if err != nil {
		return models.Entry{}, err
	}
	return entry, nil
}

func (s *MongoEntryStore) UpdateSentiment(ctx context.Context, owner, id string, sentiment models.Sentiment) error {
	if err := s.db.Available(); err != nil {
		return err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.ErrNotFound
	}
	res, err := s.db.Collection(entriesCollection).UpdateOne(ctx,
		bson.M{"_id": oid, "username": owner},
		bson.M{"$set": bson.M{"sentiment": string(sentiment)}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (s *MongoEntryStore) CountBySentiment(ctx context.Context, owner string) ([]SentimentCount, error) {
	if err := s.db.Available(); err != nil {
		return nil, err
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"username": owner}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$ifNull": bson.A{"$sentiment", "unknown"}},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := s.db.Collection(entriesCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Sentiment string `bson:"_id"`
		Count     int    `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make([]SentimentCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, SentimentCount{Sentiment: row.Sentiment, Count: row.Count})
	}
	return counts, nil
}

func (s *MongoEntryStore) CountByDaySentiment(ctx context.Context, owner string) ([]DaySentimentCount, error) {
	if err := s.db.Available(); err != nil {
		return nil, err
	}
	// Timestamps are stored in UTC, so $dateToString buckets by UTC day.
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"username": owner}}},
		{{Key: "$project", Value: bson.M{
			"date":      bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$timestamp"}},
			"sentiment": bson.M{"$ifNull": bson.A{"$sentiment", "unknown"}},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"date": "$date", "sentiment": "$sentiment"},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id.date": 1}}},
	}

	cursor, err := s.db.Collection(entriesCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID struct {
			Date      string `bson:"date"`
			Sentiment string `bson:"sentiment"`
		} `bson:"_id"`
		Count int `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make([]DaySentimentCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, DaySentimentCount{
			Date:      row.ID.Date,
			Sentiment: row.ID.Sentiment,
			Count:     row.Count,
		})
	}
	return counts, nil
}
