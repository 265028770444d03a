package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/ShorelineInteractive/ShorelineBotGo/pkg/logger"
	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// mongoDocument is the wire shape of a named document in the collection.
// The payload stays JSON (not BSON-native) so the same bytes round-trip
// between the file backend and the Mongo backend.
type mongoDocument struct {
	Name string `bson:"_id"`
	Data string `bson:"data"`
}

// MongoStore persists named documents in a single MongoDB collection
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection with a ping
func NewMongoStore(mongoURL, dbName string) (*MongoStore, error) {
	logger.System("Connecting to the document database...", "Storage")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(mongoURL).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		logger.Critical("Failed to connect to the document database.", "Storage")
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Critical("Failed to verify the document database connection.", "Storage")
		return nil, err
	}

	logger.Success("Connected to the document database.", "Storage")

	return &MongoStore{
		client:     client,
		collection: client.Database(dbName).Collection("documents"),
	}, nil
}

// Load reads a named document. A missing document or an unparseable payload
// leaves `into` untouched and returns nil, matching the file backend.
func (s *MongoStore) Load(name string, into interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var doc mongoDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": name}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil
		}
		return fmt.Errorf("reading document %s: %w", name, err)
	}

	if err := json.Unmarshal([]byte(doc.Data), into); err != nil {
		logger.Warn(fmt.Sprintf("Document '%s' is unparseable, resetting to empty: %v", name, err), "Storage")
		return nil
	}
	return nil
}

// Save overwrites a named document via upsert
func (s *MongoStore) Save(name string, doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding document %s: %w", name, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	_, err = s.collection.UpdateOne(ctx,
		bson.M{"_id": name},
		bson.M{"$set": bson.M{"data": string(data)}},
		opts,
	)
	if err != nil {
		return fmt.Errorf("writing document %s: %w", name, err)
	}
	return nil
}

// Ping measures the database response time
func (s *MongoStore) Ping() (time.Duration, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Ping(ctx, readpref.Primary())
	return time.Since(start), err
}

// Disconnect closes the database connection
func (s *MongoStore) Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
