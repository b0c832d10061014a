package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	ErrUnavailable = errors.New("document store unavailable")
	ErrWriteFailed = errors.New("document store write failed")
)

const connectTimeout = 10 * time.Second

// Store is the single point of contact with the backing MongoDB database.
// A Store without a configured connection stays usable: every data call
// returns ErrUnavailable instead of crashing, and /test reports the
// degraded state.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect never fails hard. An empty or invalid URI yields a degraded Store
// so the process can still serve / and /test.
func Connect(uri, name string) *Store {
	if uri == "" {
		log.Println("DATABASE_URL not set, running without a document store")
		return &Store{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Printf("Mongo connect failed: %v (running degraded)", err)
		return &Store{}
	}

	return &Store{client: client, db: client.Database(name)}
}

func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

// CreateDocument inserts one document into the named collection and returns
// the store-assigned identifier as a hex string.
func (s *Store) CreateDocument(ctx context.Context, collection string, doc any) (string, error) {
	if !s.Available() {
		return "", ErrUnavailable
	}

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

// GetDocuments returns every document matching the filter, up to limit when
// limit > 0. Documents keep their _id attached; callers decide whether to
// strip or rename it.
func (s *Store) GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}

	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// SetField writes a single field on one document. Used by login to persist
// the issued session token.
func (s *Store) SetField(ctx context.Context, collection string, id primitive.ObjectID, field string, value any) error {
	if !s.Available() {
		return ErrUnavailable
	}

	_, err := s.db.Collection(collection).UpdateByID(ctx, id, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	if !s.Available() {
		return ErrUnavailable
	}
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	return s.db.ListCollectionNames(ctx, bson.M{})
}
