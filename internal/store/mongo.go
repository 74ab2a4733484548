package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// documentKey is the fixed _id of the single persisted document.
const documentKey = "shuttle-tracker"

// mongoDoc wraps the document for storage as one Mongo record, keeping
// the whole-document read-modify-write contract of the other backends.
type mongoDoc struct {
	ID       string    `bson:"_id"`
	Document *Document `bson:"document"`
}

// MongoBackend stores the whole document as a single record in a
// collection, upserted on every write.
type MongoBackend struct {
	Collection *mongo.Collection
}

// ConnectMongo connects to MongoDB and returns a backend over the
// documents collection of the shuttle database.
func ConnectMongo(uri string) (*MongoBackend, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &MongoBackend{Collection: client.Database("shuttle").Collection("documents")}, nil
}

func (b *MongoBackend) ReadDocument() (*Document, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var wrapped mongoDoc
	err := b.Collection.FindOne(ctx, bson.M{"_id": documentKey}).Decode(&wrapped)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	return wrapped.Document, nil
}

func (b *MongoBackend) WriteDocument(doc *Document) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	_, err := b.Collection.ReplaceOne(ctx, bson.M{"_id": documentKey}, mongoDoc{ID: documentKey, Document: doc}, opts)
	if err != nil {
		return fmt.Errorf("mongo replace: %w", err)
	}
	return nil
}
