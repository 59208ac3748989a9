// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/taibuivan/folio/pkg/uuidv7"
)

// createdKey holds the insertion time used as natural order. It is stripped
// from the fields handed back to callers.
const createdKey = "_created"

// MongoStore maps each logical collection onto a MongoDB collection of the
// same name, with the document id as _id.
type MongoStore struct {
	client   *mongo.Client
	database *mongo.Database
}

// NewMongoStore wraps a connected client.
func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{client: client, database: client.Database(database)}
}

// ConnectMongo dials uri and checks that the server answers before returning.
func ConnectMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("docstore: mongo connect: %w", err)
	}

	store := NewMongoStore(client, database)
	if err := store.Ping(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("docstore: mongo ping: %w", err)
	}
	return store, nil
}

var _ Store = (*MongoStore)(nil)

func (repository *MongoStore) List(ctx context.Context, collection, orderBy string) ([]Document, error) {
	sort := bson.D{{Key: createdKey, Value: 1}, {Key: "_id", Value: 1}}
	if field, desc := ParseOrder(orderBy); field != "" {
		direction := 1
		if desc {
			direction = -1
		}
		sort = append(bson.D{{Key: field, Value: direction}}, sort...)
	}

	cursor, err := repository.database.Collection(collection).Find(ctx, bson.D{}, options.Find().SetSort(sort))
	if err != nil {
		return nil, storeError("list", collection, "", err)
	}

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, storeError("list", collection, "", err)
	}

	docs := make([]Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, fromBSON(m))
	}

	// MongoDB sorts missing fields first; re-sorting stably moves them last
	// while keeping the server's order for everything else.
	SortDocuments(docs, orderBy)
	return docs, nil
}

func (repository *MongoStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	var raw bson.M
	err := repository.database.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&raw)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError("get", collection, id, err)
	}

	doc := fromBSON(raw)
	return &doc, nil
}

func (repository *MongoStore) Create(ctx context.Context, collection, id string, fields map[string]any) (Document, error) {
	if id == "" {
		id = uuidv7.New()
	}

	record := bson.M{"_id": id, createdKey: time.Now().UTC()}
	for k, v := range fields {
		record[k] = v
	}

	_, err := repository.database.Collection(collection).InsertOne(ctx, record)
	if mongo.IsDuplicateKeyError(err) {
		return Document{}, storeError("create", collection, id, ErrAlreadyExists)
	}
	if err != nil {
		return Document{}, storeError("create", collection, id, err)
	}

	return Document{ID: id, Fields: cloneFields(fields)}, nil
}

func (repository *MongoStore) Update(ctx context.Context, collection, id string, patch map[string]any) (Document, error) {
	// An empty $set is rejected by the server, so an empty patch is a read.
	if len(patch) == 0 {
		doc, err := repository.Get(ctx, collection, id)
		if err != nil {
			return Document{}, err
		}
		if doc == nil {
			return Document{}, storeError("update", collection, id, ErrNotFound)
		}
		return *doc, nil
	}

	var raw bson.M
	err := repository.database.Collection(collection).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": patch},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&raw)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return Document{}, storeError("update", collection, id, ErrNotFound)
	}
	if err != nil {
		return Document{}, storeError("update", collection, id, err)
	}

	return fromBSON(raw), nil
}

func (repository *MongoStore) Delete(ctx context.Context, collection, id string) error {
	_, err := repository.database.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	return storeError("delete", collection, id, err)
}

func (repository *MongoStore) Ping(ctx context.Context) error {
	return repository.client.Ping(ctx, readpref.Primary())
}

func (repository *MongoStore) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = repository.client.Disconnect(ctx)
}

// fromBSON turns a decoded MongoDB record into a Document with plain Go values.
func fromBSON(raw bson.M) Document {
	id, _ := raw["_id"].(string)
	delete(raw, "_id")
	delete(raw, createdKey)

	fields := make(map[string]any, len(raw))
	for k, v := range raw {
		fields[k] = plainValue(v)
	}
	return Document{ID: id, Fields: fields}
}

func plainValue(v any) any {
	switch t := v.(type) {
	case bson.M:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = plainValue(item)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = plainValue(e.Value)
		}
		return out
	case primitive.A:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = plainValue(item)
		}
		return out
	case primitive.DateTime:
		return t.Time().UTC().Format(TimeLayout)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	default:
		return v
	}
}
