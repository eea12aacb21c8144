package objectstore

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"azulpool/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type storedObject struct {
	Key        string    `bson:"key"`
	Data       []byte    `bson:"data"`
	Size       int64     `bson:"size"`
	UploadedAt time.Time `bson:"uploadedAt"`
}

type mongoObjectStore struct {
	coll *mongo.Collection
}

// NewMongoObjectStore returns an ObjectStore backed by the "objects"
// collection. One document per key; Put with overwrite is an upsert replace.
func NewMongoObjectStore() ObjectStore {
	db := database.MongoClient.Database("azulpool")
	return &mongoObjectStore{
		coll: db.Collection("objects"),
	}
}

// EnsureObjectIndexes creates the unique key index. Call once at startup.
func EnsureObjectIndexes(ctx context.Context) error {
	db := database.MongoClient.Database("azulpool")
	_, err := db.Collection("objects").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *mongoObjectStore) Get(ctx context.Context, key string) ([]byte, error) {
	var obj storedObject
	err := s.coll.FindOne(ctx, bson.M{"key": key}).Decode(&obj)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, err
	}
	return obj.Data, nil
}

func (s *mongoObjectStore) Put(ctx context.Context, key string, data []byte, overwrite bool) error {
	obj := storedObject{
		Key:        key,
		Data:       data,
		Size:       int64(len(data)),
		UploadedAt: time.Now().UTC(),
	}
	if !overwrite {
		_, err := s.coll.InsertOne(ctx, obj)
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", ErrAlreadyExists, key)
		}
		return err
	}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"key": key}, obj, options.Replace().SetUpsert(true))
	return err
}

func (s *mongoObjectStore) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	filter := bson.M{"key": bson.M{"$regex": "^" + regexp.QuoteMeta(prefix)}}
	opts := options.Find().
		SetProjection(bson.M{"data": 0}).
		SetSort(bson.D{{Key: "uploadedAt", Value: -1}})

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []storedObject
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	infos := make([]ObjectInfo, 0, len(docs))
	for _, d := range docs {
		infos = append(infos, ObjectInfo{Key: d.Key, Size: d.Size, UploadedAt: d.UploadedAt})
	}
	return infos, nil
}

func (s *mongoObjectStore) Delete(ctx context.Context, key string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"key": key})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return nil
}
