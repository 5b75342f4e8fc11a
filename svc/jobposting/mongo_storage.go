package jobposting

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CollectionName is the default MongoDB collection for job postings.
const CollectionName = "job_postings"

// MongoStorage stores job postings in a MongoDB collection.
type MongoStorage struct {
	coll *mongo.Collection
}

// NewMongoStorage creates a MongoStorage backed by db.CollectionName.
func NewMongoStorage(db *mongo.Database) *MongoStorage {
	return &MongoStorage{coll: db.Collection(CollectionName)}
}

// EnsureIndexes creates the org lookup index. It is safe to call on every start.
func (s *MongoStorage) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "org_id", Value: 1}, {Key: "created_at", Value: -1}},
		Options: options.Index().SetName("org_created"),
	})
	if err != nil {
		return errors.Join(ErrFailedToCreateIndexes, err)
	}
	return nil
}

func (s *MongoStorage) Insert(ctx context.Context, posting *JobPosting) error {
	_, err := s.coll.InsertOne(ctx, posting)
	return err
}

func (s *MongoStorage) Replace(ctx context.Context, posting *JobPosting) error {
	res, err := s.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: posting.ID}}, posting)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStorage) Get(ctx context.Context, id bson.ObjectID) (*JobPosting, error) {
	var posting JobPosting
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&posting)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Join(ErrFailedToLoad, err)
	}
	return &posting, nil
}
