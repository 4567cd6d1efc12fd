package registry

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoCollection is the subset of *mongo.Collection used for slug claims.
type MongoCollection interface {
	CountDocuments(ctx context.Context, filter any, opts ...options.Lister[options.CountOptions]) (int64, error)
	InsertOne(ctx context.Context, document any, opts ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error)
}

// MongoSet stores taken slugs as document ids in a collection.
type MongoSet struct {
	coll MongoCollection
}

// Mongo returns a slug registry over coll.
func Mongo(coll MongoCollection) *MongoSet {
	return &MongoSet{coll: coll}
}

// Available is a slug.Predicate accepting candidates with no document.
func (m *MongoSet) Available(ctx context.Context, candidate string) (bool, error) {
	n, err := m.coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: candidate}}, options.Count().SetLimit(1))
	if err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}
	return n == 0, nil
}

// Claim is a slug.Predicate that inserts {_id: candidate}; a duplicate key
// error means the slug is taken.
func (m *MongoSet) Claim(ctx context.Context, candidate string) (bool, error) {
	_, err := m.coll.InsertOne(ctx, bson.D{{Key: "_id", Value: candidate}})
	switch {
	case err == nil:
		return true, nil
	case mongo.IsDuplicateKeyError(err):
		return false, nil
	default:
		return false, errors.Join(ErrClaimFailed, err)
	}
}
