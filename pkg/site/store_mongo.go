package site

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DefaultCollection is the collection MongoStore reads sites from.
const DefaultCollection = "sites"

// MongoStore reads sites from a MongoDB collection.
// Domains are matched with a strength-2 collation, which ignores case.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore creates a store reading from the named collection of db.
// An empty name means DefaultCollection.
func NewMongoStore(db *mongo.Database, collection string) *MongoStore {
	if collection == "" {
		collection = DefaultCollection
	}
	return &MongoStore{coll: db.Collection(collection)}
}

type mongoSite struct {
	ID     int64  `bson:"site_id"`
	Domain string `bson:"domain"`
	Name   string `bson:"name"`
}

func (m mongoSite) site() *Site {
	return &Site{ID: m.ID, Domain: m.Domain, Name: m.Name}
}

func (s *MongoStore) FindByDomain(ctx context.Context, domain string) (*Site, error) {
	opts := options.FindOne().
		SetCollation(&options.Collation{Locale: "en", Strength: 2}).
		SetSort(bson.D{{Key: "site_id", Value: 1}})
	return s.findOne(ctx, bson.D{{Key: "domain", Value: domain}}, opts)
}

func (s *MongoStore) FindByID(ctx context.Context, id int64) (*Site, error) {
	return s.findOne(ctx, bson.D{{Key: "site_id", Value: id}}, options.FindOne())
}

func (s *MongoStore) findOne(ctx context.Context, filter bson.D, opts *options.FindOneOptionsBuilder) (*Site, error) {
	var doc mongoSite
	if err := s.coll.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSiteNotFound
		}
		return nil, err
	}
	return doc.site(), nil
}
