package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var _ Store = (*MongoStore)(nil)

// MongoStore maps collections one to one onto a MongoDB database. Identifiers
// are ObjectIDs in hex form.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// OpenMongo connects to uri and selects database. timeout bounds connecting and
// server selection; there is no reconnect policy beyond the driver's own.
func OpenMongo(ctx context.Context, uri, database string, timeout time.Duration) (*MongoStore, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoStore{client: client, db: client.Database(database)}, nil
}

func (s *MongoStore) Name() string { return "mongo" }

// DatabaseName is reported by diagnostics.
func (s *MongoStore) DatabaseName() string { return s.db.Name() }

func (s *MongoStore) Insert(ctx context.Context, collection string, doc Document) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, bson.M(withoutID(doc)))
	if err != nil {
		return "", fmt.Errorf("insert document: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (s *MongoStore) Find(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	cur, err := s.db.Collection(collection).Find(ctx, mongoQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("find documents: %w", err)
	}
	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("read documents: %w", err)
	}
	out := make([]Document, 0, len(raw))
	for _, m := range raw {
		doc := plain(m).(map[string]any)
		delete(doc, IDField)
		out = append(out, doc)
	}
	return out, nil
}

func (s *MongoStore) ListCollections(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// mongoQuery translates a Filter into a query document. Mongo applies the same
// array semantics as Filter.Matches: equality on an array field tests membership.
func mongoQuery(f Filter) bson.M {
	q := bson.M{}
	for field, c := range f {
		switch c := c.(type) {
		case Eq:
			q[field] = c.Value
		case In:
			q[field] = bson.M{"$in": c.Values}
		}
	}
	return q
}

// plain converts decoded BSON values into the map/slice shapes the other
// backends produce.
func plain(v any) any {
	switch t := v.(type) {
	case bson.M:
		return plainMap(t)
	case map[string]any:
		return plainMap(t)
	case bson.D:
		m := make(map[string]any, len(t))
		for _, e := range t {
			m[e.Key] = plain(e.Value)
		}
		return m
	case bson.A:
		return plainSlice(t)
	case []any:
		return plainSlice(t)
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC()
	default:
		return v
	}
}

func plainMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = plain(v)
	}
	return out
}

func plainSlice(s []any) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = plain(v)
	}
	return out
}
