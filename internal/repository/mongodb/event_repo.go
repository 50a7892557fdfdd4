package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"techevents/internal/domain"
)

// CollectionName is the MongoDB collection holding event documents.
const CollectionName = "events"

type eventRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
}

func NewEventRepository(client *mongo.Client, dbName string) domain.EventRepository {
	return &eventRepository{
		client:     client,
		collection: client.Database(dbName).Collection(CollectionName),
	}
}

// buildFilter translates a domain filter into a MongoDB query document.
// ID and ExcludeID are never set together; Date (exact) takes precedence
// over the DateFrom/DateTo range.
func buildFilter(f domain.EventFilter) bson.M {
	query := bson.M{}
	if !f.ID.IsZero() {
		query["_id"] = f.ID
	} else if !f.ExcludeID.IsZero() {
		query["_id"] = bson.M{"$ne": f.ExcludeID}
	}
	if !f.IncludeDeleted {
		query["is_deleted"] = false
	}
	if f.Title != "" {
		query["title"] = f.Title
	}
	if f.Date != nil {
		query["date"] = *f.Date
	} else if f.DateFrom != nil || f.DateTo != nil {
		dateRange := bson.M{}
		if f.DateFrom != nil {
			dateRange["$gte"] = *f.DateFrom
		}
		if f.DateTo != nil {
			dateRange["$lte"] = *f.DateTo
		}
		query["date"] = dateRange
	}
	if len(f.Tags) > 0 {
		query["tags"] = bson.M{"$in": f.Tags}
	}
	return query
}

// buildPatch translates a domain patch into a $set update document.
// Only non-nil fields are written; updated_at is always written.
func buildPatch(p domain.EventPatch) bson.M {
	set := bson.M{"updated_at": p.UpdatedAt}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Date != nil {
		set["date"] = *p.Date
	}
	if p.Location != nil {
		set["location"] = *p.Location
	}
	if p.Organizer != nil {
		set["organizer"] = *p.Organizer
	}
	if p.Tags != nil {
		set["tags"] = p.Tags
	}
	if p.Capacity != nil {
		set["capacity"] = *p.Capacity
	}
	if p.IsDeleted != nil {
		set["is_deleted"] = *p.IsDeleted
	}
	return bson.M{"$set": set}
}

// listSort orders pages by creation time ascending with _id as a
// tie-break, so repeated queries over the same data return the same pages.
var listSort = bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}

func (r *eventRepository) Insert(ctx context.Context, e *domain.Event) error {
	res, err := r.collection.InsertOne(ctx, e)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("insert event: unexpected inserted id type %T", res.InsertedID)
	}
	e.ID = id
	return nil
}

func (r *eventRepository) FindOne(ctx context.Context, filter domain.EventFilter) (*domain.Event, error) {
	e := &domain.Event{}
	err := r.collection.FindOne(ctx, buildFilter(filter)).Decode(e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return e, nil
}

func (r *eventRepository) FindMany(ctx context.Context, filter domain.EventFilter, params domain.PaginationParams) ([]*domain.Event, int64, error) {
	query := buildFilter(filter)

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}

	opts := options.Find().
		SetSort(listSort).
		SetSkip(int64(params.Skip())).
		SetLimit(int64(params.Limit))
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []*domain.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, 0, fmt.Errorf("decode events: %w", err)
	}
	return events, total, nil
}

func (r *eventRepository) UpdateOne(ctx context.Context, filter domain.EventFilter, patch domain.EventPatch) (*domain.Event, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	e := &domain.Event{}
	err := r.collection.FindOneAndUpdate(ctx, buildFilter(filter), buildPatch(patch), opts).Decode(e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return e, nil
}

func (r *eventRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, readpref.Primary())
}
