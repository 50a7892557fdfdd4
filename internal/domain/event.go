package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event represents a tech event document
// swagger:model Event
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Date        time.Time          `bson:"date" json:"date"`
	Location    string             `bson:"location" json:"location"`
	Organizer   string             `bson:"organizer" json:"organizer"`
	Tags        []string           `bson:"tags" json:"tags"`
	Capacity    int                `bson:"capacity" json:"capacity"`
	IsDeleted   bool               `bson:"is_deleted" json:"is_deleted"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on insert.
func NewEvent(title, description string, date time.Time, location, organizer string, tags []string, capacity int, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Title:       title,
		Description: description,
		Date:        date,
		Location:    location,
		Organizer:   organizer,
		Tags:        tags,
		Capacity:    capacity,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// EventFilter describes which documents a repository lookup should match.
// The zero value matches all non-deleted events; soft-delete and uniqueness
// filtering is decided by the callers, never inside the repository.
type EventFilter struct {
	ID             primitive.ObjectID
	Title          string
	Date           *time.Time
	ExcludeID      primitive.ObjectID
	Tags           []string
	DateFrom       *time.Time
	DateTo         *time.Time
	IncludeDeleted bool
}

// EventPatch holds the fields of a partial update. Nil fields are left
// untouched in storage; UpdatedAt is always written.
type EventPatch struct {
	Title       *string
	Description *string
	Date        *time.Time
	Location    *string
	Organizer   *string
	Tags        []string
	Capacity    *int
	IsDeleted   *bool
	UpdatedAt   time.Time
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Insert(ctx context.Context, event *Event) error
	FindOne(ctx context.Context, filter EventFilter) (*Event, error)
	FindMany(ctx context.Context, filter EventFilter, params PaginationParams) ([]*Event, int64, error)
	// UpdateOne applies the patch to the single document matching the filter
	// and returns the updated document, or ErrNotFound when nothing matched.
	UpdateOne(ctx context.Context, filter EventFilter, patch EventPatch) (*Event, error)
	Ping(ctx context.Context) error
}

// EventCreateInput carries the caller-supplied fields of a new event.
type EventCreateInput struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
	Organizer   string
	Tags        []string
	Capacity    int
}

// EventUpdateInput carries a partial payload; nil fields are unchanged.
type EventUpdateInput struct {
	Title       *string
	Description *string
	Date        *time.Time
	Location    *string
	Organizer   *string
	Tags        []string
	Capacity    *int
}

// EventListQuery holds the optional list filters alongside pagination.
type EventListQuery struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Tags     []string
	Params   PaginationParams
}

// EventService defines the business operations on events
type EventService interface {
	CreateEvent(ctx context.Context, input EventCreateInput) (*Event, error)
	GetEventByID(ctx context.Context, id string) (*Event, error)
	ListEvents(ctx context.Context, query EventListQuery) ([]*Event, int64, error)
	UpdateEvent(ctx context.Context, id string, input EventUpdateInput) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
	HealthCheck(ctx context.Context) error
}
