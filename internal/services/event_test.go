package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"techevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeEventRepo is an in-memory EventRepository for tests. It stores value
// copies so callers cannot mutate stored state through returned pointers.
type fakeEventRepo struct {
	byID      map[primitive.ObjectID]domain.Event
	insertErr error
	pingErr   error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[primitive.ObjectID]domain.Event)}
}

func matches(e domain.Event, f domain.EventFilter) bool {
	if !f.ID.IsZero() && e.ID != f.ID {
		return false
	}
	if !f.ExcludeID.IsZero() && e.ID == f.ExcludeID {
		return false
	}
	if !f.IncludeDeleted && e.IsDeleted {
		return false
	}
	if f.Title != "" && e.Title != f.Title {
		return false
	}
	if f.Date != nil && !e.Date.Equal(*f.Date) {
		return false
	}
	if f.Date == nil {
		if f.DateFrom != nil && e.Date.Before(*f.DateFrom) {
			return false
		}
		if f.DateTo != nil && e.Date.After(*f.DateTo) {
			return false
		}
	}
	if len(f.Tags) > 0 {
		found := false
		for _, want := range f.Tags {
			for _, have := range e.Tags {
				if want == have {
					found = true
				}
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// sorted returns matching events ordered by CreatedAt then ID, matching the
// real repository's deterministic sort.
func (r *fakeEventRepo) sorted(f domain.EventFilter) []domain.Event {
	var out []domain.Event
	for _, e := range r.byID {
		if matches(e, f) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.Hex() < out[j].ID.Hex()
	})
	return out
}

func (r *fakeEventRepo) Insert(ctx context.Context, e *domain.Event) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	e.ID = primitive.NewObjectID()
	r.byID[e.ID] = *e
	return nil
}

func (r *fakeEventRepo) FindOne(ctx context.Context, f domain.EventFilter) (*domain.Event, error) {
	for _, e := range r.byID {
		if matches(e, f) {
			found := e
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeEventRepo) FindMany(ctx context.Context, f domain.EventFilter, params domain.PaginationParams) ([]*domain.Event, int64, error) {
	all := r.sorted(f)
	total := int64(len(all))
	start := params.Skip()
	if start > len(all) {
		start = len(all)
	}
	end := start + params.Limit
	if end > len(all) {
		end = len(all)
	}
	page := make([]*domain.Event, 0, end-start)
	for _, e := range all[start:end] {
		found := e
		page = append(page, &found)
	}
	return page, total, nil
}

func (r *fakeEventRepo) UpdateOne(ctx context.Context, f domain.EventFilter, p domain.EventPatch) (*domain.Event, error) {
	for id, e := range r.byID {
		if !matches(e, f) {
			continue
		}
		if p.Title != nil {
			e.Title = *p.Title
		}
		if p.Description != nil {
			e.Description = *p.Description
		}
		if p.Date != nil {
			e.Date = *p.Date
		}
		if p.Location != nil {
			e.Location = *p.Location
		}
		if p.Organizer != nil {
			e.Organizer = *p.Organizer
		}
		if p.Tags != nil {
			e.Tags = p.Tags
		}
		if p.Capacity != nil {
			e.Capacity = *p.Capacity
		}
		if p.IsDeleted != nil {
			e.IsDeleted = *p.IsDeleted
		}
		e.UpdatedAt = p.UpdatedAt
		r.byID[id] = e
		found := e
		return &found, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakeEventRepo) Ping(ctx context.Context) error { return r.pingErr }

// newTestService returns a service over the fake repo with a controllable
// clock starting at base; each call to tick advances it.
func newTestService(repo *fakeEventRepo, base time.Time) (domain.EventService, func(d time.Duration)) {
	svc := NewEventService(repo, time.Second)
	es := svc.(*eventService)
	current := base
	es.now = func() time.Time { return current }
	return svc, func(d time.Duration) { current = current.Add(d) }
}

func validInput(title string, date time.Time) domain.EventCreateInput {
	return domain.EventCreateInput{
		Title:       title,
		Description: "Annual conference for Go developers",
		Date:        date,
		Location:    "Berlin",
		Organizer:   "organizer@gophercon.dev",
		Tags:        []string{"go", "conference"},
		Capacity:    250,
	}
}

func TestEventService_CreateEvent_RoundTrip(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeEventRepo()
	svc, _ := newTestService(repo, base)

	input := validInput("GopherCon 2025", base.Add(30*24*time.Hour))
	created, err := svc.CreateEvent(ctx, input)
	require.NoError(t, err)
	require.False(t, created.ID.IsZero(), "repository must assign an id")
	assert.Equal(t, input.Title, created.Title)
	assert.Equal(t, input.Description, created.Description)
	assert.True(t, created.Date.Equal(input.Date))
	assert.Equal(t, input.Location, created.Location)
	assert.Equal(t, input.Organizer, created.Organizer)
	assert.Equal(t, input.Capacity, created.Capacity)
	assert.False(t, created.IsDeleted)
	assert.Equal(t, base, created.CreatedAt)
	assert.Equal(t, base, created.UpdatedAt)

	got, err := svc.GetEventByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Title, got.Title)
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	future := base.Add(24 * time.Hour)

	tests := []struct {
		name    string
		mutate  func(*domain.EventCreateInput)
		wantIs  error
		wantVal bool // expect any *domain.ValidationError
	}{
		{
			name:    "missing title",
			mutate:  func(in *domain.EventCreateInput) { in.Title = "  " },
			wantVal: true,
		},
		{
			name:    "missing description",
			mutate:  func(in *domain.EventCreateInput) { in.Description = "" },
			wantVal: true,
		},
		{
			name:    "missing date",
			mutate:  func(in *domain.EventCreateInput) { in.Date = time.Time{} },
			wantVal: true,
		},
		{
			name:    "missing location",
			mutate:  func(in *domain.EventCreateInput) { in.Location = "" },
			wantVal: true,
		},
		{
			name:    "title too long",
			mutate:  func(in *domain.EventCreateInput) { in.Title = string(make([]byte, 201)) },
			wantVal: true,
		},
		{
			name:   "invalid organizer email",
			mutate: func(in *domain.EventCreateInput) { in.Organizer = "not-an-email" },
			wantIs: domain.ErrInvalidEmail,
		},
		{
			name:   "past date",
			mutate: func(in *domain.EventCreateInput) { in.Date = base.Add(-time.Hour) },
			wantIs: domain.ErrPastDate,
		},
		{
			name:   "zero capacity",
			mutate: func(in *domain.EventCreateInput) { in.Capacity = 0 },
			wantIs: domain.ErrInvalidCapacity,
		},
		{
			name:   "negative capacity",
			mutate: func(in *domain.EventCreateInput) { in.Capacity = -10 },
			wantIs: domain.ErrInvalidCapacity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(newFakeEventRepo(), base)
			input := validInput("GopherCon 2025", future)
			tt.mutate(&input)

			_, err := svc.CreateEvent(ctx, input)
			require.Error(t, err)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			var ve *domain.ValidationError
			assert.ErrorAs(t, err, &ve, "all validation failures are ValidationError")
		})
	}
}

func TestEventService_CreateEvent_TagNormalization(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestService(newFakeEventRepo(), base)

	input := validInput("GopherCon 2025", base.Add(24*time.Hour))
	input.Tags = []string{"Python", " GO ", "python", "", "Web"}
	created, err := svc.CreateEvent(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, []string{"python", "go", "web"}, created.Tags, "lowercased, trimmed, deduped, first occurrence order")
}

func TestEventService_CreateEvent_Duplicate(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	date := base.Add(24 * time.Hour)
	repo := newFakeEventRepo()
	svc, tick := newTestService(repo, base)

	first, err := svc.CreateEvent(ctx, validInput("GopherCon 2025", date))
	require.NoError(t, err)

	_, err = svc.CreateEvent(ctx, validInput("GopherCon 2025", date))
	assert.ErrorIs(t, err, domain.ErrDuplicateEvent)

	// Same title on a different date is fine.
	_, err = svc.CreateEvent(ctx, validInput("GopherCon 2025", date.Add(24*time.Hour)))
	require.NoError(t, err)

	// A soft-deleted event no longer blocks the pair.
	require.NoError(t, svc.DeleteEvent(ctx, first.ID.Hex()))
	tick(time.Minute)
	_, err = svc.CreateEvent(ctx, validInput("GopherCon 2025", date))
	require.NoError(t, err)
}

func TestEventService_GetEventByID(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeEventRepo()
	svc, _ := newTestService(repo, base)

	_, err := svc.GetEventByID(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = svc.GetEventByID(ctx, primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	created, err := svc.CreateEvent(ctx, validInput("GopherCon 2025", base.Add(24*time.Hour)))
	require.NoError(t, err)
	require.NoError(t, svc.DeleteEvent(ctx, created.ID.Hex()))

	_, err = svc.GetEventByID(ctx, created.ID.Hex())
	assert.ErrorIs(t, err, domain.ErrNotFound, "soft-deleted events read as not found")
}

func TestEventService_ListEvents_Pagination(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeEventRepo()
	svc, tick := newTestService(repo, base)

	for i := 0; i < 12; i++ {
		_, err := svc.CreateEvent(ctx, validInput(fmt.Sprintf("Meetup %02d", i), base.Add(24*time.Hour)))
		require.NoError(t, err)
		tick(time.Minute)
	}

	page1, total, err := svc.ListEvents(ctx, domain.EventListQuery{Params: domain.PaginationParams{Page: 1, Limit: 5}})
	require.NoError(t, err)
	assert.EqualValues(t, 12, total)
	require.Len(t, page1, 5)

	page2, total, err := svc.ListEvents(ctx, domain.EventListQuery{Params: domain.PaginationParams{Page: 2, Limit: 5}})
	require.NoError(t, err)
	assert.EqualValues(t, 12, total)
	require.Len(t, page2, 5)

	seen := map[string]bool{}
	for _, e := range page1 {
		seen[e.ID.Hex()] = true
	}
	for _, e := range page2 {
		assert.False(t, seen[e.ID.Hex()], "pages must not overlap")
	}

	// Creation order ascending.
	assert.Equal(t, "Meetup 00", page1[0].Title)
	assert.Equal(t, "Meetup 05", page2[0].Title)

	page3, _, err := svc.ListEvents(ctx, domain.EventListQuery{Params: domain.PaginationParams{Page: 3, Limit: 5}})
	require.NoError(t, err)
	assert.Len(t, page3, 2)
}

func TestEventService_ListEvents_Filters(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeEventRepo()
	svc, tick := newTestService(repo, base)

	mk := func(title string, date time.Time, tags []string) {
		in := validInput(title, date)
		in.Tags = tags
		_, err := svc.CreateEvent(ctx, in)
		require.NoError(t, err)
		tick(time.Minute)
	}
	mk("PyCon", base.Add(24*time.Hour), []string{"python", "conference"})
	mk("GoCon", base.Add(48*time.Hour), []string{"go", "conference"})
	mk("JS Meetup", base.Add(72*time.Hour), []string{"javascript"})

	params := domain.PaginationParams{Page: 1, Limit: 10}

	events, total, err := svc.ListEvents(ctx, domain.EventListQuery{Tags: []string{"PYTHON"}, Params: params})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, events, 1)
	assert.Equal(t, "PyCon", events[0].Title, "tag match is case-insensitive via normalization")

	events, total, err = svc.ListEvents(ctx, domain.EventListQuery{Tags: []string{"python", "go"}, Params: params})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, events, 2)

	from := base.Add(36 * time.Hour)
	to := base.Add(80 * time.Hour)
	events, total, err = svc.ListEvents(ctx, domain.EventListQuery{DateFrom: &from, DateTo: &to, Params: params})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, e := range events {
		assert.False(t, e.Date.Before(from))
		assert.False(t, e.Date.After(to))
	}
}

func TestEventService_UpdateEvent(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeEventRepo()
	svc, tick := newTestService(repo, base)

	created, err := svc.CreateEvent(ctx, validInput("GopherCon 2025", base.Add(24*time.Hour)))
	require.NoError(t, err)

	t.Run("capacity only", func(t *testing.T) {
		tick(time.Hour)
		capacity := 500
		updated, err := svc.UpdateEvent(ctx, created.ID.Hex(), domain.EventUpdateInput{Capacity: &capacity})
		require.NoError(t, err)
		assert.Equal(t, 500, updated.Capacity)
		assert.Equal(t, created.Title, updated.Title)
		assert.Equal(t, created.Description, updated.Description)
		assert.True(t, updated.Date.Equal(created.Date))
		assert.Equal(t, created.Organizer, updated.Organizer)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt, "created_at is immutable")
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt), "updated_at advances")
	})

	t.Run("empty patch returns current document", func(t *testing.T) {
		before, err := svc.GetEventByID(ctx, created.ID.Hex())
		require.NoError(t, err)
		got, err := svc.UpdateEvent(ctx, created.ID.Hex(), domain.EventUpdateInput{})
		require.NoError(t, err)
		assert.Equal(t, before.UpdatedAt, got.UpdatedAt, "no write on empty patch")
	})

	t.Run("validation applies to supplied fields", func(t *testing.T) {
		bad := "nope"
		_, err := svc.UpdateEvent(ctx, created.ID.Hex(), domain.EventUpdateInput{Organizer: &bad})
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)

		past := base.Add(-time.Hour)
		_, err = svc.UpdateEvent(ctx, created.ID.Hex(), domain.EventUpdateInput{Date: &past})
		assert.ErrorIs(t, err, domain.ErrPastDate)

		zero := 0
		_, err = svc.UpdateEvent(ctx, created.ID.Hex(), domain.EventUpdateInput{Capacity: &zero})
		assert.ErrorIs(t, err, domain.ErrInvalidCapacity)
	})

	t.Run("title change re-checks uniqueness", func(t *testing.T) {
		other, err := svc.CreateEvent(ctx, validInput("DotGo 2025", base.Add(24*time.Hour)))
		require.NoError(t, err)

		title := "GopherCon 2025"
		_, err = svc.UpdateEvent(ctx, other.ID.Hex(), domain.EventUpdateInput{Title: &title})
		assert.ErrorIs(t, err, domain.ErrDuplicateEvent)

		// Re-submitting its own title does not conflict with itself.
		own := "DotGo 2025"
		_, err = svc.UpdateEvent(ctx, other.ID.Hex(), domain.EventUpdateInput{Title: &own})
		require.NoError(t, err)
	})

	t.Run("tags normalized on update", func(t *testing.T) {
		updated, err := svc.UpdateEvent(ctx, created.ID.Hex(), domain.EventUpdateInput{Tags: []string{"Rust", "RUST", " systems "}})
		require.NoError(t, err)
		assert.Equal(t, []string{"rust", "systems"}, updated.Tags)
	})

	t.Run("unknown id", func(t *testing.T) {
		capacity := 10
		_, err := svc.UpdateEvent(ctx, primitive.NewObjectID().Hex(), domain.EventUpdateInput{Capacity: &capacity})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := svc.UpdateEvent(ctx, "xyz", domain.EventUpdateInput{})
		assert.ErrorIs(t, err, domain.ErrInvalidID)
	})
}

func TestEventService_DeleteEvent(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeEventRepo()
	svc, _ := newTestService(repo, base)

	created, err := svc.CreateEvent(ctx, validInput("GopherCon 2025", base.Add(24*time.Hour)))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEvent(ctx, created.ID.Hex()))

	// Soft-deleted: still stored, flag set.
	stored, ok := repo.byID[created.ID]
	require.True(t, ok, "document stays in the collection")
	assert.True(t, stored.IsDeleted)

	// Second delete reports not found.
	assert.ErrorIs(t, svc.DeleteEvent(ctx, created.ID.Hex()), domain.ErrNotFound)

	// Excluded from list and get.
	events, total, err := svc.ListEvents(ctx, domain.EventListQuery{Params: domain.PaginationParams{Page: 1, Limit: 10}})
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
	assert.Empty(t, events)
	_, err = svc.GetEventByID(ctx, created.ID.Hex())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteEvent(ctx, "bogus"), domain.ErrInvalidID)
}

func TestEventService_RepositoryErrors(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeEventRepo()
	repo.insertErr = errors.New("connection reset")
	svc, _ := newTestService(repo, base)

	_, err := svc.CreateEvent(ctx, validInput("GopherCon 2025", base.Add(24*time.Hour)))
	require.Error(t, err)
	var ve *domain.ValidationError
	assert.False(t, errors.As(err, &ve), "storage failures are not validation errors")

	repo.pingErr = errors.New("no reachable servers")
	assert.Error(t, svc.HealthCheck(ctx))
}
