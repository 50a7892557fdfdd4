package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"techevents/internal/domain"
)

// Field length limits shared by create and update validation.
const (
	maxTitleLen    = 200
	maxLocationLen = 200
)

type eventService struct {
	repo           domain.EventRepository
	validate       *validator.Validate
	contextTimeout time.Duration
	now            func() time.Time
}

func NewEventService(repo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		repo:           repo,
		validate:       validator.New(),
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// normalizeTags trims and lowercases tags, drops empties, and removes
// duplicates keeping the first occurrence. Never fails.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func requiredError(field string) error {
	return &domain.ValidationError{Field: field, Reason: "is required"}
}

func tooLongError(field string, max int) error {
	return &domain.ValidationError{Field: field, Reason: fmt.Sprintf("must be at most %d characters", max)}
}

func (s *eventService) checkTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return requiredError("title")
	}
	if len(title) > maxTitleLen {
		return tooLongError("title", maxTitleLen)
	}
	return nil
}

func (s *eventService) checkLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return requiredError("location")
	}
	if len(location) > maxLocationLen {
		return tooLongError("location", maxLocationLen)
	}
	return nil
}

func (s *eventService) checkOrganizer(organizer string) error {
	if strings.TrimSpace(organizer) == "" {
		return requiredError("organizer")
	}
	if err := s.validate.Var(organizer, "email"); err != nil {
		return domain.ErrInvalidEmail
	}
	return nil
}

func (s *eventService) checkDate(date time.Time) error {
	if date.Before(s.now()) {
		return domain.ErrPastDate
	}
	return nil
}

func checkCapacity(capacity int) error {
	if capacity <= 0 {
		return domain.ErrInvalidCapacity
	}
	return nil
}

// validateCreate applies the full rule set to a create payload, in order:
// required fields, organizer email format, date not in the past, positive
// capacity. Tag normalization happens separately and never fails.
func (s *eventService) validateCreate(input domain.EventCreateInput) error {
	if err := s.checkTitle(input.Title); err != nil {
		return err
	}
	if strings.TrimSpace(input.Description) == "" {
		return requiredError("description")
	}
	if input.Date.IsZero() {
		return requiredError("date")
	}
	if err := s.checkLocation(input.Location); err != nil {
		return err
	}
	if err := s.checkOrganizer(input.Organizer); err != nil {
		return err
	}
	if err := s.checkDate(input.Date); err != nil {
		return err
	}
	return checkCapacity(input.Capacity)
}

// validateUpdate applies the create rules to the fields present in a
// partial payload only.
func (s *eventService) validateUpdate(input domain.EventUpdateInput) error {
	if input.Title != nil {
		if err := s.checkTitle(*input.Title); err != nil {
			return err
		}
	}
	if input.Description != nil && strings.TrimSpace(*input.Description) == "" {
		return requiredError("description")
	}
	if input.Location != nil {
		if err := s.checkLocation(*input.Location); err != nil {
			return err
		}
	}
	if input.Organizer != nil {
		if err := s.checkOrganizer(*input.Organizer); err != nil {
			return err
		}
	}
	if input.Date != nil {
		if err := s.checkDate(*input.Date); err != nil {
			return err
		}
	}
	if input.Capacity != nil {
		if err := checkCapacity(*input.Capacity); err != nil {
			return err
		}
	}
	return nil
}

// checkDuplicate probes for a non-deleted event with the same title and
// date, excluding excludeID when set. The probe and the subsequent write
// are not transactional; two concurrent creates with the same pair can
// both pass.
func (s *eventService) checkDuplicate(ctx context.Context, title string, date time.Time, excludeID primitive.ObjectID) error {
	_, err := s.repo.FindOne(ctx, domain.EventFilter{
		Title:     title,
		Date:      &date,
		ExcludeID: excludeID,
	})
	if err == nil {
		return domain.ErrDuplicateEvent
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return fmt.Errorf("check duplicate: %w", err)
}

func (s *eventService) CreateEvent(ctx context.Context, input domain.EventCreateInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.validateCreate(input); err != nil {
		return nil, err
	}
	tags := normalizeTags(input.Tags)

	date := input.Date.UTC()
	if err := s.checkDuplicate(ctx, input.Title, date, primitive.NilObjectID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	event := domain.NewEvent(input.Title, input.Description, date, input.Location, input.Organizer, tags, input.Capacity, now, now)
	if err := s.repo.Insert(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	event, err := s.repo.FindOne(ctx, domain.EventFilter{ID: oid})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, query domain.EventListQuery) ([]*domain.Event, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	filter := domain.EventFilter{
		DateFrom: query.DateFrom,
		DateTo:   query.DateTo,
		Tags:     normalizeTags(query.Tags),
	}
	events, total, err := s.repo.FindMany(ctx, filter, query.Params)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, total, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, input domain.EventUpdateInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	existing, err := s.repo.FindOne(ctx, domain.EventFilter{ID: oid})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	if input.Title == nil && input.Description == nil && input.Date == nil &&
		input.Location == nil && input.Organizer == nil && input.Tags == nil &&
		input.Capacity == nil {
		return existing, nil
	}

	if err := s.validateUpdate(input); err != nil {
		return nil, err
	}

	var tags []string
	if input.Tags != nil {
		tags = normalizeTags(input.Tags)
	}

	var date *time.Time
	if input.Date != nil {
		d := input.Date.UTC()
		date = &d
	}

	if input.Title != nil || date != nil {
		newTitle := existing.Title
		if input.Title != nil {
			newTitle = *input.Title
		}
		newDate := existing.Date
		if date != nil {
			newDate = *date
		}
		if err := s.checkDuplicate(ctx, newTitle, newDate, oid); err != nil {
			return nil, err
		}
	}

	patch := domain.EventPatch{
		Title:       input.Title,
		Description: input.Description,
		Date:        date,
		Location:    input.Location,
		Organizer:   input.Organizer,
		Tags:        tags,
		Capacity:    input.Capacity,
		UpdatedAt:   s.now().UTC(),
	}
	updated, err := s.repo.UpdateOne(ctx, domain.EventFilter{ID: oid}, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}
	// The filter matches only non-deleted documents, so a second delete of
	// the same event reports not found.
	deleted := true
	_, err = s.repo.UpdateOne(ctx, domain.EventFilter{ID: oid}, domain.EventPatch{
		IsDeleted: &deleted,
		UpdatedAt: s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.Ping(ctx)
}
