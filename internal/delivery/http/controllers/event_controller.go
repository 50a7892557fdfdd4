package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"techevents/internal/delivery/http/helpers"
	"techevents/internal/domain"
)

// CreateEventRequest is the request body for POST /api/v1/events.
type CreateEventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Organizer   string    `json:"organizer"`
	Tags        []string  `json:"tags"`
	Capacity    int       `json:"capacity"`
}

// Validate implements Validator. Field presence only; format and range
// rules are enforced by the service.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(c.Description) == "" {
		errs = append(errs, "description is required")
	}
	if c.Date.IsZero() {
		errs = append(errs, "date is required")
	}
	if strings.TrimSpace(c.Location) == "" {
		errs = append(errs, "location is required")
	}
	if strings.TrimSpace(c.Organizer) == "" {
		errs = append(errs, "organizer is required")
	}
	if c.Capacity == 0 {
		errs = append(errs, "capacity is required")
	}
	return errs
}

// UpdateEventRequest is the request body for PUT /api/v1/events/{id}.
// All fields optional; omitted fields are unchanged.
type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location"`
	Organizer   *string    `json:"organizer"`
	Tags        *[]string  `json:"tags"`
	Capacity    *int       `json:"capacity"`
}

// EventSuccessResponse is the success envelope carrying a single event.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventListResponse is the data payload for GET /api/v1/events (200).
type EventListResponse struct {
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
	Events []*domain.Event `json:"events"`
}

// EventListSuccessResponse is the success envelope for GET /api/v1/events (200).
type EventListSuccessResponse struct {
	Data  EventListResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// writeDomainError maps domain errors to HTTP responses and logs anything
// unexpected. Handlers call it after their operation-specific cases.
func (c *EventController) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.As(err, &ve):
		helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeValidation, ve.Error())
	case errors.Is(err, domain.ErrDuplicateEvent):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
	}
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Creates a new tech event. Rejects duplicates of title and date among non-deleted events. Tags are lowercased and deduplicated; id and timestamps are server-generated.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (malformed body)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (duplicate title and date)"
// @Failure 422 {object} helpers.APIResponse "error.code: validation_error"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), domain.EventCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Organizer:   req.Organizer,
		Tags:        req.Tags,
		Capacity:    req.Capacity,
	})
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// ListEvents godoc
// @Summary List events
// @Description Returns a page of non-deleted events ordered by creation time. Optional inclusive date range and tag filters; an event matches when it carries any of the requested tags.
// @Tags events
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Events per page (default 10, max 100)"
// @Param date_from query string false "Earliest event date, RFC 3339"
// @Param date_to query string false "Latest event date, RFC 3339"
// @Param tags query string false "Comma-separated tags (e.g. python,web,ai)"
// @Success 200 {object} controllers.EventListSuccessResponse "data contains total, page, limit, and events"
// @Failure 422 {object} helpers.APIResponse "error.code: validation_error (invalid query params)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	params, err := helpers.ParsePagination(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeValidation, err.Error())
		return
	}

	query := domain.EventListQuery{Params: params}
	if s := r.URL.Query().Get("date_from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeValidation, "date_from must be an RFC 3339 timestamp")
			return
		}
		query.DateFrom = &t
	}
	if s := r.URL.Query().Get("date_to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeValidation, "date_to must be an RFC 3339 timestamp")
			return
		}
		query.DateTo = &t
	}
	if s := strings.TrimSpace(r.URL.Query().Get("tags")); s != "" {
		query.Tags = strings.Split(s, ",")
	}

	events, total, err := c.Service.ListEvents(r.Context(), query)
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventListResponse{
		Total:  total,
		Page:   params.Page,
		Limit:  params.Limit,
		Events: events,
	})
}

// GetEventByID godoc
// @Summary Get an event by ID
// @Description Returns a single non-deleted event. Soft-deleted events report not found.
// @Tags events
// @Produce json
// @Param id path string true "Event ID (ObjectID hex)"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (malformed id)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id} [get]
func (c *EventController) GetEventByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	event, err := c.Service.GetEventByID(r.Context(), id)
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Partially updates a non-deleted event. Only supplied fields change; title/date changes re-check uniqueness; updated_at is refreshed.
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID (ObjectID hex)"
// @Param event body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (malformed id or body)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (duplicate title and date)"
// @Failure 422 {object} helpers.APIResponse "error.code: validation_error"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	input := domain.EventUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Organizer:   req.Organizer,
		Capacity:    req.Capacity,
	}
	if req.Tags != nil {
		tags := *req.Tags
		if tags == nil {
			tags = []string{}
		}
		input.Tags = tags
	}
	event, err := c.Service.UpdateEvent(r.Context(), id, input)
	if err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Soft-deletes an event; the document is retained but excluded from reads. Deleting an already-deleted event reports not found.
// @Tags events
// @Param id path string true "Event ID (ObjectID hex)"
// @Success 204 "no content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (malformed id)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), id); err != nil {
		c.writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
