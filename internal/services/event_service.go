package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ai_manager_backend/internal/models"
	"ai_manager_backend/internal/repositories"
	"ai_manager_backend/pkg/utils"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrInvalidEventStatus = errors.New("invalid event status, expected upcoming, ongoing, completed or cancelled")
)

const (
	defaultEventCapacity  = 100
	defaultEventCategory  = "Other"
	defaultEventOrganizer = "Restaurant Manager"
)

type CreateEventRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Date        *string          `json:"date"`
	Time        string           `json:"time"`
	Venue       string           `json:"venue"`
	Capacity    *utils.FlexInt   `json:"capacity"`
	TicketPrice *utils.FlexFloat `json:"ticketPrice"`
	Category    string           `json:"category"`
}

type UpdateEventRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Date        *string          `json:"date"`
	Time        *string          `json:"time"`
	Venue       *string          `json:"venue"`
	Capacity    *utils.FlexInt   `json:"capacity"`
	TicketPrice *utils.FlexFloat `json:"ticketPrice"`
	TicketsSold *utils.FlexInt   `json:"ticketsSold"`
	Category    *string          `json:"category"`
	Status      *string          `json:"status"`
	Organizer   *string          `json:"organizer"`
	Attendees   *[]string        `json:"attendees"`
}

type EventService interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id string) (models.Event, error)
	CreateEvent(ctx context.Context, req CreateEventRequest) (models.Event, error)
	UpdateEvent(ctx context.Context, id string, req UpdateEventRequest) (models.Event, error)
	DeleteEvent(ctx context.Context, id string) (models.Event, error)
	UpdateStatus(ctx context.Context, id string, status string) (models.Event, error)
	// UpcomingEvents lists events dated after now.
	UpcomingEvents(ctx context.Context) ([]models.Event, error)
	// EventsByCategory matches category case-insensitively.
	EventsByCategory(ctx context.Context, category string) ([]models.Event, error)
}

type eventService struct {
	events repositories.Collection[models.Event]
	now    func() time.Time
}

// NewEventService creates a new instance of EventService.
func NewEventService(events repositories.Collection[models.Event]) EventService {
	return &eventService{events: events, now: time.Now}
}

func (s *eventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	list, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return list, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (models.Event, error) {
	evt, err := s.events.Get(ctx, id)
	if err != nil {
		return models.Event{}, notFoundOr(err, ErrEventNotFound, "get event")
	}
	return evt, nil
}

func (s *eventService) CreateEvent(ctx context.Context, req CreateEventRequest) (models.Event, error) {
	now := s.now()
	date := now
	if parsed := parseOptionalDateTime(req.Date, "date"); parsed != nil {
		date = *parsed
	}

	evt := models.Event{
		ID:          newID("evt"),
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Time:        req.Time,
		Venue:       req.Venue,
		Capacity:    defaultEventCapacity,
		Category:    req.Category,
		Status:      models.EventUpcoming,
		Organizer:   defaultEventOrganizer,
		Attendees:   []string{},
		CreatedAt:   now,
	}
	if req.Capacity != nil && req.Capacity.Int() > 0 {
		evt.Capacity = req.Capacity.Int()
	}
	if req.TicketPrice != nil {
		evt.TicketPrice = req.TicketPrice.Float64()
	}
	if strings.TrimSpace(evt.Category) == "" {
		evt.Category = defaultEventCategory
	}

	created, err := s.events.Create(ctx, evt)
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to create event: %w", err)
	}
	utils.LogInfo("Event created", map[string]interface{}{"event_id": created.ID})
	return created, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, req UpdateEventRequest) (models.Event, error) {
	if req.Status != nil && !models.EventStatus(*req.Status).Valid() {
		return models.Event{}, ErrInvalidEventStatus
	}
	date := parseOptionalDateTime(req.Date, "date")

	updated, err := s.events.Modify(ctx, id, func(evt *models.Event) error {
		applyString(&evt.Title, req.Title)
		applyString(&evt.Description, req.Description)
		applyString(&evt.Time, req.Time)
		applyString(&evt.Venue, req.Venue)
		applyString(&evt.Category, req.Category)
		applyString(&evt.Organizer, req.Organizer)
		if date != nil {
			evt.Date = *date
		}
		if req.Capacity != nil {
			evt.Capacity = req.Capacity.Int()
		}
		if req.TicketPrice != nil {
			evt.TicketPrice = req.TicketPrice.Float64()
		}
		if req.TicketsSold != nil {
			evt.TicketsSold = req.TicketsSold.Int()
		}
		if req.Status != nil {
			evt.Status = models.EventStatus(*req.Status)
		}
		if req.Attendees != nil {
			evt.Attendees = append([]string{}, (*req.Attendees)...)
		}
		now := s.now()
		evt.UpdatedAt = &now
		return nil
	})
	if err != nil {
		return models.Event{}, notFoundOr(err, ErrEventNotFound, "update event")
	}
	return updated, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) (models.Event, error) {
	removed, err := s.events.Delete(ctx, id)
	if err != nil {
		return models.Event{}, notFoundOr(err, ErrEventNotFound, "delete event")
	}
	utils.LogInfo("Event deleted", map[string]interface{}{"event_id": id})
	return removed, nil
}

func (s *eventService) UpdateStatus(ctx context.Context, id string, status string) (models.Event, error) {
	next := models.EventStatus(status)
	if !next.Valid() {
		return models.Event{}, ErrInvalidEventStatus
	}
	updated, err := s.events.Modify(ctx, id, func(evt *models.Event) error {
		evt.Status = next
		now := s.now()
		evt.UpdatedAt = &now
		return nil
	})
	if err != nil {
		return models.Event{}, notFoundOr(err, ErrEventNotFound, "update event status")
	}
	return updated, nil
}

func (s *eventService) UpcomingEvents(ctx context.Context) ([]models.Event, error) {
	return s.filter(ctx, func(evt models.Event) bool { return evt.Date.After(s.now()) })
}

func (s *eventService) EventsByCategory(ctx context.Context, category string) ([]models.Event, error) {
	return s.filter(ctx, func(evt models.Event) bool { return strings.EqualFold(evt.Category, category) })
}

func (s *eventService) filter(ctx context.Context, keep func(models.Event) bool) ([]models.Event, error) {
	list, err := s.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.Event{}
	for _, evt := range list {
		if keep(evt) {
			out = append(out, evt)
		}
	}
	return out, nil
}
