package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/rivera-lanasm/cactoide-rivlanm/internal/calendar"
	"github.com/rivera-lanasm/cactoide-rivlanm/internal/domain"
	"github.com/rivera-lanasm/cactoide-rivlanm/internal/handler/dto"
	"github.com/rivera-lanasm/cactoide-rivlanm/internal/health"
	"github.com/rivera-lanasm/cactoide-rivlanm/internal/middleware"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	Discover(ctx context.Context) ([]*domain.Event, error)
	ListByOwner(ctx context.Context, userID string) ([]*domain.Event, error)
	Update(ctx context.Context, id, userID string, input domain.UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, id, userID string) error
}

type RsvpSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) ([]domain.Rsvp, error)
	Withdraw(ctx context.Context, id string) error
}

type Prober interface {
	Live(ctx context.Context) health.Result
}

type Handler struct {
	eventService EventSvc
	rsvpService  RsvpSvc
	prober       Prober
	baseURL      string
}

func NewHandler(eventService EventSvc, rsvpService RsvpSvc, prober Prober, baseURL string) *Handler {
	return &Handler{
		eventService: eventService,
		rsvpService:  rsvpService,
		prober:       prober,
		baseURL:      baseURL,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateEventInput{
		Name:          req.Name,
		Date:          req.Date,
		Time:          req.Time,
		Location:      req.Location,
		Type:          domain.EventType(req.Type),
		AttendeeLimit: req.AttendeeLimit,
		Visibility:    domain.Visibility(req.Visibility),
		UserID:        middleware.Identity(c),
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) DiscoverEvents(c *ginext.Context) {
	events, err := h.eventService.Discover(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) MyEvents(c *ginext.Context) {
	events, err := h.eventService.ListByOwner(c.Request.Context(), middleware.Identity(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id := c.Param("id")

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateEventInput{
		Name:          req.Name,
		Date:          req.Date,
		Time:          req.Time,
		Location:      req.Location,
		Type:          domain.EventType(req.Type),
		AttendeeLimit: req.AttendeeLimit,
		Visibility:    domain.Visibility(req.Visibility),
	}

	event, err := h.eventService.Update(c.Request.Context(), id, middleware.Identity(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id := c.Param("id")

	if err := h.eventService.Delete(c.Request.Context(), id, middleware.Identity(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) CalendarLinks(c *ginext.Context) {
	id := c.Param("id")

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	google, err := calendar.GoogleURL(event, h.baseURL)
	if err != nil {
		h.handleError(c, err)
		return
	}
	outlook, err := calendar.OutlookURL(event, h.baseURL)
	if err != nil {
		h.handleError(c, err)
		return
	}
	ical, err := calendar.ICal(event, h.baseURL)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CalendarLinksResponse{
		Google:  google,
		Outlook: outlook,
		ICal:    ical,
	})
}

// RSVPs

func (h *Handler) Register(c *ginext.Context) {
	eventID := c.Param("id")

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	accepted, err := h.rsvpService.Register(c.Request.Context(), domain.RegisterInput{
		EventID: eventID,
		Name:    req.Name,
		Guests:  req.Guests,
		UserID:  middleware.Identity(c),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.RegisterResponse{Accepted: make([]dto.RsvpResponse, 0, len(accepted))}
	for i := range accepted {
		resp.Accepted = append(resp.Accepted, dto.ToRsvpResponse(&accepted[i]))
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) Withdraw(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid rsvp id"})
		return
	}

	if err := h.rsvpService.Withdraw(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "withdrawn"})
}

// Health

// Healthz is the non-fatal liveness probe: a failing store yields a
// degraded 503, never a process exit.
func (h *Handler) Healthz(c *ginext.Context) {
	c.Header("Cache-Control", "no-store")

	res := h.prober.Live(c.Request.Context())
	if !res.Success {
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			OK:       false,
			Attempts: res.Attempts,
			Error:    res.Err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{OK: true, Attempts: res.Attempts})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var capErr *domain.CapacityError

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrRsvpNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.As(err, &capErr):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:          capErr.Error(),
			RemainingSpots: &capErr.Remaining,
		})

	case errors.Is(err, domain.ErrDuplicateName):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
