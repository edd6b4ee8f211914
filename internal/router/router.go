package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	DiscoverEvents(c *ginext.Context)
	MyEvents(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	CalendarLinks(c *ginext.Context)
	Register(c *ginext.Context)
	Withdraw(c *ginext.Context)
	Healthz(c *ginext.Context)
}

// Options carries the route-scoped middleware; nil entries are
// skipped (the cache pair is nil when redis is not configured).
type Options struct {
	Cache      ginext.HandlerFunc
	Invalidate ginext.HandlerFunc
	RateLimit  ginext.HandlerFunc
}

func InitRouter(mode string, h Handler, opts Options, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.GET("/events", chain(opts.Cache, h.DiscoverEvents)...)
		api.POST("/events", chain(opts.Invalidate, h.CreateEvent)...)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", chain(opts.Invalidate, h.UpdateEvent)...)
		api.DELETE("/events/:id", chain(opts.Invalidate, h.DeleteEvent)...)
		api.GET("/events/:id/calendar", h.CalendarLinks)
		api.GET("/my/events", h.MyEvents)

		// RSVPs
		api.POST("/events/:id/rsvps", chain(opts.RateLimit, h.Register)...)
		api.DELETE("/rsvps/:id", chain(opts.RateLimit, h.Withdraw)...)
	}

	router.GET("/healthz", h.Healthz)
	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}

func chain(mw ginext.HandlerFunc, h ginext.HandlerFunc) []ginext.HandlerFunc {
	if mw == nil {
		return []ginext.HandlerFunc{h}
	}
	return []ginext.HandlerFunc{mw, h}
}
