package routes

import (
	"net/http"

	"github.com/ajaniguide/ajani/backend/internal/api/handlers"
	"github.com/ajaniguide/ajani/backend/internal/api/middleware"
	"github.com/ajaniguide/ajani/backend/internal/infrastructure/observability"
)

// Router wires handlers to routes and stacks the middleware.
type Router struct {
	mux *http.ServeMux

	chatHandler    *handlers.ChatHandler
	listingHandler *handlers.ListingHandler
	leadHandler    *handlers.LeadHandler

	metrics *observability.Metrics
}

// NewRouter creates a new router.
func NewRouter(
	chatHandler *handlers.ChatHandler,
	listingHandler *handlers.ListingHandler,
	leadHandler *handlers.LeadHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:            http.NewServeMux(),
		chatHandler:    chatHandler,
		listingHandler: listingHandler,
		leadHandler:    leadHandler,
		metrics:        metrics,
	}
}

// SetupRoutes configures all application routes.
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Chat endpoints
	r.mux.HandleFunc("POST /api/chat/messages", r.chatHandler.PostMessage)

	// Directory endpoints
	r.mux.HandleFunc("GET /api/listings", r.listingHandler.ListListings)
	r.mux.HandleFunc("GET /api/listings/suggest", r.listingHandler.SuggestListings)
	r.mux.HandleFunc("GET /api/listings/{id}", r.listingHandler.GetListing)
	r.mux.HandleFunc("GET /api/categories", r.listingHandler.ListCategories)

	// Lead endpoints
	r.mux.HandleFunc("POST /api/leads", r.leadHandler.SubmitLead)
	r.mux.HandleFunc("GET /api/admin/leads", r.leadHandler.ListLeads)

	// Middleware applies in reverse order (last wraps first).
	var handler http.Handler = r.mux
	handler = middleware.Logging(handler)
	if r.metrics != nil {
		handler = middleware.Observability(r.metrics)(handler)
	}
	handler = middleware.CORS(handler)

	return handler
}
