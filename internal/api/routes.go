package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Handlers bundles the services the HTTP layer dispatches to.
type Handlers struct {
	profiles      ProfileService
	conversations ConversationService
}

// NewHandlers creates the handler set.
func NewHandlers(profiles ProfileService, conversations ConversationService) *Handlers {
	return &Handlers{profiles: profiles, conversations: conversations}
}

// SetupRoutes configures all API routes.
func SetupRoutes(h *Handlers, health *HealthChecker, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check (no auth required)
	r.Get("/health", health.HandleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/numerology", func(r chi.Router) {
			r.Post("/profile", h.HandleCreateProfile)
			r.Get("/profile/{userID}", h.HandleGetProfile)
			r.Get("/reading", h.HandleReading)
		})

		r.Route("/conversations", func(r chi.Router) {
			r.Post("/", h.HandleCreateConversation)
			r.Get("/", h.HandleListConversations)
			r.Get("/user/recent", h.HandleRecentConversation)
			r.Get("/{conversationID}", h.HandleGetConversation)
		})
	})

	return r
}
