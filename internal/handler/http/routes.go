package http

import (
	"net/http"

	"github.com/chatnest/api/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.corsAllowedOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.health)
		r.Post("/api/v1/users/signup", h.signup)
		r.Post("/api/v1/users/login", h.login)
	})

	// routes behind session-token authentication
	router.Group(func(r chi.Router) {
		r.Use(h.protect)

		r.Get("/api/v1/users/me", h.me)
		r.With(h.restrictTo(models.RoleAdmin)).Get("/api/v1/users", h.listUsers)

		r.Post("/api/v1/notifications", h.createNotification)
		r.Get("/api/v1/notifications", h.listNotifications)

		r.Post("/api/v1/conversations", h.createConversation)
		r.Get("/api/v1/conversations", h.listConversations)

		r.Post("/api/v1/chat/{conversationID}", h.postMessage)
		r.Get("/api/v1/chat/{conversationID}", h.listMessages)
	})

	return router
}
