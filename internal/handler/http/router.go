package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/segus-engineering/ops-backend-go/internal/handler/http/middleware"
	"github.com/segus-engineering/ops-backend-go/internal/pkg/jwt"
)

func NewRouter(
	logger *slog.Logger,
	jwtService jwt.Service,
	sessionHandler WorkSessionHandler,
	gamificationHandler GamificationHandler,
	employeeHandler EmployeeHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// SSE stream authenticates with its own short-lived token
		r.Get("/notifications/stream", notificationHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/work-sessions", func(r chi.Router) {
				r.Post("/start", sessionHandler.Start)
				r.Post("/{id}/pause", sessionHandler.Pause)
				r.Post("/{id}/resume", sessionHandler.Resume)
				r.Post("/{id}/end", sessionHandler.End)
				r.Get("/my", sessionHandler.GetMySessions)
				r.Get("/{id}", sessionHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", sessionHandler.List)
				})
			})

			r.Route("/gamification", func(r chi.Router) {
				r.Get("/objectives/my", gamificationHandler.GetMyObjectives)
				r.Get("/months/my", gamificationHandler.GetMyMonthly)
				r.Get("/stats/my", gamificationHandler.GetMyStats)
				r.Get("/leaderboard", gamificationHandler.Leaderboard)
				r.Get("/badges", gamificationHandler.ListBadges)
				r.Get("/badges/my", gamificationHandler.GetMyBadges)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/objectives", gamificationHandler.SetObjective)
					r.Post("/daily-outcomes", gamificationHandler.RecordDailyOutcome)
					r.Post("/months/recompute", gamificationHandler.RecomputeMonth)
					r.Post("/stats/{employeeID}/recompute", gamificationHandler.RecomputeStats)
					r.Post("/badges", gamificationHandler.CreateBadge)
					r.Put("/badges/{id}", gamificationHandler.UpdateBadge)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", employeeHandler.Me)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", employeeHandler.List)
					r.Get("/{id}", employeeHandler.Get)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Get("/unread-count", notificationHandler.UnreadCount)
				r.Post("/mark-read", notificationHandler.MarkAsRead)
				r.Post("/mark-all-read", notificationHandler.MarkAllAsRead)
				r.Delete("/{id}", notificationHandler.Delete)
				r.Get("/sse-token", notificationHandler.GetSSEToken)
			})
		})
	})

	return r
}
