package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/cuidaemprego/ponto-backend-go/internal/handler/http/middleware"
	"github.com/cuidaemprego/ponto-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         *AuthHandler
	Employee     *EmployeeHandler
	Vacation     *VacationHandler
	Leave        *LeaveHandler
	Overtime     *OvertimeHandler
	TimeEntry    *TimeEntryHandler
	Review       *ReviewHandler
	Notification *NotificationHandler
}

func NewRouter(jwtService jwt.Service, logger *slog.Logger, frontendURL string, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employee", func(r chi.Router) {
				r.Get("/me", h.Employee.Me)

				r.Route("/punches", func(r chi.Router) {
					r.Post("/", h.TimeEntry.Punch)
					r.Get("/", h.TimeEntry.MyEntries)
				})

				r.Route("/vacations", func(r chi.Router) {
					r.Post("/", h.Vacation.Request)
					r.Get("/", h.Vacation.MyVacations)
					r.Post("/{id}/cancel", h.Vacation.Cancel)
				})

				r.Route("/leaves", func(r chi.Router) {
					r.Post("/", h.Leave.Request)
					r.Get("/", h.Leave.MyLeaves)
					r.Post("/{id}/cancel", h.Leave.Cancel)
				})

				r.Route("/overtimes", func(r chi.Router) {
					r.Post("/", h.Overtime.Register)
					r.Get("/", h.Overtime.MyOvertimes)
				})

				r.Route("/requests", func(r chi.Router) {
					r.Post("/", h.Review.Create)
					r.Get("/", h.Review.MyRequests)
					r.Post("/{id}/cancel", h.Review.Cancel)
				})

				r.Route("/notifications", func(r chi.Router) {
					r.Get("/", h.Notification.MyNotifications)
					r.Post("/read-all", h.Notification.MarkAllRead)
					r.Post("/{id}/read", h.Notification.MarkRead)
				})
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", h.Employee.List)
					r.Post("/", h.Employee.Create)
					r.Get("/{id}", h.Employee.Get)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
					r.Post("/{id}/hour-bank", h.Employee.AdjustHourBank)
					r.Get("/{id}/vacations", h.Vacation.ListByEmployee)
					r.Get("/{id}/leaves", h.Leave.ListByEmployee)
					r.Get("/{id}/overtimes", h.Overtime.ListByEmployee)
					r.Get("/{id}/punches", h.TimeEntry.ListByEmployee)
				})

				r.Route("/vacations", func(r chi.Router) {
					r.Get("/pending", h.Vacation.ListPending)
					r.Get("/{id}", h.Vacation.Get)
					r.Post("/{id}/approve", h.Vacation.Approve)
					r.Post("/{id}/reject", h.Vacation.Reject)
					r.Post("/{id}/complete", h.Vacation.Complete)
				})

				r.Route("/leaves", func(r chi.Router) {
					r.Get("/pending", h.Leave.ListPending)
					r.Get("/{id}", h.Leave.Get)
					r.Post("/{id}/approve", h.Leave.Approve)
					r.Post("/{id}/reject", h.Leave.Reject)
				})

				r.Route("/overtimes", func(r chi.Router) {
					r.Get("/pending", h.Overtime.ListPending)
					r.Get("/{id}", h.Overtime.Get)
					r.Post("/{id}/approve", h.Overtime.Approve)
					r.Post("/{id}/reject", h.Overtime.Reject)
					r.Post("/{id}/pay", h.Overtime.MarkPaid)
					r.Post("/{id}/compensate", h.Overtime.MarkCompensated)
				})

				r.Route("/punches", func(r chi.Router) {
					r.Get("/unvalidated", h.TimeEntry.ListUnvalidated)
					r.Post("/{id}/validate", h.TimeEntry.Validate)
					r.Delete("/{id}", h.TimeEntry.Delete)
				})

				r.Route("/requests", func(r chi.Router) {
					r.Get("/open", h.Review.ListOpen)
					r.Get("/{id}", h.Review.Get)
					r.Post("/{id}/start", h.Review.StartReview)
					r.Post("/{id}/respond", h.Review.Respond)
				})

				r.Get("/notifications", h.Notification.ListAdmin)
			})
		})
	})

	return r
}
