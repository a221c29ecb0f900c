package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/emscore/ems-backend-go/internal/config"
	"github.com/emscore/ems-backend-go/internal/domain/auth"
	"github.com/emscore/ems-backend-go/internal/handler/http/middleware"
	"github.com/emscore/ems-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	dashboardHandler DashboardHandler,
	uploadHandler UploadHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ems-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
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

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	// Uploaded documents are served straight off disk.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/forgot-password", authHandler.ForgotPassword)
			r.Post("/reset-password", authHandler.ResetPassword)

			r.Route("/register", func(r chi.Router) {
				r.Post("/employee", authHandler.RegisterEmployee)
				r.Post("/centre", authHandler.RegisterCentre)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/employee", authHandler.LoginEmployee)
				r.Post("/centre", authHandler.LoginCentre)
				r.Post("/admin", authHandler.LoginAdmin)
			})

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService))
				r.Post("/logout", authHandler.Logout)
				r.Post("/change-password", authHandler.ChangePassword)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/validate", attendanceHandler.Validate)
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/", attendanceHandler.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Put("/{id}/status", attendanceHandler.UpdateStatus)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)
				r.Get("/by-employee-id/{employeeId}", employeeHandler.GetByEmployeeID)
				r.Get("/by-employee-id/{employeeId}/onboarding-status", employeeHandler.OnboardingStatus)
				r.Post("/", employeeHandler.Create)
				r.Put("/{id}", employeeHandler.Update)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Put("/{id}/approval", employeeHandler.Approve)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/uploads", func(r chi.Router) {
				r.Post("/faces", uploadHandler.UploadReferencePhoto)
				r.Delete("/faces", uploadHandler.DeleteReferencePhoto)
				r.Post("/documents", uploadHandler.UploadDocument)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Apply)
				r.Get("/", leaveHandler.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Put("/{id}/decision", leaveHandler.Decide)
				})
			})

			r.Get("/centres", authHandler.ListCentres)

			r.Post("/messages/manager", leaveHandler.MessageManager)

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/employee/{employeeId}", dashboardHandler.Employee)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(auth.RoleAdmin, auth.RoleSuperAdmin, auth.RoleCentre))
					r.Get("/admin", dashboardHandler.Admin)
				})
			})
		})
	})

	return r
}
