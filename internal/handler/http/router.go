package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/wfhtracker/wfh-backend-go/internal/handler/http/middleware"
	"github.com/wfhtracker/wfh-backend-go/internal/pkg/jwt"
)

func NewRouter(
	frontendURL string,
	jwtService jwt.Service,
	authHandler AuthHandler,
	staffHandler StaffHandler,
	reasonHandler ReasonHandler,
	entryHandler EntryHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "wfh-tracker"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

	r.Route("/api", func(r chi.Router) {
		// Verifier only parses a token when one is present; reads stay open
		// and the entry service reads claims opportunistically.
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))

		r.Post("/auth/login", authHandler.Login)

		r.Route("/staff", func(r chi.Router) {
			r.Get("/", staffHandler.List)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Post("/", staffHandler.Create)
				r.Put("/{id}", staffHandler.Update)
				r.Delete("/{id}", staffHandler.Delete)
			})
		})

		r.Route("/reasons", func(r chi.Router) {
			r.Get("/", reasonHandler.List)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Post("/", reasonHandler.Create)
				r.Put("/{id}", reasonHandler.Update)
				r.Delete("/{id}", reasonHandler.Delete)
			})
		})

		r.Route("/entries", func(r chi.Router) {
			r.Get("/", entryHandler.List)
			r.Post("/", entryHandler.Create)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Put("/{id}", entryHandler.Update)
				r.Delete("/{id}", entryHandler.Delete)
			})
		})

		r.Get("/reports/analytics", reportHandler.Analytics)
	})

	return r
}
