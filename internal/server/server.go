package server

import (
	"net/http"

	logger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"prepsquad/internal/config"
	"prepsquad/internal/handlers"
	"prepsquad/internal/handlers/auth"
	"prepsquad/internal/handlers/group"
	"prepsquad/internal/handlers/user"
	"prepsquad/internal/middleware"
	"prepsquad/internal/store"
)

type Server struct {
	Addr          string
	Users         *store.UserStore
	Groups        *store.GroupStore
	Tokens        *store.RefreshTokenStore
	JWTSecret     string
	JWTTTLHrs     int
	RefreshTTLHrs int
	Log           *logrus.Logger
}

func NewServer(addr string, cfg *config.Config, log *logrus.Logger) *Server {
	return &Server{
		Addr:          addr,
		Users:         store.NewUserStore(),
		Groups:        store.NewGroupStore(),
		Tokens:        store.NewRefreshTokenStore(),
		JWTSecret:     cfg.JWTSecret,
		JWTTTLHrs:     cfg.JWTTTLHrs,
		RefreshTTLHrs: cfg.RefreshTTLHrs,
		Log:           log,
	}
}

func HandlerFunc(h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r)
	}
}

// Router builds the full route tree. Kept separate from Run so tests can
// drive it through httptest.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	// middlewares
	r.Use(logger.Logger("router", s.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.HealthCheck)

		// auth routes (public, except /me)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", HandlerFunc(&auth.RegisterHandler{
				Users:         s.Users,
				Tokens:        s.Tokens,
				JWTSecret:     s.JWTSecret,
				JWTTTLHrs:     s.JWTTTLHrs,
				RefreshTTLHrs: s.RefreshTTLHrs,
			}))
			r.Post("/login", HandlerFunc(&auth.LoginHandler{
				Users:         s.Users,
				Tokens:        s.Tokens,
				JWTSecret:     s.JWTSecret,
				JWTTTLHrs:     s.JWTTTLHrs,
				RefreshTTLHrs: s.RefreshTTLHrs,
			}))
			r.Post("/refresh", HandlerFunc(&auth.RefreshHandler{
				Tokens:        s.Tokens,
				JWTSecret:     s.JWTSecret,
				JWTTTLHrs:     s.JWTTTLHrs,
				RefreshTTLHrs: s.RefreshTTLHrs,
			}))
			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthJWT(s.JWTSecret))
				r.Get("/me", HandlerFunc(&user.MeHandler{Users: s.Users}))
			})
		})

		r.Route("/groups", func(r chi.Router) {
			r.Use(middleware.AuthJWT(s.JWTSecret))
			r.Post("/", HandlerFunc(&group.CreateGroupHandler{Groups: s.Groups}))
			r.Get("/", HandlerFunc(&group.ListGroupsHandler{Groups: s.Groups}))
			r.Post("/{id}/join", HandlerFunc(&group.JoinGroupHandler{Groups: s.Groups}))
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.AuthJWT(s.JWTSecret))
			r.Get("/{id}/profile", HandlerFunc(&user.GetProfileHandler{Users: s.Users}))
			r.Put("/profile", HandlerFunc(&user.UpdateProfileHandler{Users: s.Users}))
		})
	})

	return r
}

func (s *Server) Run() error {
	s.Log.Infof("server running on %s", s.Addr)
	return http.ListenAndServe(s.Addr, s.Router())
}
