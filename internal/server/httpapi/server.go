// Package httpapi exposes the authentication flow over HTTP. It owns the gin
// router, the three auth endpoints, the route-protection middleware and the
// mapping from service errors to HTTP responses.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/acquisitions/internal/logging"
	"github.com/dmitrijs2005/acquisitions/internal/server/auth"
	"github.com/dmitrijs2005/acquisitions/internal/server/config"
	"github.com/dmitrijs2005/acquisitions/internal/server/models"
)

// UserService is the slice of the auth service the handlers need.
type UserService interface {
	Register(ctx context.Context, name, email, password, role string) (*models.PublicUser, error)
	Authenticate(ctx context.Context, email, password string) (*models.PublicUser, error)
}

type HTTPServer struct {
	address   string
	logger    logging.Logger
	users     UserService
	issuer    *auth.TokenIssuer
	cookie    *auth.SessionCookie
	engine    *gin.Engine
	startedAt time.Time
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, us UserService) *HTTPServer {
	gin.SetMode(cfg.GinMode)

	issuer := auth.NewTokenIssuer([]byte(cfg.SecretKey), cfg.TokenValidityDuration)

	s := &HTTPServer{
		address:   cfg.EndpointAddrHTTP,
		logger:    l.With("module", "http_server"),
		users:     us,
		issuer:    issuer,
		cookie:    auth.NewSessionCookie(issuer.ValiditySeconds(), cfg.GinMode == gin.ReleaseMode),
		startedAt: time.Now(),
	}
	s.engine = s.buildEngine(cfg)
	return s
}

func (s *HTTPServer) buildEngine(cfg *config.Config) *gin.Engine {
	engine := gin.New()
	engine.Use(s.requestLogger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.CORSAllowedOrigins, ",")
	corsConfig.AllowCredentials = true
	engine.Use(cors.New(corsConfig))

	engine.GET("/health", s.handleHealth)

	api := engine.Group("/api")
	{
		api.GET("", s.handleBanner)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/sign-up", s.handleSignUp)
			authRoutes.POST("/sign-in", s.handleSignIn)
			authRoutes.POST("/sign-out", s.handleSignOut)
			authRoutes.GET("/me", s.RequireAuth(), s.handleMe)
		}
	}

	return engine
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.engine,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
