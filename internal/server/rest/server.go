// Package rest exposes the HTTP API: routing, authentication middleware,
// and handlers translating requests into service calls.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/noteshare/internal/logging"
	"github.com/dmitrijs2005/noteshare/internal/server/config"
	"github.com/dmitrijs2005/noteshare/internal/server/models"
	"github.com/dmitrijs2005/noteshare/web"
)

// userService is the account surface the handlers need.
type userService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, id int64, update *models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// noteService is the note surface the handlers need.
type noteService interface {
	Create(ctx context.Context, ownerID int64, note *models.NoteCreate) (*models.Note, error)
	Get(ctx context.Context, id int64, viewerID *int64) (*models.Note, error)
	ListMine(ctx context.Context, ownerID int64) ([]*models.Note, int64, error)
	ListPublic(ctx context.Context) ([]*models.Note, error)
	Search(ctx context.Context, term string, viewerID *int64) ([]*models.Note, error)
	Update(ctx context.Context, id, ownerID int64, update *models.NoteUpdate) (*models.Note, error)
	Delete(ctx context.Context, id, ownerID int64) (bool, error)
}

type Server struct {
	address     string
	users       userService
	notes       noteService
	logger      logging.Logger
	jwtSecret   []byte
	development bool
	startedAt   time.Time
	router      *gin.Engine
}

func NewServer(cfg *config.Config, l logging.Logger, us userService, ns noteService) (*Server, error) {
	s := &Server{
		address:     cfg.EndpointAddr,
		users:       us,
		notes:       ns,
		logger:      l.With("module", "rest_server"),
		jwtSecret:   []byte(cfg.SecretKey),
		development: cfg.IsDevelopment(),
		startedAt:   time.Now(),
	}

	if !s.development {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestLogger())
	router.Use(cors.New(corsConfig(cfg)))

	s.registerRoutes(router)
	s.router = router

	return s, nil
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "PUT", "DELETE"}
	c.AllowHeaders = []string{"Authorization", "Content-Type"}
	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return c
}

func (s *Server) registerRoutes(router *gin.Engine) {

	router.GET("/", s.indexPage)
	router.GET("/health", s.health)
	router.GET("/api", s.apiInfo)

	users := router.Group("/users")
	{
		users.POST("/register", s.registerUser)
		users.POST("/login", s.loginUser)
		users.GET("", s.listUsers)
		users.GET("/:id", s.getUser)
		users.PUT("/:id", s.updateUser)
		users.DELETE("/:id", s.deleteUser)
	}

	notes := router.Group("/notes")
	{
		notes.GET("/public", s.publicNotes)

		authed := notes.Group("")
		authed.Use(s.authRequired())
		{
			authed.POST("", s.createNote)
			authed.GET("/my", s.myNotes)
			authed.GET("/search/:query", s.searchNotes)
			authed.GET("/:id", s.getNote)
			authed.PUT("/:id", s.updateNote)
			authed.DELETE("/:id", s.deleteNote)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		errorJSON(c, http.StatusNotFound, "Not Found",
			"Route "+c.Request.URL.Path+" not found")
	})
}

func (s *Server) indexPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(s.startedAt).Seconds(),
	})
}

func (s *Server) apiInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Notes API is running!",
		"version": "1.0.0",
	})
}

// Run serves HTTP until ctx is cancelled, then shuts the listener down and
// stops accepting new requests.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.router,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
