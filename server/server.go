// Package server contains the HTTP handlers for the Found It! API.
package server

import (
	"context"
	"strconv"
	"strings"
	"time"

	"foundit/cache"
	"foundit/config"
	"foundit/database"
	"foundit/middleware"
	"foundit/models"
	"foundit/repository"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config        *config.Config
	db            *gorm.DB
	redis         *redis.Client
	userRepo      repository.UserRepository
	organizerRepo repository.OrganizerRepository
	categoryRepo  repository.CategoryRepository
	itemRepo      repository.ItemRepository
}

// NewServer connects the configured postgres and redis and wires a server.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDB(cfg, db, cache.GetClient()), nil
}

// NewServerWithDB wires a server against an existing database handle.
// Tests use it with an in-memory store and no redis.
func NewServerWithDB(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	return &Server{
		config:        cfg,
		db:            db,
		redis:         redisClient,
		userRepo:      repository.NewUserRepository(db),
		organizerRepo: repository.NewOrganizerRepository(db),
		categoryRepo:  repository.NewCategoryRepository(db),
		itemRepo:      repository.NewItemRepository(db),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Request ID for tracing
	app.Use(requestid.New())

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware
	app.Use(middleware.StructuredLogger())

	// Prometheus metrics
	prometheus := fiberprometheus.New("foundit")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health check
	app.Get("/health", s.HealthCheck)

	// Auth routes
	app.Post("/register", s.Register)
	app.Post("/login", s.Login)
	app.Post("/api-token-auth", s.ObtainAuthToken)

	// Every entity route expects a bearer token
	protected := app.Group("", s.AuthRequired())

	items := protected.Group("/items")
	items.Get("/", s.ListItems)
	// Specific /mine route before generic /:id route
	items.Get("/mine", s.ListMyItems)
	items.Post("/", s.CreateItem)
	items.Get("/:id", s.GetItem)
	items.Put("/:id", s.UpdateItem)
	items.Delete("/:id", s.DeleteItem)

	categories := protected.Group("/categories")
	categories.Get("/", s.ListCategories)
	categories.Post("/", s.CreateCategory)
	categories.Get("/:id", s.GetCategory)
	categories.Put("/:id", s.UpdateCategory)
	categories.Delete("/:id", s.DeleteCategory)

	organizers := protected.Group("/organizers")
	organizers.Get("/", s.ListOrganizers)
	organizers.Get("/:id", s.GetOrganizer)
	organizers.Put("/:id", s.DeactivateOrganizer)

	users := protected.Group("/users")
	users.Get("/", s.ListUsers)
	users.Get("/:id", s.GetUser)
	users.Put("/:id", s.UpdateUser)
	users.Delete("/:id", s.DeleteUser)
}

// HealthCheck handles health check requests
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "Found It!",
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// AuthRequired returns the authentication middleware. It resolves the
// bearer token to the principal's user ID and stores it in the context.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(s.config.JWTSecret), nil
		})

		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token claims"))
		}

		if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != "foundit-api" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token issuer"))
		}
		if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != "foundit-client" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token audience"))
		}

		sub, ok := claims["sub"].(string)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid subject claim"))
		}

		userID, err := strconv.ParseUint(sub, 10, 32)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid user ID in token"))
		}

		c.Locals("userID", uint(userID))

		return c.Next()
	}
}

// principalOrganizer resolves the authenticated user to its organizer row.
func (s *Server) principalOrganizer(c *fiber.Ctx) (*models.Organizer, error) {
	userID := c.Locals("userID").(uint)
	return s.organizerRepo.GetByUserID(c.Context(), userID)
}

// Shutdown releases the server's database and redis connections.
func (s *Server) Shutdown() error {
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			return cerr
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			return rerr
		}
	}

	return nil
}
