package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"newshub/database"
	"newshub/internal/config"
	"newshub/internal/httpapi/handler"
	"newshub/internal/httpapi/middleware"
	"newshub/internal/httpapi/repository"
	"newshub/internal/httpapi/service"
)

func main() {
	// 1. Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	// 2. Connect to the database
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	// 3. Wire repositories, services, handlers
	topicRepo := repository.NewTopicRepository(db)
	userRepo := repository.NewUserRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	topicHandler := handler.NewTopicHandler(service.NewTopicService(topicRepo))
	userHandler := handler.NewUserHandler(service.NewUserService(userRepo))
	articleHandler := handler.NewArticleHandler(service.NewArticleService(articleRepo, topicRepo))
	commentHandler := handler.NewCommentHandler(service.NewCommentService(commentRepo, articleRepo, userRepo))

	// 4. Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"msg": "Welcome to the API! Visit /api for documentation",
		})
	})

	api := r.Group("/api")
	api.GET("", endpointsIndex)

	topicHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)
	articleHandler.RegisterRoutes(api)
	commentHandler.RegisterRoutes(api)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("Server running", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelDebug
	switch cfg.LogLevel {
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// endpointsIndex documents the API surface
// GET /api
func endpointsIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"endpoints": gin.H{
			"GET /api":                                "this documentation",
			"GET /api/topics":                         "list all topics",
			"GET /api/users":                          "list all users",
			"GET /api/articles":                       "list articles; queries: sort_by, order, topic",
			"GET /api/articles/:article_id":           "a single article with its body and comment count",
			"PATCH /api/articles/:article_id":         "adjust an article's votes by { inc_votes }",
			"GET /api/articles/:article_id/comments":  "list an article's comments, newest first",
			"POST /api/articles/:article_id/comments": "post a comment as { username, body }",
			"DELETE /api/comments/:comment_id":        "delete a comment",
		},
	})
}
