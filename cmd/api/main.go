package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/bodhi-go/internal/api/handlers"
	"github.com/linskybing/bodhi-go/internal/api/middleware"
	"github.com/linskybing/bodhi-go/internal/api/routes"
	"github.com/linskybing/bodhi-go/internal/application"
	"github.com/linskybing/bodhi-go/internal/application/lifecycle"
	"github.com/linskybing/bodhi-go/internal/buildsys"
	"github.com/linskybing/bodhi-go/internal/config"
	"github.com/linskybing/bodhi-go/internal/config/db"
	"github.com/linskybing/bodhi-go/internal/notify"
	"github.com/linskybing/bodhi-go/internal/repository"
	"github.com/redis/go-redis/v9"
)

func newBuildSystem() buildsys.Client {
	if config.BuildSystem != "koji" {
		log.Println("Using the in-memory development build system")
		return buildsys.NewDev()
	}
	client, err := buildsys.NewKoji(config.KojiURL, config.KojiCertFile, config.KojiKeyFile)
	if err != nil {
		log.Fatalf("Failed to create koji client: %v", err)
	}
	return client
}

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	policy, err := config.LoadPolicy()
	if err != nil {
		log.Fatalf("Failed to load policy: %v", err)
	}

	// Initialize database connection and migrate schemas
	db.Init()
	repos := repository.NewRepositories(db.DB)

	hub := notify.NewHub()
	publishers := notify.Fanout{hub}
	var eventLog handlers.EventLog
	if config.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Printf("Warning: redis unavailable, events are not persisted: %v", err)
		} else {
			stream := notify.NewRedis(rdb, config.EventStreamKey)
			publishers = append(publishers, stream)
			eventLog = stream
		}
	}

	machine := lifecycle.NewMachine(policy, newBuildSystem(), nil, publishers)
	services := application.New(repos, machine, publishers)
	h := handlers.New(services, hub, eventLog)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(config.CORSOrigins))
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, h, middleware.NewAuth(policy))

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
