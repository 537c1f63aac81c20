package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/linskybing/bodhi-go/internal/application"
	"github.com/linskybing/bodhi-go/internal/application/lifecycle"
	"github.com/linskybing/bodhi-go/internal/application/scheduler"
	"github.com/linskybing/bodhi-go/internal/buildsys"
	"github.com/linskybing/bodhi-go/internal/config"
	"github.com/linskybing/bodhi-go/internal/config/db"
	"github.com/linskybing/bodhi-go/internal/notify"
	"github.com/linskybing/bodhi-go/internal/repository"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	policy, err := config.LoadPolicy()
	if err != nil {
		log.Fatalf("Failed to load policy: %v", err)
	}

	// Initialize database connection
	db.Init()
	repos := repository.NewRepositories(db.DB)

	var pub notify.Publisher = notify.Discard{}
	if config.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
		})
		pub = notify.NewRedis(rdb, config.EventStreamKey)
	}

	var client buildsys.Client = buildsys.NewDev()
	if config.BuildSystem == "koji" {
		koji, err := buildsys.NewKoji(config.KojiURL, config.KojiCertFile, config.KojiKeyFile)
		if err != nil {
			log.Fatalf("Failed to create koji client: %v", err)
		}
		client = koji
	}

	machine := lifecycle.NewMachine(policy, client, nil, pub)
	services := application.New(repos, machine, pub)

	sched := scheduler.NewScheduler(
		scheduler.Task{Name: "approve_testing", Interval: config.SchedulerInterval, Run: services.Update.ApproveTestingUpdates},
		scheduler.Task{Name: "expire_overrides", Interval: config.SchedulerInterval, Run: services.Override.ExpireDue},
		scheduler.Task{Name: "dequeue_batched", Interval: 24 * time.Hour, Run: services.Update.DequeueBatchedUpdates},
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
		<-sigChan
		log.Println("Shutdown signal")
		cancel()
	}()

	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Scheduler error: %v", err)
	}
}
