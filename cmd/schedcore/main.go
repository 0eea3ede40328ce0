package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	reminderh "github.com/mkovridov/schedcore/internal/api/handlers/reminder"
	subscriptionh "github.com/mkovridov/schedcore/internal/api/handlers/subscription"
	"github.com/mkovridov/schedcore/internal/api/handlers/websub"
	"github.com/mkovridov/schedcore/internal/api/router"
	"github.com/mkovridov/schedcore/internal/api/server"
	"github.com/mkovridov/schedcore/internal/config"
	"github.com/mkovridov/schedcore/internal/deferred"
	"github.com/mkovridov/schedcore/internal/events"
	"github.com/mkovridov/schedcore/internal/hub"
	deliveryh "github.com/mkovridov/schedcore/internal/rabbitmq/handlers/delivery"
	"github.com/mkovridov/schedcore/internal/rabbitmq/queue"
	"github.com/mkovridov/schedcore/internal/reconcile"
	leaserepo "github.com/mkovridov/schedcore/internal/repository/lease"
	reminderrepo "github.com/mkovridov/schedcore/internal/repository/reminder"
	leasesvc "github.com/mkovridov/schedcore/internal/service/lease"
	remindersvc "github.com/mkovridov/schedcore/internal/service/reminder"
	"github.com/mkovridov/schedcore/internal/timer"
	"github.com/mkovridov/schedcore/internal/worker"
	"github.com/mkovridov/schedcore/pkg/discord"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewDeliveryQueue(ch)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create delivery queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	remRepo := reminderrepo.NewRepository(db)
	lsRepo := leaserepo.NewRepository(db)

	hubClient := hub.NewClient(hub.Config{
		URL:           cfg.Hub.URL,
		CallbackURL:   cfg.Hub.CallbackURL,
		VerifyToken:   cfg.Hub.VerifyToken,
		TopicTemplate: cfg.Hub.TopicTemplate,
		LeaseSeconds:  cfg.Hub.LeaseSeconds,
	})

	registry := timer.NewRegistry(clock.New())
	runner := deferred.NewRunner(registry)

	remService := remindersvc.NewService(remRepo, q, rdb, runner, clock.New(), cfg.Retry)
	lsService := leasesvc.NewService(lsRepo, hubClient, runner, clock.New(), cfg.Hub.LeaseDuration())

	// Rebuild timers from the store before the API can accept commands that
	// create or cancel tasks. Runs exactly once per process.
	reconciler := reconcile.New(remRepo, lsRepo, remService, lsService)
	if err := reconciler.Run(ctx); err != nil {
		zlog.Logger.Error().Err(err).Msg("reconciliation finished with errors")
	}

	discordClient := discord.NewClient(cfg.Discord.Token)
	messageHandler := deliveryh.NewHandler(discordClient, remService)
	dispatcher := worker.NewDispatcher(q, messageHandler, remService)

	go dispatcher.Run(ctx, cfg.Retry, cfg.Workers.Count)

	feedHub := events.NewHub()
	feedHub.Subscribe(func(e events.VideoEvent) {
		zlog.Logger.Info().Str("topic", e.TopicID).Str("video", e.VideoID).Msg("feed update received")
	})

	remHandler := reminderh.NewHandler(remService, val)
	subHandler := subscriptionh.NewHandler(lsService, val)
	wsHandler := websub.NewHandler(lsService, feedHub, cfg.Hub.VerifyToken)

	r := router.New(remHandler, subHandler, wsHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
