package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common/id"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common/logger"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common/otel"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/core/config"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/core/db"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/notify"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/queue"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/service"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/store"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/worker"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeWorker)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n", banner)

	telemetry, err := otel.Setup(ctx, cfg.OTel, cfg.Env)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	slog.InfoContext(ctx, "sprint worker starting",
		"env", cfg.Env,
		"consumer_group", cfg.Queue.RedisGroup,
		"consumer_name", cfg.Queue.RedisConsumer,
		"email_enabled", cfg.Email.Enabled(),
		"calendar_enabled", cfg.Calendar.Enabled())

	if err := id.Init(cfg.NodeID); err != nil {
		slog.ErrorContext(ctx, "failed to initialize id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	redisOpts, err := redis.ParseURL(cfg.Queue.RedisURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Queue.RedisStream)

	consumer, err := queue.NewRedisConsumer(redisClient, queue.ConsumerConfig{
		Stream:       cfg.Queue.RedisStream,
		Group:        cfg.Queue.RedisGroup,
		Consumer:     cfg.Queue.RedisConsumer,
		DLQStream:    cfg.Queue.RedisDLQStream,
		BatchSize:    10,
		Block:        5 * time.Second,
		MaxAttempts:  cfg.Queue.MaxAttempts,
		RequeueDelay: time.Second,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create consumer", "error", err)
		os.Exit(1)
	}

	stores := store.NewStores(database.Queries())

	// The worker never signs users in or serves cached reads.
	services := service.NewServices(stores, service.NewTxRunner(database), nil,
		queue.NewRedisProducer(redisClient, cfg.Queue.RedisStream, slog.Default()),
		nil, cfg.Cache.TTL, cfg.DashboardURL)

	processor := worker.NewNotificationProcessor(
		notify.NewEmailSender(cfg.Email),
		notify.NewCalendar(cfg.Calendar),
		stores.OfficeHours(),
	)

	w := worker.New(consumer, processor, worker.Config{
		MaxAttempts: cfg.Queue.MaxAttempts,
	})

	reclaimer := worker.NewRedisReclaimer(redisClient, worker.RedisReclaimerConfig{
		Stream:    cfg.Queue.RedisStream,
		Group:     cfg.Queue.RedisGroup,
		Consumer:  cfg.Queue.RedisConsumer + "-reclaimer",
		MinIdle:   5 * time.Minute,
		Interval:  1 * time.Minute,
		BatchSize: 10,
	}, consumer, w.Handle)

	scheduler := worker.NewScheduler(services.Admin(), cfg.Maintenance.Interval)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return w.Run(gctx)
	})
	g.Go(func() error {
		reclaimer.Run(gctx)
		return nil
	})
	g.Go(func() error {
		scheduler.Run(gctx)
		return nil
	})

	slog.InfoContext(ctx, "worker initialized and running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down worker...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// Reclaimer and scheduler stop quickly; the worker may be mid-task.
	reclaimer.Stop()
	scheduler.Stop()
	w.Stop()

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	select {
	case <-shutdownCtx.Done():
		slog.WarnContext(ctx, "shutdown timeout exceeded")
	case err := <-done:
		if err != nil {
			slog.ErrorContext(ctx, "worker error during shutdown", "error", err)
		}
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(ctx, "worker shutdown complete")
}

const banner = `
 ___ ___ ___ ___ _  _ _____  __      _____  ___ _  _____ ___
/ __| _ \ _ \_ _| \| |_   _| \ \    / / _ \| _ \ |/ / __| _ \
\__ \  _/   /| || .' | | |    \ \/\/ / (_) |   / ' <| _||   /
|___/_| |_|_\___|_|\_| |_|     \_/\_/ \___/|_|_\_|\_\___|_|_\
`
