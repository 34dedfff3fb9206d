package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common/cache"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common/id"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common/logger"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/core/config"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/core/db"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/queue"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/service"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/store"
)

// app holds the connections opened for one command invocation.
type app struct {
	cfg      config.Config
	database *db.DB
	redis    *redis.Client
	services *service.Services
}

var current *app

var rootCmd = &cobra.Command{
	Use:   "sprintctl",
	Short: "Operator tooling for Founder Sprint",
	Long: `sprintctl runs administrative tasks against the Founder Sprint database
using the same configuration as the server (.env.cli, then .env).

Examples:
  sprintctl user set-role --email ada@example.com --role staff
  sprintctl roster export --batch-slug winter-2026 --out roster.xlsx`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		current = a
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if current != nil {
			current.close()
		}
	},
}

func init() {
	rootCmd.AddCommand(userCmd, batchCmd, inviteCmd, rosterCmd, maintenanceCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func connect(ctx context.Context) (*app, error) {
	cfg, err := config.Load(config.ServiceTypeCLI)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	logger.Setup(cfg)

	if err := id.Init(cfg.NodeID); err != nil {
		return nil, fmt.Errorf("initializing id generator: %w", err)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	redisOpts, err := redis.ParseURL(cfg.Queue.RedisURL)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		database.Close()
		_ = redisClient.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	slog.DebugContext(ctx, "sprintctl connected", "env", cfg.Env)

	services := service.NewServices(
		store.NewStores(database.Queries()),
		service.NewTxRunner(database),
		nil,
		queue.NewRedisProducer(redisClient, cfg.Queue.RedisStream, slog.Default()),
		cache.NewRedisCache(redisClient, "sprint:cache", cfg.Cache.TTL),
		cfg.Cache.TTL,
		cfg.DashboardURL,
	)

	return &app{cfg: cfg, database: database, redis: redisClient, services: services}, nil
}

func (a *app) close() {
	_ = a.redis.Close()
	a.database.Close()
}
