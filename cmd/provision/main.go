package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"meeting-rooms/internal/domain/room"
	"meeting-rooms/internal/handler/middleware"
	"meeting-rooms/internal/infra/db"
	"meeting-rooms/internal/infra/query"
	"meeting-rooms/internal/pkg/config"
	"meeting-rooms/internal/pkg/errs"
	"meeting-rooms/internal/pkg/password"

	"github.com/joho/godotenv"
)

var provisionService = config.Service{Name: "Provision"}

type options struct {
	schema     bool
	rooms      bool
	users      bool
	resetUsers bool
	timeout    time.Duration
}

func main() {
	var opts options
	flag.BoolVar(&opts.schema, "schema", true, "create tables and indexes")
	flag.BoolVar(&opts.rooms, "rooms", true, "seed the room catalog when it is empty")
	flag.BoolVar(&opts.users, "users", true, "seed the demo users")
	flag.BoolVar(&opts.resetUsers, "reset-users", false, "delete every user before seeding")
	flag.DurationVar(&opts.timeout, "timeout", time.Minute, "overall deadline")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig(provisionService)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log, provisionService.Name).GetSlogLogger()

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	if err := run(ctx, cfg, opts, logger); err != nil {
		logger.Error("provisioning failed", "error", err)
		os.Exit(1)
	}
	logger.Info("provisioning complete")
}

func run(ctx context.Context, cfg config.Config, opts options, logger *slog.Logger) error {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	if opts.schema {
		if err := db.Migrate(ctx, pool); err != nil {
			return err
		}
		logger.Info("schema applied")
	}

	seeder := db.NewSeeder(pool, query.New(), logger)

	if opts.rooms {
		n, err := seeder.SeedRooms(ctx, room.Seed)
		if err != nil {
			return err
		}
		logger.Info("rooms seeded", "inserted", n)
	}

	if opts.users {
		if _, err := password.NewVerifier(cfg.Auth.PasswordMode); err != nil {
			return errs.Wrapf(err, "AUTH_PASSWORD_MODE=%s", cfg.Auth.PasswordMode)
		}
		encode := func(pw string) (string, error) {
			return password.Encode(cfg.Auth.PasswordMode, pw)
		}
		n, err := seeder.SeedUsers(ctx, db.DemoUsers, encode, opts.resetUsers)
		if err != nil {
			return err
		}
		logger.Info("users seeded", "upserted", n, "password_mode", cfg.Auth.PasswordMode)
	}

	return nil
}
