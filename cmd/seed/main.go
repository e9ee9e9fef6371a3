package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/edutech-dev/board/internal/config"
	"github.com/edutech-dev/board/internal/domain"
	"github.com/edutech-dev/board/internal/repository"
	"github.com/edutech-dev/board/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operation to run (1: insert random members, 2: insert random board posts)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not connect; ping to fail fast on a bad DSN.
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to connect to the database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		logger.Error("unable to ensure database schema", "error", err)
		return
	}

	switch op {
	case 0:
		logger.Error("no operation given")
	case 1:
		if n <= 0 {
			logger.Error("please give a valid member count")
			return
		}
		inserted := 0
		for i := 0; i < n; i++ {
			member, err := seed.RandomMember(cfg.Seed.MemberPassword, cfg.Seed.EmailDomain)
			if err != nil {
				logger.Error("unable to generate a random member", slog.String("error", err.Error()))
				continue
			}

			if err := repo.Members().Create(context.Background(), member); err != nil {
				switch {
				case errors.Is(err, domain.ErrDuplicateEmail), errors.Is(err, domain.ErrDuplicateUsername):
					// Collisions between generated usernames happen; skip.
					logger.Warn("skipping duplicate generated member", slog.String("username", member.Username))
				default:
					logger.Error("unable to insert member", slog.String("error", err.Error()))
				}
				continue
			}
			inserted++
		}
		logger.Info("members inserted", slog.Int("count", inserted))
	case 2:
		if n <= 0 {
			logger.Error("please give a valid post count")
			return
		}
		for i := 1; i <= n; i++ {
			post := seed.RandomPost(i)
			if err := repo.Boards().Create(context.Background(), post); err != nil {
				logger.Error("unable to insert post", slog.String("error", err.Error()))
				continue
			}
			logger.Info("post inserted", slog.Int64("bno", post.Bno))
		}
	default:
		logger.Error("unknown operation", slog.Int("op", op))
	}
}
