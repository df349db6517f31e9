package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/hirewire-dev/hirewire/backend/internal/config"
	"github.com/hirewire-dev/hirewire/backend/internal/repository"
	"github.com/hirewire-dev/hirewire/backend/internal/seed"
	"github.com/hirewire-dev/hirewire/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const seedEmailDomain = "example.com"

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operation (1: insert random candidates, 2: insert random jobs for existing employers, 3: insert the sample data set)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not dial, so verify the database is reachable up front
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("no operation specified")
	case 1:
		if n <= 0 {
			slog.Error("number of candidates must be positive")
			return
		}

		cnt := 0
		for i := 0; i < n; i++ {
			user, err := utils.GenerateRandomCandidate(cfg.Seed.Password, seedEmailDomain)
			if err != nil {
				slog.Error("failed to generate candidate", slog.String("error", err.Error()))
				continue
			}

			if err := repo.CreateUser(user); err != nil {
				slog.Error("failed to insert candidate", slog.String("error", err.Error()))
				continue
			}

			cnt++
		}

		slog.Info("candidates inserted", slog.Int("count", cnt))
	case 2:
		if n <= 0 {
			slog.Error("number of jobs must be positive")
			return
		}

		employers, err := repo.GetAllEmployers()
		if err != nil {
			slog.Error("failed to list employers", slog.String("error", err.Error()))
			return
		}
		if len(employers) == 0 {
			slog.Error("no employers to attach jobs to, run -op 3 first")
			return
		}

		cnt := 0
		for i := 0; i < n; i++ {
			employer := employers[i%len(employers)]

			job := utils.GenerateRandomJob(employer)
			if err := repo.CreateJob(job); err != nil {
				slog.Error("failed to insert job", slog.String("error", err.Error()))
				continue
			}

			cnt++
		}

		slog.Info("jobs inserted", slog.Int("count", cnt))
	case 3:
		seed.SeedSampleData(repo, cfg.Seed.Password)
	default:
		slog.Error("unknown operation")
	}
}
