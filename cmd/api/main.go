package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/hirewire-dev/hirewire/backend/internal/config"
	"github.com/hirewire-dev/hirewire/backend/internal/domain"
	"github.com/hirewire-dev/hirewire/backend/internal/handler"
	"github.com/hirewire-dev/hirewire/backend/internal/migrations"
	"github.com/hirewire-dev/hirewire/backend/internal/repository"
	"github.com/hirewire-dev/hirewire/backend/internal/storage"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		return
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

	// run pending schema migrations before serving traffic
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		logger.Error("failed to set migration dialect", "error", err)
		return
	}
	if err := goose.UpContext(ctx, dbpool, "."); err != nil {
		logger.Error("failed to run migrations", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	// make sure the initial admin account exists
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.InitialAdmin.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("failed to hash initial admin password", "error", err)
		return
	}
	initialAdmin := &domain.User{
		FullName:     cfg.InitialAdmin.FullName,
		Email:        cfg.InitialAdmin.Email,
		PasswordHash: string(passwordHash),
		Role:         domain.RoleAdmin,
		Skills:       []string{},
	}
	if err := repo.CreateUser(initialAdmin); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "users_email_key":
			// the admin already exists, nothing to do
		default:
			logger.Error("failed to create initial admin", "error", err)
			return
		}
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("failed to open rabbitmq channel", "error", err)
		return
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		"email_queue",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("failed to declare email queue", "error", err)
		return
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	uploader, err := storage.NewUploader(cfg)
	if err != nil {
		logger.Error("failed to create object storage client", "error", err)
		return
	}

	handler, err := handler.NewHandler(cfg, repo, ch, rdb, uploader)
	if err != nil {
		logger.Error("failed to create handler", "error", err)
		return
	}
	handler.RegisterRoutes()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("starting server...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to start server", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("failed to shut down server", slog.String("error", err.Error()))
	}
	logger.Info("server stopped")
}
