package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jtcsoft/ems-backend/internal/api"
	"github.com/jtcsoft/ems-backend/internal/core/domain"
	"github.com/jtcsoft/ems-backend/internal/core/idgen"
	"github.com/jtcsoft/ems-backend/internal/core/ports"
	mongodb "github.com/jtcsoft/ems-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/jtcsoft/ems-backend/internal/infrastructure/db/redis"
	"github.com/jtcsoft/ems-backend/internal/pkg/config"
	"github.com/jtcsoft/ems-backend/pkg/logger"
)

// @title           EMS Backend API
// @version         1.0
// @description     Employee, client and project management backend.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	employeeRepo := mongodb.NewEmployeeRepository(db)
	contactRepo := mongodb.NewContactRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	for _, ensure := range []func(context.Context) error{
		employeeRepo.EnsureIndexes,
		contactRepo.EnsureIndexes,
		userRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}
	}

	ids := idgen.New(redisdb.NewSequence(rdb))
	if err := seedAdmin(ctx, userRepo, ids, cfg.Admin); err != nil {
		log.Fatal().Err(err).Msg("admin seeding failed")
	}

	e := api.NewRouter(db, rdb, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// seedAdmin creates the default administrator account when no admin exists,
// so a fresh deployment can be logged into.
func seedAdmin(ctx context.Context, users *mongodb.UserRepository, ids ports.IDGenerator, cfg config.AdminConfig) error {
	_, err := users.FindByRole(ctx, domain.RoleAdmin)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return err
	}

	id, err := ids.NextUserID(ctx)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return users.Save(ctx, &domain.User{
		ID:           id,
		Email:        cfg.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	})
}
