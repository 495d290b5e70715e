package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/gomoku-backend/internal/config"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository/storage"
	"github.com/rocketscienceinc/gomoku-backend/internal/usecase"
	"github.com/rocketscienceinc/gomoku-backend/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	roomRepo, closeStorage, err := initRoomRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeStorage(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	roomUseCase := usecase.NewRoomManager(logger, roomRepo)

	server := rest.New(logger, roomUseCase, rest.Options{
		ReadTimeout:     conf.HTTP.ReadTimeout,
		WriteTimeout:    conf.HTTP.WriteTimeout,
		IdleTimeout:     conf.HTTP.IdleTimeout,
		ShutdownTimeout: conf.HTTP.ShutdownTimeout,
		AllowedOrigins:  conf.HTTP.AllowedOrigins,
	})

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "storage", conf.Storage)

	if err = server.Start(ctx, conf.HTTPPort); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// initRoomRepository - picks the room storage by config. The returned func releases it.
func initRoomRepository(ctx context.Context, conf *config.Config) (repository.RoomRepository, func() error, error) {
	if conf.Storage == config.StorageMemory {
		return repository.NewMemoryRoomRepository(conf.Room.TTL), func() error { return nil }, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, storage.RedisOptions{
		Addr:     redisAddrString,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	roomRepo := repository.NewRoomRepository(redisStorage.Connection, repository.Options{
		TTL:        conf.Room.TTL,
		MaxRetries: conf.Room.MaxRetries,
		KeyPrefix:  conf.Room.KeyPrefix,
	})

	return roomRepo, redisStorage.Close, nil
}
