package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"starshot-analyzer/config"
	"starshot-analyzer/internal/container"
	"starshot-analyzer/internal/domain/entity"
	"starshot-analyzer/internal/infrastructure/camera"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.StreamURL == "" {
		log.Fatal("STREAM_URL is required")
	}

	params, err := config.LoadParams(cfg.ParamsPath)
	if err != nil {
		log.Fatalf("Failed to load detection params: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Создаём источник кадров
	source := camera.NewStreamSource(camera.OpenStream, logger)

	// Собираем сервисы приложения
	appContainer := container.New(source, nil, params, logger)

	source.OnError(func(err error) {
		logger.Error("stream failed", "error", err)
	})
	source.OnFrame(func(frame entity.Frame) {
		logger.Debug("frame received", "brightness", frame.Brightness())
	})

	if err := appContainer.Capture.Connect(context.Background(), cfg.StreamURL); err != nil {
		log.Fatalf("Failed to connect to stream: %v", err)
	}
	defer appContainer.Capture.Disconnect()

	log.Println("Streaming...")
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	log.Println("Shutting down")
}
