package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	StreamURL  string // адрес видеопотока камеры
	ParamsPath string // путь к YAML с параметрами детекции; пусто — умолчания
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		StreamURL:  os.Getenv("STREAM_URL"),
		ParamsPath: os.Getenv("DETECTION_PARAMS"),
	}

	return cfg, nil
}
