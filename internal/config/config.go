// Package config предоставляет структуры и функцию для парсинга и загрузки конфига.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек приложения.
type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	RemoteAPI  `yaml:"remote_api"`
}

// HTTPServer структура для настройки собственного HTTP-сервера фронтенда.
type HTTPServer struct {
	Address     string        `yaml:"address" env-default:":8081"`
	Timeout     time.Duration `yaml:"timeout" env-default:"15s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RemoteAPI структура для настройки клиента удалённого API ростера.
// BaseURL задаёт базовый путь, конкретные маршруты фиксированы в сервисном слое.
type RemoteAPI struct {
	BaseURL        string        `yaml:"base_url" env:"REMOTE_API_BASE_URL"`
	RequestTimeout time.Duration `yaml:"request_timeout" env-default:"10s"`
	RateLimitRPS   float64       `yaml:"rate_limit_rps" env-default:"5"`
	RateLimitBurst int           `yaml:"rate_limit_burst" env-default:"10"`
}

// MustLoad загружает конфиг из файла, путь к которому задан в CONFIG_PATH.
// Завершает процесс при любой ошибке загрузки.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
