// Package setting holds the process configuration loaded at startup.
package setting

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"time"

	"github.com/dwnGnL/paymentService/models"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config is the global configuration, filled by Setup.
var Config = Defaults()

// Defaults returns the configuration used when no file is present.
func Defaults() models.Config {
	return models.Config{
		AppConf: models.App{
			ServerName:    "paymentService",
			Port:          8080,
			ReadTimeout:   30,
			WriteTimeout:  30,
			StatsInterval: 60,
			CORSOrigins:   []string{"*"},
		},
		DB: models.DBStruct{
			DSN:          "host=localhost user=postgres password=postgres dbname=payments port=5432 sslmode=disable",
			MaxOpenConns: 10,
		},
		Cache: models.CacheStruct{
			LessRequestTime: models.LessReq{MaxRepeat: 20, Duration: 1},
			CleaningTime:    600,
			CheckingTIme:    60,
			WaitTime:        10,
		},
		Log: models.LogConf{Level: "info"},
	}
}

// Setup reads the JSON file at path over the defaults, loads .env and applies
// environment overrides. A missing file is not an error.
func Setup(path string) {
	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("setting.Setup, fail to parse '%s': %v", path, err)
	}
	Config = cfg
}

func Load(path string) (models.Config, error) {
	cfg := Defaults()

	data, err := ioutil.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Warnf("config file %s not found, using defaults", path)
	case err != nil:
		return cfg, err
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *models.Config) error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("PORT: %w", err)
		}
		cfg.AppConf.Port = port
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DB.DSN = v
	}
	if v := os.Getenv("SENTRY_DSN"); v != "" {
		cfg.Sentry.DSN = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

// Location resolves app.location, falling back to the local zone.
func Location() *time.Location {
	if Config.AppConf.Location == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(Config.AppConf.Location)
	if err != nil {
		log.Warnf("unknown location %q, using local time: %v", Config.AppConf.Location, err)
		return time.Local
	}
	return loc
}
