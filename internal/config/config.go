package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	HTTPPort string

	DBDriver string // sqlite or postgres
	DBPath   string // sqlite file path
	DBDSN    string // postgres DSN

	RedisAddr    string // empty disables the rendered-page cache
	KafkaBrokers string // empty disables record change events
	KafkaTopic   string

	BaseURL     string // absolute URL prefix for rendered links
	Compression string // wiki revision codec: nop, gzip, brotli, lz4

	AuditSchedule string // cron spec for the reference audit job
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.Warnf("error loading .env file: %v", err)
	}

	return &Config{
		HTTPPort:      env("FLIPFIX_HTTP_PORT", "4080"),
		DBDriver:      env("FLIPFIX_DB_DRIVER", "sqlite"),
		DBPath:        env("FLIPFIX_DB_PATH", ".db/flipfix.db"),
		DBDSN:         env("FLIPFIX_DB_DSN", ""),
		RedisAddr:     env("FLIPFIX_REDIS_ADDR", ""),
		KafkaBrokers:  env("FLIPFIX_KAFKA_BROKERS", ""),
		KafkaTopic:    env("FLIPFIX_KAFKA_TOPIC", "flipfix.record.changes"),
		BaseURL:       env("FLIPFIX_BASE_URL", ""),
		Compression:   env("FLIPFIX_COMPRESSION", "gzip"),
		AuditSchedule: env("FLIPFIX_AUDIT_SCHEDULE", "@daily"),
	}
}

func GetDB(cnf *Config) (*gorm.DB, error) {
	if cnf.DBDriver == "postgres" {
		return gorm.Open(postgres.Open(cnf.DBDSN), &gorm.Config{})
	}

	if dir := filepath.Dir(cnf.DBPath); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
	}
	return gorm.Open(sqlite.Open(cnf.DBPath), &gorm.Config{})
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
