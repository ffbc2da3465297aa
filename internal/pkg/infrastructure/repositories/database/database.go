package database

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ConnectorFunc func() (*gorm.DB, zerolog.Logger, error)

type ConnectorConfig struct {
	Host     string
	Username string
	DbName   string
	Password string
	SslMode  string
}

func LoadConfigFromEnv() ConnectorConfig {
	sslMode := os.Getenv("POSTGRES_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	return ConnectorConfig{
		Host:     os.Getenv("POSTGRES_HOST"),
		Username: os.Getenv("POSTGRES_USER"),
		DbName:   os.Getenv("POSTGRES_DBNAME"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		SslMode:  sslMode,
	}
}

func NewSQLiteConnector(log zerolog.Logger) ConnectorFunc {
	return func() (*gorm.DB, zerolog.Logger, error) {
		db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
			Logger:          logger.Default.LogMode(logger.Silent),
			CreateBatchSize: 1000,
		})

		if err == nil {
			db.Exec("PRAGMA foreign_keys = ON")
			sqldb, _ := db.DB()
			sqldb.SetMaxOpenConns(1)
		}

		return db, log, err
	}
}

func NewPostgreSQLConnector(log zerolog.Logger, cfg ConnectorConfig) ConnectorFunc {
	dbURI := fmt.Sprintf("host=%s user=%s dbname=%s sslmode=%s password=%s", cfg.Host, cfg.Username, cfg.DbName, cfg.SslMode, cfg.Password)

	return func() (*gorm.DB, zerolog.Logger, error) {
		sublogger := log.With().Str("host", cfg.Host).Str("database", cfg.DbName).Logger()

		sublogger.Info().Msg("connecting to database host")

		db, err := gorm.Open(postgres.Open(dbURI), &gorm.Config{
			Logger: logger.New(
				&sublogger,
				logger.Config{
					SlowThreshold:             time.Second,
					LogLevel:                  logger.Warn,
					IgnoreRecordNotFoundError: true,
					Colorful:                  false,
				},
			),
		})
		if err != nil {
			return nil, sublogger, fmt.Errorf("failed to connect to database: %w", err)
		}

		return db, sublogger, nil
	}
}
