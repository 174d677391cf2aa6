package app

import (
	"database/sql"

	"hr-yayasan/internal/shared/connection"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const connectRetries = 5

// App memegang seluruh koneksi infrastruktur yang dipakai bersama.
type App struct {
	Config Config
	DB     *gorm.DB
	SQLDB  *sql.DB
	Redis  *redis.Client
	Kafka  *kafkago.Writer
	Logger *zap.Logger
}

// BuildApp membuka koneksi database, Redis, dan Kafka dengan retry.
// withKafka false untuk proses yang tidak mem-publish (API menulis outbox
// lewat database, hanya worker yang butuh writer).
func BuildApp(logger *zap.Logger, withKafka bool) (*App, error) {
	cfg := LoadConfig()

	db, err := connection.ConnectGORMWithRetry(
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
		connectRetries,
	)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
	if err != nil {
		return nil, err
	}

	var writer *kafkago.Writer
	if withKafka {
		writer, err = connection.ConnectKafkaWithRetry(cfg.KafkaBroker, connectRetries)
		if err != nil {
			return nil, err
		}
	}

	return &App{
		Config: cfg,
		DB:     db,
		SQLDB:  sqlDB,
		Redis:  rdb,
		Kafka:  writer,
		Logger: logger,
	}, nil
}

func (a *App) Close() {
	if a.Kafka != nil {
		a.Kafka.Close()
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if a.SQLDB != nil {
		a.SQLDB.Close()
	}
}
