package app

import (
	"context"

	"hr-yayasan/internal/messaging/kafka"
	"hr-yayasan/internal/messaging/kafka/producer"
)

// RunWorker menjalankan loop outbox publisher sampai context dibatalkan.
func RunWorker(ctx context.Context, a *App) {
	outboxRepo := kafka.NewOutboxRepository(a.SQLDB)
	producer.ProcessOutboxEvents(ctx, outboxRepo, a.Kafka, a.Logger, a.Config.OutboxPollInterval)
}
