package consumer

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	"monitor-srv/internal/export"
	"monitor-srv/internal/model"
	"monitor-srv/pkg/scope"
)

// handleExportJobMessage decodes one job and delegates to the usecase.
// Processing failures are recorded on the export record, so the message
// is acked either way; only a malformed payload is dropped outright.
func (c *Consumer) handleExportJobMessage(msg amqp.Delivery) {
	ctx := context.Background()

	var message export.JobMessage
	if err := json.Unmarshal(msg.Body, &message); err != nil {
		c.l.Warnf(ctx, "export.delivery.rabbitmq.consumer.handleExportJobMessage: Invalid message format (skipping): %v", err)
		_ = msg.Ack(false)
		return
	}
	if message.ExportID == "" {
		c.l.Warnf(ctx, "export.delivery.rabbitmq.consumer.handleExportJobMessage: Invalid message: missing export_id (skipping)")
		_ = msg.Ack(false)
		return
	}

	sc := model.SystemScope
	ctx = scope.SetScopeToContext(ctx, sc)

	if err := c.uc.Process(ctx, sc, message.ExportID); err != nil {
		c.l.Errorf(ctx, "export.delivery.rabbitmq.consumer.handleExportJobMessage: usecase Process failed: %v", err)
	} else {
		c.l.Infof(ctx, "export.delivery.rabbitmq.consumer.handleExportJobMessage: export %s processed", message.ExportID)
	}

	_ = msg.Ack(false)
}
