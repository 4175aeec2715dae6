package mq

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"CluckAI/app/services/orderbot/internal/svc"

	"github.com/segmentio/kafka-go"
)

// PublishOrderPlaced sends the order-placed event to Kafka. It is a no-op
// when no broker is configured, so a bare local deployment still works.
func PublishOrderPlaced(sc *svc.ServiceContext, evt OrderPlacedEvent) error {
	if sc.KafkaWriter == nil {
		return nil
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(evt.OrderNo, 10)),
		Value: body,
	}
	return sc.KafkaWriter.WriteMessages(ctx, msg)
}
