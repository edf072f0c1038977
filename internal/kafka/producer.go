package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// TicketEventProducer is the interface handlers depend on, so tests can
// swap in a recorder.
type TicketEventProducer interface {
	ProduceTicketEvent(ctx context.Context, event string, payload map[string]interface{})
}

// Producer writes ticket lifecycle events to a Kafka topic. Best-effort:
// failures are logged, never surfaced to the API caller.
type Producer struct {
	writer *kafka.Writer
	topic  string
	log    *zap.SugaredLogger
}

// NewProducer creates the producer. With no brokers or an empty topic all
// methods are no-ops.
func NewProducer(brokers []string, topic string, log *zap.SugaredLogger) *Producer {
	if len(brokers) == 0 || topic == "" {
		return &Producer{log: log}
	}
	return &Producer{
		topic: topic,
		log:   log,
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

// ProduceTicketEvent sends one event. Events: ticket.created,
// ticket.updated, ticket.deleted, tickets.imported. payload carries the
// ticket fields (id, ticketId, orderNumber, carrier, produto, ...).
func (p *Producer) ProduceTicketEvent(ctx context.Context, event string, payload map[string]interface{}) {
	if p.writer == nil {
		return
	}
	msg := map[string]interface{}{"event": event}
	for k, v := range payload {
		msg[k] = v
	}
	body, err := json.Marshal(msg)
	if err != nil {
		p.log.Errorw("kafka: marshal ticket event", "event", event, "error", err)
		return
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{Value: body}); err != nil {
		p.log.Errorw("kafka: write ticket event", "event", event, "error", err)
	}
}

// Close closes the writer.
func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
