package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	cartdomain "github.com/forsage-shop/storefront/internal/cart/domain"
	"github.com/forsage-shop/storefront/internal/checkout/domain"
)

type Writer struct {
	*kafka.Writer
}

func NewWriter(brokers []string) *Writer {
	return &Writer{
		Writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

type orderSubmittedEvent struct {
	OrderID   string            `json:"order_id"`
	FullName  string            `json:"full_name"`
	Phone     string            `json:"phone"`
	Address   string            `json:"address"`
	Total     float64           `json:"total"`
	Lines     []cartdomain.Line `json:"lines"`
	CreatedAt time.Time         `json:"created_at"`
}

// Producer publishes OrderSubmitted events for back-office consumers.
type Producer struct {
	log    *slog.Logger
	writer *Writer
	topic  string
}

func NewProducer(log *slog.Logger, writer *Writer, topic string) *Producer {
	return &Producer{log: log, writer: writer, topic: topic}
}

func (p *Producer) OrderSubmitted(ctx context.Context, o domain.Order) error {
	payload, err := json.Marshal(orderSubmittedEvent{
		OrderID:   o.ID,
		FullName:  o.FullName,
		Phone:     o.Phone,
		Address:   o.Address,
		Total:     o.Total,
		Lines:     o.Lines,
		CreatedAt: o.CreatedAt,
	})
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(o.ID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("OrderSubmitted")},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Error("order event write failed", "order_id", o.ID, "err", err)
		return err
	}
	p.log.Info("order event published", "order_id", o.ID, "topic", p.topic)
	return nil
}
