package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/segmentio/kafka-go"
)

// Event types published to the inventory topics.
const (
	EventFlightScheduled = "flight_scheduled"
	EventTicketsSold     = "tickets_sold"
	EventFlightCompleted = "flight_completed"
)

// InventoryEvent is the wire form of an inventory change.
type InventoryEvent struct {
	Type        string              `json:"type"`
	RouteCode   string              `json:"route_code"`
	Date        string              `json:"date"`
	Aircraft    string              `json:"aircraft,omitempty"`
	ClientID    string              `json:"client_id,omitempty"`
	Quantity    int                 `json:"quantity,omitempty"`
	Amount      int                 `json:"amount,omitempty"`
	Settlements []domain.Settlement `json:"settlements,omitempty"`
	At          time.Time           `json:"at"`
}

// Key groups events of one flight occurrence onto one partition.
func (e InventoryEvent) Key() string {
	return e.RouteCode + ":" + e.Date
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write message to kafka: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
