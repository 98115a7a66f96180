// Package kafka publishes integration events about order lifecycle changes.
// Downstream consumers (notifications, analytics) track orders through the
// order-changed topic instead of polling the database.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"laundry/internal/core/domain/model/order"

	segmentio "github.com/segmentio/kafka-go"
)

// OrderChangedEvent is the wire payload published on every order state
// change. The key is the order ID, so per-order ordering is preserved within
// a partition.
type OrderChangedEvent struct {
	OrderID           string    `json:"orderId"`
	UserID            string    `json:"userId"`
	StoreID           string    `json:"storeId"`
	DeliveryPartnerID *string   `json:"deliveryPartnerId,omitempty"`
	Status            string    `json:"status"`
	PaymentStatus     string    `json:"paymentStatus"`
	TotalAmount       float64   `json:"totalAmount"`
	OccurredAt        time.Time `json:"occurredAt"`
}

// OrderChangedPublisher writes order lifecycle events to Kafka.
type OrderChangedPublisher struct {
	writer *segmentio.Writer
}

// NewOrderChangedPublisher creates a publisher for the given brokers and
// topic.
func NewOrderChangedPublisher(brokers []string, topic string) *OrderChangedPublisher {
	return &OrderChangedPublisher{
		writer: &segmentio.Writer{
			Addr:                   segmentio.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &segmentio.Hash{},
			RequiredAcks:           segmentio.RequireOne,
			AllowAutoTopicCreation: true,
			BatchTimeout:           100 * time.Millisecond,
		},
	}
}

// PublishOrderChanged publishes the order's current state.
func (p *OrderChangedPublisher) PublishOrderChanged(ctx context.Context, aggregate *order.Order) error {
	event := eventFromDomain(aggregate)

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, segmentio.Message{
		Key:   []byte(event.OrderID),
		Value: data,
		Time:  event.OccurredAt,
	})
}

// Close flushes and closes the underlying writer.
func (p *OrderChangedPublisher) Close() error {
	return p.writer.Close()
}

func eventFromDomain(aggregate *order.Order) OrderChangedEvent {
	var partnerID *string
	if id := aggregate.DeliveryPartner(); id != nil {
		raw := id.String()
		partnerID = &raw
	}

	return OrderChangedEvent{
		OrderID:           aggregate.ID().String(),
		UserID:            aggregate.UserID().String(),
		StoreID:           aggregate.StoreID().String(),
		DeliveryPartnerID: partnerID,
		Status:            aggregate.Status().String(),
		PaymentStatus:     aggregate.PaymentStatus().String(),
		TotalAmount:       aggregate.TotalAmount(),
		OccurredAt:        time.Now().UTC(),
	}
}
