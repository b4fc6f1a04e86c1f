package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel sets the level of the event publisher logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// SaleRecorded is emitted once a checkout snapshot is committed
type SaleRecorded struct {
	SaleID       uint            `json:"sale_id"`
	OrderID      uint            `json:"order_id"`
	CustomerName string          `json:"customer_name"`
	Total        decimal.Decimal `json:"total"`
	RecordedAt   time.Time       `json:"recorded_at"`
}

// SalePublisher announces recorded sales to downstream consumers
type SalePublisher interface {
	PublishSaleRecorded(ctx context.Context, event SaleRecorded) error
	Close() error
}

// messageWriter is the part of *kafka.Writer the publisher uses
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes SaleRecorded events keyed by order id
type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(writer messageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// NewKafkaWriter builds a writer for the sales topic on the given broker
func NewKafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		// one event per checkout, flush it instead of waiting for a batch
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           2 * time.Second,
		RequiredAcks:           kafka.RequireOne,
	}
}

func (p *KafkaPublisher) PublishSaleRecorded(ctx context.Context, event SaleRecorded) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(event.OrderID), 10)),
		Value: payload,
		Time:  event.RecordedAt,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// LogPublisher only logs events, used when no broker is configured
type LogPublisher struct{}

func (LogPublisher) PublishSaleRecorded(ctx context.Context, event SaleRecorded) error {
	log.WithFields(logrus.Fields{
		"sale_id":  event.SaleID,
		"order_id": event.OrderID,
		"total":    event.Total.StringFixed(2),
	}).Info("Sale recorded")
	return nil
}

func (LogPublisher) Close() error { return nil }
