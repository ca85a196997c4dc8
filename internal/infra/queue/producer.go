package queue

import (
	"context"
	"log"
	"net"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"
)

const defaultRetryAttempts = 3

// Producer interface defines the methods that a queue producer must implement
type Producer interface {
	// Produce sends one message to the queue
	Produce(ctx context.Context, key, value []byte) error
	// Close closes the producer
	Close() error
}

// kafkaProducer implements the Producer interface
type kafkaProducer struct {
	writer        *kafka.Writer
	topic         string
	retryAttempts int
	closed        atomic.Bool
}

// New creates a new Kafka producer
func New(brokers []string, topic string) Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 100 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
		Async:        false,

		MaxAttempts: defaultRetryAttempts,

		// 重連機制設置
		Transport: &kafka.Transport{
			Dial: func(ctx context.Context, network string, address string) (net.Conn, error) {
				dialer := &kafka.Dialer{
					Timeout:   10 * time.Second, // 連接超時
					DualStack: true,             // 支援 IPv4/IPv6
					KeepAlive: 30 * time.Second, // TCP keepalive
				}
				return dialer.DialContext(ctx, network, address)
			},
		},

		// 錯誤處理
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			log.Printf("kafka producer error: "+msg, args...)
		}),

		// 壓縮設置
		Compression: kafka.Snappy,
	}

	return &kafkaProducer{
		writer:        writer,
		topic:         topic,
		retryAttempts: defaultRetryAttempts,
	}
}

// Produce implements the Producer interface
// 同步發送消息, 會block到消息寫入完成
func (p *kafkaProducer) Produce(ctx context.Context, key, value []byte) error {
	if p.closed.Load() {
		return ErrProducerClosed
	}

	msg := kafka.Message{
		Key:   key,
		Value: value,
	}

	var err error
	for attempt := 0; attempt <= p.retryAttempts; attempt++ {
		// 檢查外部 context 是否已經取消
		if ctx.Err() != nil {
			return NewQueueError("Produce", p.topic, ctx.Err())
		}
		err = p.writer.WriteMessages(ctx, msg)
		if err == nil {
			return nil
		}

		if !IsTemporaryError(err) {
			break
		}
	}

	return NewQueueError("Produce", p.topic, err)
}

// Close implements the Producer interface
func (p *kafkaProducer) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	return p.writer.Close()
}
