package queue

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/segmentio/kafka-go"
)

var (
	// ErrProducerClosed 表示生產者已關閉
	ErrProducerClosed = errors.New("producer is closed")
)

// QueueError 代表queue操作錯誤
type QueueError struct {
	Operation string
	Topic     string
	Err       error
}

func (e *QueueError) Error() string {
	return fmt.Sprintf("queue operation %s on topic %s failed: %v", e.Operation, e.Topic, e.Err)
}

func (e *QueueError) Unwrap() error {
	return e.Err
}

// NewQueueError 創建新的 QueueError
func NewQueueError(operation, topic string, err error) error {
	return &QueueError{
		Operation: operation,
		Topic:     topic,
		Err:       err,
	}
}

// IsTemporaryError 判斷是否為可重試的臨時錯誤
func IsTemporaryError(err error) bool {
	if err == nil {
		return false
	}

	var queueErr *QueueError
	if errors.As(err, &queueErr) {
		err = queueErr.Err
	}

	// kafka特定的可重試錯誤
	if errors.Is(err, kafka.LeaderNotAvailable) ||
		errors.Is(err, kafka.NotLeaderForPartition) ||
		errors.Is(err, kafka.RequestTimedOut) ||
		errors.Is(err, kafka.RebalanceInProgress) {
		return true
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "temporary") ||
		strings.Contains(errStr, "retriable") ||
		strings.Contains(errStr, "i/o timeout") ||
		strings.Contains(errStr, "connection reset by peer")
}
