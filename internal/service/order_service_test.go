package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/natheerjardien/cldvpoe/internal/constants"
	"github.com/natheerjardien/cldvpoe/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestOrder() *model.Order {
	return &model.Order{
		PartitionKey: constants.OrderPartition,
		RowKey:       uuid.New().String(),
		OrderID:      1,
		CustomerID:   "C1",
		ProductID:    "P1",
		OrderDate:    time.Now().UTC(),
		OrderStatus:  constants.OrderStatusProcessed,
	}
}

func newTestOrderService(orderRepo *fakeOrderRepo, producer *fakeProducer, mode string) *OrderService {
	seqService := NewSequenceService(mode, newFakeSequenceRepo(), newFakeProductRepo(), orderRepo)
	return NewOrderService(orderRepo, seqService, producer, zerolog.Nop())
}

func TestPlaceOrder(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	producer := newFakeProducer()
	orderService := newTestOrderService(orderRepo, producer, constants.AllocModeCounter)

	orderDate := time.Date(2025, 4, 15, 10, 30, 0, 0, time.FixedZone("SAST", 2*60*60))
	order, err := orderService.PlaceOrder(context.Background(), "C1", "P1", orderDate)
	require.NoError(t, err)

	// 第一張訂單的流水號是1, 狀態固定, 日期轉UTC
	require.Equal(t, 1, order.OrderID)
	require.Equal(t, constants.OrderPartition, order.PartitionKey)
	require.NotEmpty(t, order.RowKey)
	require.Equal(t, constants.OrderStatusProcessed, order.OrderStatus)
	require.Equal(t, time.UTC, order.OrderDate.Location())
	require.True(t, order.OrderDate.Equal(orderDate))

	// 訂單有落地
	stored, err := orderRepo.GetOrder(context.Background(), order.PartitionKey, order.RowKey)
	require.NoError(t, err)
	require.NotNil(t, stored)

	// 通知訊息格式
	require.Len(t, producer.messages, 1)
	expected := fmt.Sprintf("New Order by Customer C1 || for product P1 || scheduled for %s || order status = Order Processed",
		order.OrderDate.Format(time.RFC3339))
	require.Equal(t, expected, producer.messages[0].value)
	require.Equal(t, order.RowKey, producer.messages[0].key)
}

func TestPlaceOrderValidation(t *testing.T) {
	orderService := newTestOrderService(newFakeOrderRepo(), newFakeProducer(), constants.AllocModeCounter)

	cases := []struct {
		name       string
		customerID string
		productID  string
		orderDate  time.Time
	}{
		{"missing customerId", "", "P1", time.Now()},
		{"missing productId", "C1", "", time.Now()},
		{"missing orderDate", "C1", "P1", time.Time{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := orderService.PlaceOrder(context.Background(), tc.customerID, tc.productID, tc.orderDate)
			require.ErrorIs(t, err, ErrMissingField)
		})
	}
}

func TestPlaceOrderEnqueueFailure(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	producer := newFakeProducer()
	producer.produceErr = errors.New("broker unreachable")
	orderService := newTestOrderService(orderRepo, producer, constants.AllocModeCounter)

	// 發訊息失敗不影響下單結果, 訂單照常落地
	order, err := orderService.PlaceOrder(context.Background(), "C1", "P1", time.Now())
	require.NoError(t, err)

	stored, err := orderRepo.GetOrder(context.Background(), order.PartitionKey, order.RowKey)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestPlaceOrderCounterModeSequential(t *testing.T) {
	orderService := newTestOrderService(newFakeOrderRepo(), newFakeProducer(), constants.AllocModeCounter)

	for i := 1; i <= 3; i++ {
		order, err := orderService.PlaceOrder(context.Background(), "C1", "P1", time.Now())
		require.NoError(t, err)
		require.Equal(t, i, order.OrderID)
	}
}

func TestPlaceOrderScanMode(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	orderService := newTestOrderService(orderRepo, newFakeProducer(), constants.AllocModeScan)

	first, err := orderService.PlaceOrder(context.Background(), "C1", "P1", time.Now())
	require.NoError(t, err)
	require.Equal(t, 1, first.OrderID)

	second, err := orderService.PlaceOrder(context.Background(), "C2", "P2", time.Now())
	require.NoError(t, err)
	require.Equal(t, 2, second.OrderID)
}

// scan模式的max+1不是原子操作, 兩個寫入者在讀max與寫入之間交錯
// 會拿到同一個OrderID。這個測試固定住這個歷史行為
func TestScanModeAllocationRace(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	seqService := NewSequenceService(constants.AllocModeScan, newFakeSequenceRepo(), newFakeProductRepo(), orderRepo)

	var wg sync.WaitGroup
	ids := make([]int, 2)
	errs := make([]error, 2)
	barrier := make(chan struct{})
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			<-barrier
			ids[idx], errs[idx] = seqService.NextOrderID(context.Background())
		}(i)
	}
	close(barrier)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	// 空表時兩邊讀到max=0, 都分配到1
	require.Equal(t, 1, ids[0])
	require.Equal(t, 1, ids[1])
}

func TestGetOrderNotExist(t *testing.T) {
	orderService := newTestOrderService(newFakeOrderRepo(), newFakeProducer(), constants.AllocModeCounter)

	_, err := orderService.GetOrder(context.Background(), constants.OrderPartition, "missing")
	require.ErrorIs(t, err, ErrOrderNotExist)
}

func TestGetAllOrdersEmpty(t *testing.T) {
	orderService := newTestOrderService(newFakeOrderRepo(), newFakeProducer(), constants.AllocModeCounter)

	orders, err := orderService.GetAllOrders(context.Background())
	require.NoError(t, err)
	require.NotNil(t, orders)
	require.Empty(t, orders)
}

func TestUpdateOrder(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	orderService := newTestOrderService(orderRepo, newFakeProducer(), constants.AllocModeCounter)

	order, err := orderService.PlaceOrder(context.Background(), "C1", "P1", time.Now())
	require.NoError(t, err)

	updated := *order
	updated.OrderStatus = constants.OrderStatusOutForDelivery
	updated.OrderID = 999 // client傳什麼都不算數, 以存在的紀錄為準

	ok, err := orderService.UpdateOrder(context.Background(), &updated)
	require.NoError(t, err)
	require.True(t, ok)

	stored, err := orderService.GetOrder(context.Background(), order.PartitionKey, order.RowKey)
	require.NoError(t, err)
	require.Equal(t, constants.OrderStatusOutForDelivery, stored.OrderStatus)
	require.Equal(t, order.OrderID, stored.OrderID)
}

func TestUpdateOrderNotExist(t *testing.T) {
	orderService := newTestOrderService(newFakeOrderRepo(), newFakeProducer(), constants.AllocModeCounter)

	missing := *newTestOrder()
	_, err := orderService.UpdateOrder(context.Background(), &missing)
	require.ErrorIs(t, err, ErrOrderNotExist)

	noKeys := *newTestOrder()
	noKeys.PartitionKey = ""
	noKeys.RowKey = ""
	_, err = orderService.UpdateOrder(context.Background(), &noKeys)
	require.ErrorIs(t, err, ErrKeysNotSet)
}

func TestDeleteOrderIdempotent(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	orderService := newTestOrderService(orderRepo, newFakeProducer(), constants.AllocModeCounter)

	order, err := orderService.PlaceOrder(context.Background(), "C1", "P1", time.Now())
	require.NoError(t, err)

	require.NoError(t, orderService.DeleteOrder(context.Background(), order.PartitionKey, order.RowKey))
	// 已刪除再刪不報錯
	require.NoError(t, orderService.DeleteOrder(context.Background(), order.PartitionKey, order.RowKey))
}
