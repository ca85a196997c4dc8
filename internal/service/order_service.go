package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/natheerjardien/cldvpoe/internal/constants"
	"github.com/natheerjardien/cldvpoe/internal/infra/queue"
	"github.com/natheerjardien/cldvpoe/internal/infra/repository/db"
	"github.com/natheerjardien/cldvpoe/internal/model"
	"github.com/rs/zerolog"
)

type IOrderService interface {
	PlaceOrder(ctx context.Context, customerID, productID string, orderDate time.Time) (*model.Order, error)
	GetOrder(ctx context.Context, partitionKey, rowKey string) (*model.Order, error)
	GetAllOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrder(ctx context.Context, order *model.Order) (bool, error)
	DeleteOrder(ctx context.Context, partitionKey, rowKey string) error
}

type OrderService struct {
	orderRepo  db.IOrderRepository
	seqService ISequenceService
	producer   queue.Producer
	logger     zerolog.Logger
}

func NewOrderService(orderRepo db.IOrderRepository, seqService ISequenceService, producer queue.Producer, logger zerolog.Logger) *OrderService {
	return &OrderService{
		orderRepo:  orderRepo,
		seqService: seqService,
		producer:   producer,
		logger:     logger,
	}
}

// PlaceOrder 下單流程:
//  1. 驗證必填欄位 (不檢查customer/product是否存在)
//  2. 分配OrderID
//  3. 固定partition key, 產生row key, 狀態固定為Order Processed, 日期轉UTC
//  4. 寫入訂單
//  5. 發通知訊息到queue
//
// 寫入與發訊息兩步不是transaction: 訊息發送失敗不會rollback訂單,
// 訂單照常回傳, 只記log。這是已接受的partial-failure行為
func (o *OrderService) PlaceOrder(ctx context.Context, customerID, productID string, orderDate time.Time) (*model.Order, error) {
	switch {
	case customerID == "":
		return nil, fmt.Errorf("%w: customerId", ErrMissingField)
	case productID == "":
		return nil, fmt.Errorf("%w: productId", ErrMissingField)
	case orderDate.IsZero():
		return nil, fmt.Errorf("%w: orderDate", ErrMissingField)
	}

	id, err := o.seqService.NextOrderID(ctx)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		PartitionKey: constants.OrderPartition,
		RowKey:       uuid.New().String(),
		OrderID:      id,
		CustomerID:   customerID,
		ProductID:    productID,
		OrderDate:    orderDate.UTC(),
		OrderStatus:  constants.OrderStatusProcessed,
	}

	if err := o.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("New Order by Customer %s || for product %s || scheduled for %s || order status = %s",
		order.CustomerID, order.ProductID, order.OrderDate.Format(time.RFC3339), order.OrderStatus)

	if err := o.producer.Produce(ctx, []byte(order.RowKey), []byte(message)); err != nil {
		o.logger.Error().Err(err).
			Str("row_key", order.RowKey).
			Int("order_id", order.OrderID).
			Msg("order stored but notification enqueue failed")
	}

	return order, nil
}

func (o *OrderService) GetOrder(ctx context.Context, partitionKey, rowKey string) (*model.Order, error) {
	order, err := o.orderRepo.GetOrder(ctx, partitionKey, rowKey)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotExist
	}
	return order, nil
}

func (o *OrderService) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	return o.orderRepo.GetAllOrders(ctx)
}

// UpdateOrder 整筆覆寫, 狀態轉移不做server端檢查 (任意字串都寫得進去)
func (o *OrderService) UpdateOrder(ctx context.Context, order *model.Order) (bool, error) {
	if order.PartitionKey == "" || order.RowKey == "" {
		return false, ErrKeysNotSet
	}

	existing, err := o.orderRepo.GetOrder(ctx, order.PartitionKey, order.RowKey)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, ErrOrderNotExist
	}

	order.OrderID = existing.OrderID
	order.CreatedAt = existing.CreatedAt
	order.OrderDate = order.OrderDate.UTC()

	if err := o.orderRepo.UpdateOrder(ctx, order); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteOrder 冪等
func (o *OrderService) DeleteOrder(ctx context.Context, partitionKey, rowKey string) error {
	return o.orderRepo.DeleteOrder(ctx, partitionKey, rowKey)
}

var _ IOrderService = (*OrderService)(nil)
