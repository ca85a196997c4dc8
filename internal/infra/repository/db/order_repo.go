package db

import (
	"context"
	"errors"

	"github.com/natheerjardien/cldvpoe/internal/model"
	"gorm.io/gorm"
)

type IOrderRepository interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrder(ctx context.Context, partitionKey, rowKey string) (*model.Order, error)
	GetAllOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrder(ctx context.Context, order *model.Order) error
	DeleteOrder(ctx context.Context, partitionKey, rowKey string) error
	MaxOrderID(ctx context.Context) (int, error)
}

type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create - 創建訂單
func (s *OrderRepo) CreateOrder(ctx context.Context, order *model.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

// Read - 根據partitionKey+rowKey查詢訂單, 不存在回傳nil
func (s *OrderRepo) GetOrder(ctx context.Context, partitionKey, rowKey string) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).First(&order, "partition_key = ? AND row_key = ?", partitionKey, rowKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Read - 查詢所有訂單
func (s *OrderRepo) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	orders := make([]model.Order, 0)
	err := s.db.WithContext(ctx).Order("order_id").Find(&orders).Error
	return orders, err
}

// Update - 整筆覆寫, 不檢查版本
func (s *OrderRepo) UpdateOrder(ctx context.Context, order *model.Order) error {
	return s.db.WithContext(ctx).Save(order).Error
}

// Delete - 刪除訂單, 不存在也不報錯
func (s *OrderRepo) DeleteOrder(ctx context.Context, partitionKey, rowKey string) error {
	return s.db.WithContext(ctx).
		Where("partition_key = ? AND row_key = ?", partitionKey, rowKey).
		Delete(&model.Order{}).Error
}

// 目前最大的OrderID, 空表回傳0
func (s *OrderRepo) MaxOrderID(ctx context.Context) (int, error) {
	var max int
	err := s.db.WithContext(ctx).Model(&model.Order{}).
		Select("COALESCE(MAX(order_id), 0)").
		Row().Scan(&max)
	return max, err
}

var _ IOrderRepository = (*OrderRepo)(nil)
