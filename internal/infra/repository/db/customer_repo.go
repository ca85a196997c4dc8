package db

import (
	"context"
	"errors"

	"github.com/natheerjardien/cldvpoe/internal/model"
	"gorm.io/gorm"
)

type ICustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *model.Customer) error
	GetCustomer(ctx context.Context, partitionKey, rowKey string) (*model.Customer, error)
	GetAllCustomers(ctx context.Context) ([]model.Customer, error)
	UpdateCustomer(ctx context.Context, customer *model.Customer) error
	DeleteCustomer(ctx context.Context, partitionKey, rowKey string) error
}

type CustomerRepo struct {
	db *DbDao
}

func NewCustomerRepo(db *DbDao) *CustomerRepo {
	return &CustomerRepo{db: db}
}

// Create - 新增客戶
func (s *CustomerRepo) CreateCustomer(ctx context.Context, customer *model.Customer) error {
	return s.db.WithContext(ctx).Create(customer).Error
}

// Read - 根據partitionKey+rowKey查詢客戶, 不存在回傳nil
func (s *CustomerRepo) GetCustomer(ctx context.Context, partitionKey, rowKey string) (*model.Customer, error) {
	var customer model.Customer
	err := s.db.WithContext(ctx).First(&customer, "partition_key = ? AND row_key = ?", partitionKey, rowKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// Read - 查詢所有客戶, 每次都是新查詢, 空表回傳空slice
func (s *CustomerRepo) GetAllCustomers(ctx context.Context) ([]model.Customer, error) {
	customers := make([]model.Customer, 0)
	err := s.db.WithContext(ctx).Order("row_key").Find(&customers).Error
	return customers, err
}

// Update - 整筆覆寫, 不檢查版本 (last writer wins)
func (s *CustomerRepo) UpdateCustomer(ctx context.Context, customer *model.Customer) error {
	return s.db.WithContext(ctx).Save(customer).Error
}

// Delete - 刪除客戶, 不存在也不報錯
func (s *CustomerRepo) DeleteCustomer(ctx context.Context, partitionKey, rowKey string) error {
	return s.db.WithContext(ctx).
		Where("partition_key = ? AND row_key = ?", partitionKey, rowKey).
		Delete(&model.Customer{}).Error
}

var _ ICustomerRepository = (*CustomerRepo)(nil)
