package db

import (
	"context"
	"errors"

	"github.com/natheerjardien/cldvpoe/internal/model"
	"gorm.io/gorm"
)

type IProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	GetProduct(ctx context.Context, partitionKey, rowKey string) (*model.Product, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, partitionKey, rowKey string) error
	MaxProductID(ctx context.Context) (int, error)
}

type ProductRepo struct {
	db *DbDao
}

func NewProductRepo(db *DbDao) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create - 新增商品
func (s *ProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Create(product).Error
}

// Read - 根據partitionKey+rowKey查詢商品, 不存在回傳nil
func (s *ProductRepo) GetProduct(ctx context.Context, partitionKey, rowKey string) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).First(&product, "partition_key = ? AND row_key = ?", partitionKey, rowKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Read - 查詢所有商品
func (s *ProductRepo) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	products := make([]model.Product, 0)
	err := s.db.WithContext(ctx).Order("product_id").Find(&products).Error
	return products, err
}

// Update - 整筆覆寫, 不檢查版本
func (s *ProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Save(product).Error
}

// Delete - 刪除商品, 不存在也不報錯
func (s *ProductRepo) DeleteProduct(ctx context.Context, partitionKey, rowKey string) error {
	return s.db.WithContext(ctx).
		Where("partition_key = ? AND row_key = ?", partitionKey, rowKey).
		Delete(&model.Product{}).Error
}

// 目前最大的ProductID, 空表回傳0
// scan模式的allocator用, 非原子
func (s *ProductRepo) MaxProductID(ctx context.Context) (int, error) {
	var max int
	err := s.db.WithContext(ctx).Model(&model.Product{}).
		Select("COALESCE(MAX(product_id), 0)").
		Row().Scan(&max)
	return max, err
}

var _ IProductRepository = (*ProductRepo)(nil)
