package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/natheerjardien/cldvpoe/internal/constants"
	"github.com/natheerjardien/cldvpoe/internal/infra/repository/db"
	"github.com/natheerjardien/cldvpoe/internal/infra/repository/redis_repo"
	"github.com/natheerjardien/cldvpoe/internal/model"
	"github.com/rs/zerolog"
)

// ImageUpload 是multipart上傳進來的圖檔
type ImageUpload struct {
	FileName    string
	ContentType string
	Content     []byte
}

type IProductService interface {
	AddProduct(ctx context.Context, product *model.Product, image *ImageUpload) error
	GetProduct(ctx context.Context, partitionKey, rowKey string) (*model.Product, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product, image *ImageUpload) (bool, error)
	DeleteProduct(ctx context.Context, partitionKey, rowKey string) error
	GetImage(ctx context.Context, name string) ([]byte, string, error)
}

type ProductService struct {
	productRepo db.IProductRepository
	blobRepo    redis_repo.IBlobRepository
	seqService  ISequenceService
	logger      zerolog.Logger
}

func NewProductService(productRepo db.IProductRepository, blobRepo redis_repo.IBlobRepository, seqService ISequenceService, logger zerolog.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		blobRepo:    blobRepo,
		seqService:  seqService,
		logger:      logger,
	}
}

// AddProduct 新增商品, 有附圖就先上傳blob再寫表
func (s *ProductService) AddProduct(ctx context.Context, product *model.Product, image *ImageUpload) error {
	if err := validateProduct(product); err != nil {
		return err
	}

	id, err := s.seqService.NextProductID(ctx)
	if err != nil {
		return err
	}

	product.ProductID = id
	product.PartitionKey = constants.ProductPartition
	product.RowKey = uuid.New().String()

	if image != nil {
		imageURL, err := s.uploadImage(ctx, image)
		if err != nil {
			return err
		}
		product.ImageURL = imageURL
	}

	return s.productRepo.CreateProduct(ctx, product)
}

func (s *ProductService) GetProduct(ctx context.Context, partitionKey, rowKey string) (*model.Product, error) {
	product, err := s.productRepo.GetProduct(ctx, partitionKey, rowKey)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotExist
	}
	return product, nil
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.GetAllProducts(ctx)
}

// UpdateProduct 整筆覆寫
// 有新圖: 先上傳新blob, 表寫入成功後才刪舊blob, 刪失敗只記log
func (s *ProductService) UpdateProduct(ctx context.Context, product *model.Product, image *ImageUpload) (bool, error) {
	if product.PartitionKey == "" || product.RowKey == "" {
		return false, ErrKeysNotSet
	}

	existing, err := s.productRepo.GetProduct(ctx, product.PartitionKey, product.RowKey)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, ErrProductNotExist
	}

	product.ProductID = existing.ProductID
	product.CreatedAt = existing.CreatedAt
	if product.ImageURL == "" {
		product.ImageURL = existing.ImageURL
	}

	if image != nil {
		imageURL, err := s.uploadImage(ctx, image)
		if err != nil {
			return false, err
		}
		product.ImageURL = imageURL
	}

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return false, err
	}

	if existing.ImageURL != "" && existing.ImageURL != product.ImageURL {
		if err := s.blobRepo.DeleteByURL(ctx, existing.ImageURL); err != nil {
			s.logger.Error().Err(err).
				Str("image_url", existing.ImageURL).
				Msg("failed to delete replaced product image")
		}
	}

	return true, nil
}

// DeleteProduct 刪商品連帶刪blob, 冪等
func (s *ProductService) DeleteProduct(ctx context.Context, partitionKey, rowKey string) error {
	existing, err := s.productRepo.GetProduct(ctx, partitionKey, rowKey)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}

	if err := s.productRepo.DeleteProduct(ctx, partitionKey, rowKey); err != nil {
		return err
	}

	if existing.ImageURL != "" {
		if err := s.blobRepo.DeleteByURL(ctx, existing.ImageURL); err != nil {
			s.logger.Error().Err(err).
				Str("image_url", existing.ImageURL).
				Msg("failed to delete product image")
		}
	}
	return nil
}

func (s *ProductService) GetImage(ctx context.Context, name string) ([]byte, string, error) {
	return s.blobRepo.Download(ctx, name)
}

// blob name加上uuid前綴避免覆蓋同名檔案
func (s *ProductService) uploadImage(ctx context.Context, image *ImageUpload) (string, error) {
	name := fmt.Sprintf("%s_%s", uuid.New().String(), image.FileName)
	return s.blobRepo.Upload(ctx, name, image.ContentType, image.Content)
}

func validateProduct(product *model.Product) error {
	switch {
	case product.ProductName == "":
		return fmt.Errorf("%w: productName", ErrMissingField)
	case product.Description == "":
		return fmt.Errorf("%w: description", ErrMissingField)
	case product.Category == "":
		return fmt.Errorf("%w: category", ErrMissingField)
	case product.AvailabilityStatus == "":
		return fmt.Errorf("%w: availabilityStatus", ErrMissingField)
	}
	return nil
}

var _ IProductService = (*ProductService)(nil)
