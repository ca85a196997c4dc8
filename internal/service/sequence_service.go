package service

import (
	"context"

	"github.com/natheerjardien/cldvpoe/internal/constants"
	"github.com/natheerjardien/cldvpoe/internal/infra/repository/db"
)

type ISequenceService interface {
	NextProductID(ctx context.Context) (int, error)
	NextOrderID(ctx context.Context) (int, error)
}

// SequenceService 分配Product/Order的流水號
//
// counter模式(預設): 走sequences表的CAS loop, 併發安全
// scan模式: 保留原始的scan-and-max行為 — 讀全表取max+1, 非原子,
// 兩個併發寫入者會拿到同一個ID。只用於相容性測試, 不要在正式環境用
type SequenceService struct {
	mode        string
	seqRepo     db.ISequenceRepository
	productRepo db.IProductRepository
	orderRepo   db.IOrderRepository
}

func NewSequenceService(mode string, seqRepo db.ISequenceRepository, productRepo db.IProductRepository, orderRepo db.IOrderRepository) *SequenceService {
	if mode == "" {
		mode = constants.AllocModeCounter
	}
	return &SequenceService{
		mode:        mode,
		seqRepo:     seqRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

func (s *SequenceService) NextProductID(ctx context.Context) (int, error) {
	if s.mode == constants.AllocModeScan {
		max, err := s.productRepo.MaxProductID(ctx)
		if err != nil {
			return 0, err
		}
		return max + 1, nil
	}
	return s.seqRepo.Next(ctx, constants.SeqProduct)
}

func (s *SequenceService) NextOrderID(ctx context.Context) (int, error) {
	if s.mode == constants.AllocModeScan {
		max, err := s.orderRepo.MaxOrderID(ctx)
		if err != nil {
			return 0, err
		}
		return max + 1, nil
	}
	return s.seqRepo.Next(ctx, constants.SeqOrder)
}

var _ ISequenceService = (*SequenceService)(nil)
