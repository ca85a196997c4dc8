package db

import (
	"context"
	"errors"

	"github.com/natheerjardien/cldvpoe/internal/model"
	"gorm.io/gorm"
)

var (
	// ErrSequenceContention CAS重試次數用盡
	ErrSequenceContention = errors.New("sequence allocation retry limit exceeded")
)

const maxCasAttempts = 10

type ISequenceRepository interface {
	Next(ctx context.Context, name string) (int, error)
}

// SequenceRepo 用counter record取代scan-and-max
// 以version欄位做optimistic concurrency, 衝突就重讀重試
type SequenceRepo struct {
	db *DbDao
}

func NewSequenceRepo(db *DbDao) *SequenceRepo {
	return &SequenceRepo{db: db}
}

// Next 取得下一個流水號, 併發安全
func (s *SequenceRepo) Next(ctx context.Context, name string) (int, error) {
	for attempt := 0; attempt < maxCasAttempts; attempt++ {
		var seq model.Sequence
		err := s.db.WithContext(ctx).First(&seq, "name = ?", name).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			seq = model.Sequence{Name: name}
			if err := s.db.WithContext(ctx).Create(&seq).Error; err != nil {
				// 同時有別人建立了counter, 重讀即可
				continue
			}
		} else if err != nil {
			return 0, err
		}

		res := s.db.WithContext(ctx).Model(&model.Sequence{}).
			Where("name = ? AND version = ?", name, seq.Version).
			Updates(map[string]interface{}{
				"value":   seq.Value + 1,
				"version": seq.Version + 1,
			})
		if res.Error != nil {
			return 0, res.Error
		}
		if res.RowsAffected == 1 {
			return int(seq.Value) + 1, nil
		}
		// version不符, 代表有併發寫入, 重試
	}
	return 0, ErrSequenceContention
}

var _ ISequenceRepository = (*SequenceRepo)(nil)
