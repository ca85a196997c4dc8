package db

import (
	"github.com/natheerjardien/cldvpoe/internal/model"
	"gorm.io/gorm"
)

type DbDao struct {
	*gorm.DB
}

func NewDbDao(conn *gorm.DB) *DbDao {
	return &DbDao{
		DB: conn,
	}
}

// 初始化db schema
// 冪等性, 測試環境用, 正式環境走migration
func (d *DbDao) InitMigrate() error {
	return d.AutoMigrate(
		&model.Customer{},
		&model.Product{},
		&model.Order{},
		&model.Sequence{},
	)
}
