package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product 對應Products表
// ProductID是顯示用的流水號, 不保證在併發寫入下唯一(見sequence allocator)
type Product struct {
	PartitionKey       string          `gorm:"primaryKey;type:varchar(255)" json:"partitionKey"`
	RowKey             string          `gorm:"primaryKey;type:varchar(255)" json:"rowKey"`
	ProductID          int             `gorm:"not null" json:"productId"`
	ProductName        string          `gorm:"not null;type:varchar(255)" json:"productName"`
	Description        string          `gorm:"not null" json:"description"`
	Category           string          `gorm:"not null;type:varchar(255)" json:"category"`
	AvailabilityStatus string          `gorm:"not null;type:varchar(255)" json:"availabilityStatus"`
	Price              decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	ImageURL           string          `gorm:"column:image_url" json:"imageUrl,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"null" json:"-"`
}
