package model

import "time"

// Order 對應Orders表
// CustomerID/ProductID是自由文字的外部參照, 不做存在性檢查
//
// OrderStatus預期的狀態機(server端不強制):
//
//	Order Processed -> Backlogged | Cancelled | Out for Delivery
//	Out for Delivery -> Delivered
//	Cancelled, Delivered 為終態
type Order struct {
	PartitionKey string    `gorm:"primaryKey;type:varchar(255)" json:"partitionKey"`
	RowKey       string    `gorm:"primaryKey;type:varchar(255)" json:"rowKey"`
	OrderID      int       `gorm:"not null" json:"orderId"`
	CustomerID   string    `gorm:"not null;type:varchar(255)" json:"customerId"`
	ProductID    string    `gorm:"not null;type:varchar(255)" json:"productId"`
	OrderDate    time.Time `gorm:"not null" json:"orderDate"`
	OrderStatus  string    `gorm:"not null;type:varchar(255)" json:"orderStatus"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"null" json:"-"`
}
