package model

import "time"

// Customer 對應table storage的Customers表
// PartitionKey+RowKey為唯一鍵, CustomerID只是RowKey的顯示欄位
type Customer struct {
	PartitionKey string `gorm:"primaryKey;type:varchar(255)" json:"partitionKey"`
	RowKey       string `gorm:"primaryKey;type:varchar(255)" json:"rowKey"`
	CustomerID   string `gorm:"not null;type:varchar(255)" json:"customerId"`
	FirstName    string `gorm:"not null;type:varchar(255)" json:"firstName"`
	LastName     string `gorm:"not null;type:varchar(255)" json:"lastName"`
	Email        string `gorm:"not null;type:varchar(255)" json:"email"`
	Contact      string `gorm:"not null;type:varchar(255)" json:"contact"`

	// Password 只做輸入用, 不落地。落地的只有bcrypt hash
	Password     string `gorm:"-" json:"password,omitempty"`
	PasswordHash string `gorm:"not null;type:varchar(255)" json:"-"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"null" json:"-"`
}
