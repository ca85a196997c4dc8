package dto

import (
	"time"

	"github.com/natheerjardien/cldvpoe/internal/model"
)

type AddOrderDTO struct {
	CustomerID string    `json:"customerId"`
	ProductID  string    `json:"productId"`
	OrderDate  time.Time `json:"orderDate"`
}

type UpdateOrderDTO struct {
	PartitionKey string    `json:"partitionKey"`
	RowKey       string    `json:"rowKey"`
	CustomerID   string    `json:"customerId"`
	ProductID    string    `json:"productId"`
	OrderDate    time.Time `json:"orderDate"`
	OrderStatus  string    `json:"orderStatus"`
}

func (d UpdateOrderDTO) ToModel() *model.Order {
	return &model.Order{
		PartitionKey: d.PartitionKey,
		RowKey:       d.RowKey,
		CustomerID:   d.CustomerID,
		ProductID:    d.ProductID,
		OrderDate:    d.OrderDate,
		OrderStatus:  d.OrderStatus,
	}
}
