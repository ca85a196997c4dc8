package dto

import "github.com/natheerjardien/cldvpoe/internal/model"

type AddCustomerDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Contact   string `json:"contact"`
	Password  string `json:"password"`
}

type UpdateCustomerDTO struct {
	PartitionKey string `json:"partitionKey"`
	RowKey       string `json:"rowKey"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Contact      string `json:"contact"`
	// Password 選填, 有值才會重設
	Password string `json:"password,omitempty"`
}

type CustomerDTO struct {
	PartitionKey string `json:"partitionKey"`
	RowKey       string `json:"rowKey"`
	CustomerID   string `json:"customerId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Contact      string `json:"contact"`
}

func (d AddCustomerDTO) ToModel() *model.Customer {
	return &model.Customer{
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Contact:   d.Contact,
		Password:  d.Password,
	}
}

func (d UpdateCustomerDTO) ToModel() *model.Customer {
	return &model.Customer{
		PartitionKey: d.PartitionKey,
		RowKey:       d.RowKey,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		Contact:      d.Contact,
		Password:     d.Password,
	}
}

// ConvertCustomerToDTO 將 Customer model 轉換為 DTO, hash不外洩
func ConvertCustomerToDTO(m model.Customer) CustomerDTO {
	return CustomerDTO{
		PartitionKey: m.PartitionKey,
		RowKey:       m.RowKey,
		CustomerID:   m.CustomerID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		Contact:      m.Contact,
	}
}

func ConvertCustomersToDTO(ms []model.Customer) []CustomerDTO {
	dtos := make([]CustomerDTO, 0, len(ms))
	for _, m := range ms {
		dtos = append(dtos, ConvertCustomerToDTO(m))
	}
	return dtos
}
