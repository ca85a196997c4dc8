package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/natheerjardien/cldvpoe/internal/constants"
	"github.com/natheerjardien/cldvpoe/internal/infra/repository/db"
	"github.com/natheerjardien/cldvpoe/internal/model"
	"golang.org/x/crypto/bcrypt"
)

type ICustomerService interface {
	AddCustomer(ctx context.Context, customer *model.Customer) error
	GetCustomer(ctx context.Context, partitionKey, rowKey string) (*model.Customer, error)
	GetAllCustomers(ctx context.Context) ([]model.Customer, error)
	UpdateCustomer(ctx context.Context, customer *model.Customer) (bool, error)
	DeleteCustomer(ctx context.Context, partitionKey, rowKey string) error
}

type CustomerService struct {
	customerRepo db.ICustomerRepository
}

func NewCustomerService(customerRepo db.ICustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// AddCustomer 新增客戶
// server端產生RowKey, CustomerID只是RowKey的顯示欄位
// 密碼只存bcrypt hash
func (s *CustomerService) AddCustomer(ctx context.Context, customer *model.Customer) error {
	if err := validateCustomer(customer); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(customer.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	customer.PartitionKey = constants.CustomerPartition
	customer.RowKey = uuid.New().String()
	customer.CustomerID = customer.RowKey
	customer.PasswordHash = string(hash)
	customer.Password = ""

	return s.customerRepo.CreateCustomer(ctx, customer)
}

func (s *CustomerService) GetCustomer(ctx context.Context, partitionKey, rowKey string) (*model.Customer, error) {
	customer, err := s.customerRepo.GetCustomer(ctx, partitionKey, rowKey)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotExist
	}
	return customer, nil
}

func (s *CustomerService) GetAllCustomers(ctx context.Context) ([]model.Customer, error) {
	return s.customerRepo.GetAllCustomers(ctx)
}

// UpdateCustomer 整筆覆寫
// 密碼欄位有值就重新hash, 沒值就沿用原hash (需要先讀一次)
func (s *CustomerService) UpdateCustomer(ctx context.Context, customer *model.Customer) (bool, error) {
	if customer.PartitionKey == "" || customer.RowKey == "" {
		return false, ErrKeysNotSet
	}

	existing, err := s.customerRepo.GetCustomer(ctx, customer.PartitionKey, customer.RowKey)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, ErrCustomerNotExist
	}

	if customer.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(customer.Password), bcrypt.DefaultCost)
		if err != nil {
			return false, err
		}
		customer.PasswordHash = string(hash)
		customer.Password = ""
	} else {
		customer.PasswordHash = existing.PasswordHash
	}
	customer.CustomerID = customer.RowKey
	customer.CreatedAt = existing.CreatedAt

	if err := s.customerRepo.UpdateCustomer(ctx, customer); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteCustomer 冪等, 已刪除再刪不報錯
func (s *CustomerService) DeleteCustomer(ctx context.Context, partitionKey, rowKey string) error {
	return s.customerRepo.DeleteCustomer(ctx, partitionKey, rowKey)
}

func validateCustomer(customer *model.Customer) error {
	switch {
	case customer.FirstName == "":
		return fmt.Errorf("%w: firstName", ErrMissingField)
	case customer.LastName == "":
		return fmt.Errorf("%w: lastName", ErrMissingField)
	case customer.Email == "":
		return fmt.Errorf("%w: email", ErrMissingField)
	case customer.Contact == "":
		return fmt.Errorf("%w: contact", ErrMissingField)
	case customer.Password == "":
		return fmt.Errorf("%w: password", ErrMissingField)
	}
	return nil
}

var _ ICustomerService = (*CustomerService)(nil)
