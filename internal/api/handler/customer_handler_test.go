package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/natheerjardien/cldvpoe/internal/constants"
	"github.com/natheerjardien/cldvpoe/internal/model"
	"github.com/natheerjardien/cldvpoe/internal/service"
	"github.com/stretchr/testify/require"
)

// fakeCustomerService 固定回傳預設的結果, 測handler的decode/status mapping
type fakeCustomerService struct {
	customers map[string]model.Customer
}

func newFakeCustomerService() *fakeCustomerService {
	return &fakeCustomerService{customers: make(map[string]model.Customer)}
}

func (f *fakeCustomerService) AddCustomer(ctx context.Context, customer *model.Customer) error {
	if customer.FirstName == "" {
		return service.ErrMissingField
	}
	customer.PartitionKey = constants.CustomerPartition
	customer.RowKey = "row-1"
	customer.CustomerID = customer.RowKey
	customer.PasswordHash = "hashed"
	customer.Password = ""
	f.customers[customer.RowKey] = *customer
	return nil
}

func (f *fakeCustomerService) GetCustomer(ctx context.Context, partitionKey, rowKey string) (*model.Customer, error) {
	customer, ok := f.customers[rowKey]
	if !ok {
		return nil, service.ErrCustomerNotExist
	}
	return &customer, nil
}

func (f *fakeCustomerService) GetAllCustomers(ctx context.Context) ([]model.Customer, error) {
	result := make([]model.Customer, 0, len(f.customers))
	for _, customer := range f.customers {
		result = append(result, customer)
	}
	return result, nil
}

func (f *fakeCustomerService) UpdateCustomer(ctx context.Context, customer *model.Customer) (bool, error) {
	if customer.PartitionKey == "" || customer.RowKey == "" {
		return false, service.ErrKeysNotSet
	}
	if _, ok := f.customers[customer.RowKey]; !ok {
		return false, service.ErrCustomerNotExist
	}
	f.customers[customer.RowKey] = *customer
	return true, nil
}

func (f *fakeCustomerService) DeleteCustomer(ctx context.Context, partitionKey, rowKey string) error {
	delete(f.customers, rowKey)
	return nil
}

func TestAddCustomerHandler(t *testing.T) {
	fake := newFakeCustomerService()
	h := NewCustomerHandler(fake)

	body := `{"firstName":"Thabo","lastName":"Nkosi","email":"thabo@example.com","contact":"0821234567","password":"pw"}`
	req := httptest.NewRequest(http.MethodPost, "/AddCustomer", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.AddCustomer(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp struct {
		Data  map[string]interface{} `json:"data"`
		Error string                 `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Empty(t, resp.Error)
	require.Equal(t, "Thabo", resp.Data["firstName"])
	require.Equal(t, "row-1", resp.Data["rowKey"])

	// response裡不能有密碼相關欄位
	_, hasPassword := resp.Data["password"]
	_, hasHash := resp.Data["passwordHash"]
	require.False(t, hasPassword)
	require.False(t, hasHash)
}

func TestAddCustomerHandlerBadJSON(t *testing.T) {
	h := NewCustomerHandler(newFakeCustomerService())

	req := httptest.NewRequest(http.MethodPost, "/AddCustomer", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.AddCustomer(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddCustomerHandlerMissingField(t *testing.T) {
	h := NewCustomerHandler(newFakeCustomerService())

	req := httptest.NewRequest(http.MethodPost, "/AddCustomer", strings.NewReader(`{"lastName":"Nkosi"}`))
	rec := httptest.NewRecorder()

	h.AddCustomer(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCustomerHandler(t *testing.T) {
	fake := newFakeCustomerService()
	h := NewCustomerHandler(fake)

	fake.customers["row-1"] = model.Customer{
		PartitionKey: constants.CustomerPartition,
		RowKey:       "row-1",
		CustomerID:   "row-1",
		FirstName:    "Thabo",
	}

	req := httptest.NewRequest(http.MethodGet, "/GetCustomer?partitionKey=CustomersPartition&rowKey=row-1", nil)
	rec := httptest.NewRecorder()

	h.GetCustomer(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetCustomerHandlerMissingKeys(t *testing.T) {
	h := NewCustomerHandler(newFakeCustomerService())

	req := httptest.NewRequest(http.MethodGet, "/GetCustomer?partitionKey=CustomersPartition", nil)
	rec := httptest.NewRecorder()

	h.GetCustomer(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCustomerHandlerNotFound(t *testing.T) {
	h := NewCustomerHandler(newFakeCustomerService())

	req := httptest.NewRequest(http.MethodGet, "/GetCustomer?partitionKey=CustomersPartition&rowKey=missing", nil)
	rec := httptest.NewRecorder()

	h.GetCustomer(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateCustomerHandlerNoKeys(t *testing.T) {
	h := NewCustomerHandler(newFakeCustomerService())

	req := httptest.NewRequest(http.MethodPut, "/UpdateCustomer", strings.NewReader(`{"firstName":"Thabo"}`))
	rec := httptest.NewRecorder()

	h.UpdateCustomer(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
