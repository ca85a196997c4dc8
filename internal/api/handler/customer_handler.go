package handler

import (
	"encoding/json"
	"net/http"

	"github.com/natheerjardien/cldvpoe/internal/api/dto"
	"github.com/natheerjardien/cldvpoe/internal/service"
	"github.com/natheerjardien/cldvpoe/pkg/api"
)

type CustomerHandler struct {
	customerService service.ICustomerService
}

func NewCustomerHandler(customerService service.ICustomerService) *CustomerHandler {
	if customerService == nil {
		panic("customerService cannot be nil")
	}
	return &CustomerHandler{
		customerService: customerService,
	}
}

// @Summary add customer
// @Tags customer
// @Accept json
// @Produce json
// @Router /AddCustomer [post]
func (h *CustomerHandler) AddCustomer(w http.ResponseWriter, r *http.Request) {
	var addDTO dto.AddCustomerDTO
	if err := json.NewDecoder(r.Body).Decode(&addDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid customer data")
		return
	}

	customer := addDTO.ToModel()
	if err := h.customerService.AddCustomer(r.Context(), customer); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusCreated, dto.ConvertCustomerToDTO(*customer))
}

// @Summary get all customers
// @Tags customer
// @Produce json
// @Router /GetAllCustomers [get]
func (h *CustomerHandler) GetAllCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerService.GetAllCustomers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, dto.ConvertCustomersToDTO(customers))
}

// @Summary get customer by partitionKey+rowKey
// @Tags customer
// @Produce json
// @Router /GetCustomer [get]
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	partitionKey := r.URL.Query().Get("partitionKey")
	rowKey := r.URL.Query().Get("rowKey")
	if partitionKey == "" || rowKey == "" {
		api.ErrorJSON(w, http.StatusBadRequest, "partitionKey and rowKey are required")
		return
	}

	customer, err := h.customerService.GetCustomer(r.Context(), partitionKey, rowKey)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, dto.ConvertCustomerToDTO(*customer))
}

// @Summary update customer (full replace)
// @Tags customer
// @Accept json
// @Produce json
// @Router /UpdateCustomer [put]
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var updateDTO dto.UpdateCustomerDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid customer data")
		return
	}

	customer := updateDTO.ToModel()
	ok, err := h.customerService.UpdateCustomer(r.Context(), customer)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, ok)
}

// @Summary delete customer
// @Tags customer
// @Produce json
// @Router /DeleteCustomer [delete]
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	partitionKey := r.URL.Query().Get("partitionKey")
	rowKey := r.URL.Query().Get("rowKey")
	if partitionKey == "" || rowKey == "" {
		api.ErrorJSON(w, http.StatusBadRequest, "partitionKey and rowKey are required")
		return
	}

	if err := h.customerService.DeleteCustomer(r.Context(), partitionKey, rowKey); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, "customer deleted")
}
