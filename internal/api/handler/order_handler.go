package handler

import (
	"encoding/json"
	"net/http"

	"github.com/natheerjardien/cldvpoe/internal/api/dto"
	"github.com/natheerjardien/cldvpoe/internal/service"
	"github.com/natheerjardien/cldvpoe/pkg/api"
)

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
	}
}

// @Summary place order
// @Tags order
// @Accept json
// @Produce json
// @Router /AddOrder [post]
func (h *OrderHandler) AddOrder(w http.ResponseWriter, r *http.Request) {
	var addDTO dto.AddOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&addDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid order data")
		return
	}

	order, err := h.orderService.PlaceOrder(r.Context(), addDTO.CustomerID, addDTO.ProductID, addDTO.OrderDate)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusCreated, order)
}

// @Summary get all orders
// @Tags order
// @Produce json
// @Router /GetAllOrders [get]
func (h *OrderHandler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.GetAllOrders(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, orders)
}

// @Summary get order by partitionKey+rowKey
// @Tags order
// @Produce json
// @Router /GetOrder [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	partitionKey := r.URL.Query().Get("partitionKey")
	rowKey := r.URL.Query().Get("rowKey")
	if partitionKey == "" || rowKey == "" {
		api.ErrorJSON(w, http.StatusBadRequest, "partitionKey and rowKey are required")
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), partitionKey, rowKey)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, order)
}

// @Summary update order (full replace)
// @Tags order
// @Accept json
// @Produce json
// @Router /UpdateOrder [put]
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var updateDTO dto.UpdateOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid order data")
		return
	}

	ok, err := h.orderService.UpdateOrder(r.Context(), updateDTO.ToModel())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, ok)
}

// @Summary delete order
// @Tags order
// @Produce json
// @Router /DeleteOrder [delete]
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	partitionKey := r.URL.Query().Get("partitionKey")
	rowKey := r.URL.Query().Get("rowKey")
	if partitionKey == "" || rowKey == "" {
		api.ErrorJSON(w, http.StatusBadRequest, "partitionKey and rowKey are required")
		return
	}

	if err := h.orderService.DeleteOrder(r.Context(), partitionKey, rowKey); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, "order deleted")
}
