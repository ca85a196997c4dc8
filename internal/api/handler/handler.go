package handler

import (
	"errors"
	"net/http"

	"github.com/natheerjardien/cldvpoe/internal/infra/repository/redis_repo"
	"github.com/natheerjardien/cldvpoe/internal/service"
	"github.com/natheerjardien/cldvpoe/pkg/api"
)

// writeServiceError 統一service error到HTTP status的對應
// 500不回傳內部錯誤訊息給caller
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingField),
		errors.Is(err, service.ErrKeysNotSet):
		api.ErrorJSON(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrCustomerNotExist),
		errors.Is(err, service.ErrProductNotExist),
		errors.Is(err, service.ErrOrderNotExist),
		errors.Is(err, redis_repo.ErrBlobNotFound):
		api.ErrorJSON(w, http.StatusNotFound, err.Error())
	default:
		api.ErrorJSON(w, http.StatusInternalServerError, "internal server error")
	}
}
