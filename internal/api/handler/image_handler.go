package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/natheerjardien/cldvpoe/internal/service"
	"github.com/natheerjardien/cldvpoe/pkg/api"
)

// ImageHandler 負責serving blob store裡的商品圖
// blob的公開URL指回這個endpoint
type ImageHandler struct {
	productService service.IProductService
}

func NewImageHandler(productService service.IProductService) *ImageHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &ImageHandler{
		productService: productService,
	}
}

// @Summary serve product image blob
// @Tags image
// @Produce octet-stream
// @Router /images/{name} [get]
func (h *ImageHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		api.ErrorJSON(w, http.StatusBadRequest, "image name is required")
		return
	}

	content, contentType, err := h.productService.GetImage(r.Context(), name)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if contentType == "" {
		contentType = http.DetectContentType(content)
	}
	w.Header().Set("Content-Type", contentType)
	w.Write(content)
}
