package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/natheerjardien/cldvpoe/internal/model"
	"github.com/natheerjardien/cldvpoe/internal/service"
	"github.com/natheerjardien/cldvpoe/pkg/api"
	"github.com/shopspring/decimal"
)

const maxMultipartMemory = 32 << 20 // 32MB

type ProductHandler struct {
	productService service.IProductService
}

func NewProductHandler(productService service.IProductService) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &ProductHandler{
		productService: productService,
	}
}

// @Summary add product
// @Tags product
// @Accept json
// @Produce json
// @Router /AddProduct [post]
func (h *ProductHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var product model.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid product data")
		return
	}

	if err := h.productService.AddProduct(r.Context(), &product, nil); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusCreated, product)
}

// @Summary get all products
// @Tags product
// @Produce json
// @Router /GetAllProducts [get]
func (h *ProductHandler) GetAllProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.GetAllProducts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, products)
}

// @Summary get product by partitionKey+rowKey
// @Tags product
// @Produce json
// @Router /GetProduct [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	partitionKey := r.URL.Query().Get("partitionKey")
	rowKey := r.URL.Query().Get("rowKey")
	if partitionKey == "" || rowKey == "" {
		api.ErrorJSON(w, http.StatusBadRequest, "partitionKey and rowKey are required")
		return
	}

	product, err := h.productService.GetProduct(r.Context(), partitionKey, rowKey)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, product)
}

// @Summary update product (multipart, optional image file)
// @Tags product
// @Accept mpfd
// @Produce json
// @Router /UpdateProduct [put]
//
// multipart欄位逐一明確解析, 不做runtime property binding
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	product := model.Product{
		PartitionKey:       r.FormValue("partitionKey"),
		RowKey:             r.FormValue("rowKey"),
		ProductName:        r.FormValue("productName"),
		Description:        r.FormValue("description"),
		Category:           r.FormValue("category"),
		AvailabilityStatus: r.FormValue("availabilityStatus"),
		ImageURL:           r.FormValue("imageUrl"),
	}

	if v := r.FormValue("price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			api.ErrorJSON(w, http.StatusBadRequest, "invalid price")
			return
		}
		product.Price = price
	}
	if v := r.FormValue("productId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			api.ErrorJSON(w, http.StatusBadRequest, "invalid productId")
			return
		}
		product.ProductID = id
	}

	image, err := readImageFile(r)
	if err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "cannot read image file")
		return
	}

	ok, err := h.productService.UpdateProduct(r.Context(), &product, image)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, ok)
}

// @Summary delete product (and its image blob)
// @Tags product
// @Produce json
// @Router /DeleteProduct [delete]
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	partitionKey := r.URL.Query().Get("partitionKey")
	rowKey := r.URL.Query().Get("rowKey")
	if partitionKey == "" || rowKey == "" {
		api.ErrorJSON(w, http.StatusBadRequest, "partitionKey and rowKey are required")
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), partitionKey, rowKey); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, http.StatusOK, "product deleted")
}

// readImageFile 讀取選填的imageFile欄位, 沒附檔回傳nil
func readImageFile(r *http.Request) (*service.ImageUpload, error) {
	file, header, err := r.FormFile("imageFile")
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(content)
	}

	return &service.ImageUpload{
		FileName:    header.Filename,
		ContentType: contentType,
		Content:     content,
	}, nil
}
