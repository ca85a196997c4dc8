package api

import "github.com/natheerjardien/cldvpoe/internal/api/handler"

type Server struct {
	CustomerHandler *handler.CustomerHandler
	ProductHandler  *handler.ProductHandler
	OrderHandler    *handler.OrderHandler
	FileHandler     *handler.FileHandler
	ImageHandler    *handler.ImageHandler
}

func NewServer(
	customerHandler *handler.CustomerHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	fileHandler *handler.FileHandler,
	imageHandler *handler.ImageHandler,
) *Server {
	return &Server{
		CustomerHandler: customerHandler,
		ProductHandler:  productHandler,
		OrderHandler:    orderHandler,
		FileHandler:     fileHandler,
		ImageHandler:    imageHandler,
	}
}
