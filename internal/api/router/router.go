package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/natheerjardien/cldvpoe/internal/api"
	m "github.com/natheerjardien/cldvpoe/internal/api/middleware"
	"github.com/rs/zerolog"
)

func SetupRouter(server *api.Server, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)

	// 路由名稱沿用functions版的endpoint
	r.Post("/AddCustomer", server.CustomerHandler.AddCustomer)
	r.Get("/GetAllCustomers", server.CustomerHandler.GetAllCustomers)
	r.Get("/GetCustomer", server.CustomerHandler.GetCustomer)
	r.Put("/UpdateCustomer", server.CustomerHandler.UpdateCustomer)
	r.Delete("/DeleteCustomer", server.CustomerHandler.DeleteCustomer)

	r.Post("/AddProduct", server.ProductHandler.AddProduct)
	r.Get("/GetAllProducts", server.ProductHandler.GetAllProducts)
	r.Get("/GetProduct", server.ProductHandler.GetProduct)
	r.Put("/UpdateProduct", server.ProductHandler.UpdateProduct)
	r.Delete("/DeleteProduct", server.ProductHandler.DeleteProduct)

	r.Post("/AddOrder", server.OrderHandler.AddOrder)
	r.Get("/GetAllOrders", server.OrderHandler.GetAllOrders)
	r.Get("/GetOrder", server.OrderHandler.GetOrder)
	r.Put("/UpdateOrder", server.OrderHandler.UpdateOrder)
	r.Delete("/DeleteOrder", server.OrderHandler.DeleteOrder)

	r.Route("/files", func(r chi.Router) {
		r.Post("/upload", server.FileHandler.UploadFile)
		r.Get("/", server.FileHandler.ListFiles)
		r.Get("/download", server.FileHandler.DownloadFile)
	})

	r.Get("/images/{name}", server.ImageHandler.GetImage)

	// 在設置完所有路由後打印路由樹
	fmt.Println(chi.Walk(r, func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		fmt.Printf("%s %s\n", method, route)
		return nil
	}))
	return r
}
