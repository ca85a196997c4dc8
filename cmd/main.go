package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/natheerjardien/cldvpoe/internal/api"
	"github.com/natheerjardien/cldvpoe/internal/api/handler"
	"github.com/natheerjardien/cldvpoe/internal/api/router"
	"github.com/natheerjardien/cldvpoe/internal/appcontext"
	"github.com/natheerjardien/cldvpoe/internal/config"
)

// @title cldvpoe storage api
// @version 1.0
// @description 零售商店後端 顧客/商品/訂單 與檔案儲存服務

// @host      localhost:8080
// @BasePath  /

func main() {
	app, err := appcontext.NewApplicationContext(config.GetConfig())
	if err != nil {
		log.Fatal(err)
		return
	}

	// 初始化 handler
	customerHandler := handler.NewCustomerHandler(app.CustomerService)
	productHandler := handler.NewProductHandler(app.ProductService)
	orderHandler := handler.NewOrderHandler(app.OrderService)
	fileHandler := handler.NewFileHandler(app.FileService)
	imageHandler := handler.NewImageHandler(app.ProductService)

	server := api.NewServer(customerHandler, productHandler, orderHandler, fileHandler, imageHandler)

	// 設置路由
	r := router.SetupRouter(server, &app.Logger)

	// 設定服務器參數
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", app.Cf.ServerPort),
		Handler: r,
	}

	// 設置訊號監聽
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutDonwCompleted := make(chan struct{}, 1)
	// 監聽退出訊號
	go func() {
		<-sigChan
		log.Println("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}

		if err := app.Shutdown(shutdownCtx); err != nil {
			log.Printf("Application shutdown error: %v", err)
		}

		shutDonwCompleted <- struct{}{}
	}()

	// 啟動服務
	log.Printf("Server starting on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal(err)
	}
	<-shutDonwCompleted
	log.Printf("closed completed")
}
