package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-inventory-orders/internal/handler"
	"go-inventory-orders/internal/model"
	"go-inventory-orders/internal/repository"
	"go-inventory-orders/internal/repository/memory"
	"go-inventory-orders/internal/service"
	"go-inventory-orders/internal/ws"
	"go-inventory-orders/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Warn(".env file not found")
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	// 2. Setup Storage
	var store repository.Store
	if os.Getenv("STORAGE_DRIVER") == "memory" {
		log.Info("using in-memory storage")
		store = memory.NewStore()
	} else {
		db := database.ConnectDB()
		// Auto migrate (use a dedicated migration tool in production)
		db.AutoMigrate(&model.Product{}, &model.Order{}, &model.OrderItem{})
		store = repository.NewStore(db)
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	catalogService := service.NewCatalogService(store, wsHub)
	orderService := service.NewOrderService(store, wsHub)

	productHandler := handler.NewProductHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Inventory Order Backend v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api")

	api.Post("/products", productHandler.CreateProduct)
	api.Get("/products", productHandler.GetProducts)
	api.Get("/products/low-stock", productHandler.GetLowStock)

	api.Post("/orders", orderHandler.CreateOrder)
	api.Get("/orders", orderHandler.GetOrders)
	api.Get("/orders/summary", orderHandler.GetSummary)
	api.Put("/orders/:id/status", orderHandler.UpdateStatus)

	api.Get("/dashboard/stats", productHandler.GetStats)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server exited")
}
