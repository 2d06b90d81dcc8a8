package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"storepos-backend/config"
	"storepos-backend/routes"
	"storepos-backend/services"
	"storepos-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	logger, err := config.NewLogger()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.ConnectDB()
	if err != nil {
		logger.Fatalw("Failed to connect database", "error", err)
	}

	var quota int64
	if env := os.Getenv("STORE_QUOTA_BYTES"); env != "" {
		if q, err := strconv.ParseInt(env, 10, 64); err == nil {
			quota = q
		}
	}
	kv := store.NewKV(db, quota)

	storeName := os.Getenv("STORE_NAME")
	if storeName == "" {
		storeName = "Krushna's Store"
	}

	ledger, err := services.NewLedger(kv, storeName)
	if err != nil {
		logger.Fatalw("Failed to load ledger state", "error", err)
	}

	services.NewLowStockService(ledger, logger).StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(ledger, logger)
	printRoutes(r)
	if err := r.Run(":" + port); err != nil {
		logger.Fatalw("Server stopped", "error", err)
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
