package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	domainrepo "Tabitomo-App/internal/domain/repository"
	"Tabitomo-App/internal/domain/service"
	"Tabitomo-App/internal/handler"
	"Tabitomo-App/internal/infrastructure/maps"
	"Tabitomo-App/internal/infrastructure/weather"
	repoImpl "Tabitomo-App/internal/repository"
	"Tabitomo-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	googleMapsAPIKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if googleMapsAPIKey == "" {
		fmt.Println("⚠️  環境変数が設定されていません:")
		fmt.Println("必要な環境変数: GOOGLE_MAPS_API_KEY")
		fmt.Println("\n.envファイルを作成するか、環境変数を設定してください")
		log.Fatal("Environment variables not set")
	}

	fmt.Println("Initializing Google Maps client...")
	routingProvider, err := maps.NewGoogleRoutingProvider(googleMapsAPIKey)
	if err != nil {
		log.Fatalf("Google Mapsクライアント初期化失敗: %v", err)
	}
	placesProvider, err := maps.NewGooglePlacesProvider(googleMapsAPIKey)
	if err != nil {
		log.Fatalf("Google Placesクライアント初期化失敗: %v", err)
	}

	weatherProvider := weather.NewOpenMeteoProvider()

	// Redisは任意。未設定の場合は介入の重複排除なしで動作する
	var interventionCache domainrepo.InterventionCache
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		fmt.Println("Initializing Redis client...")
		redisClient := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		interventionCache = repoImpl.NewRedisInterventionCache(redisClient)
		fmt.Println("✅ Redis intervention cache enabled")
	} else {
		fmt.Println("Warning: REDIS_ADDR not set, intervention dedup disabled")
	}

	optimizeService := service.NewTripOptimizeService(weatherProvider, routingProvider, placesProvider)
	interventionMonitor := service.NewInterventionMonitor(placesProvider)

	optimizeUseCase := usecase.NewPlannerOptimizeUseCase(optimizeService)
	interventionUseCase := usecase.NewInterventionUseCase(interventionMonitor, weatherProvider, interventionCache)

	plannerHandler := handler.NewPlannerHandler(optimizeUseCase, interventionUseCase)

	r := gin.Default()

	// Planner API エンドポイント
	planner := r.Group("/planner")
	{
		planner.POST("/optimize", plannerHandler.PostOptimize)
		planner.POST("/interventions", plannerHandler.PostInterventions)
	}

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "Tabitomo-App"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("Tabitomo-App server starting on :%s...\n", port)
	log.Fatal(r.Run(":" + port))
}
