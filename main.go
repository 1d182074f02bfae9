package main

import (
	"log"
	"os"

	"github.com/SujayCh07/codelinc10-sub000/db"
	"github.com/SujayCh07/codelinc10-sub000/handlers"
	"github.com/SujayCh07/codelinc10-sub000/kafka"
	"github.com/SujayCh07/codelinc10-sub000/logger"
	"github.com/SujayCh07/codelinc10-sub000/middleware"
	"github.com/SujayCh07/codelinc10-sub000/mongodb"
	"github.com/SujayCh07/codelinc10-sub000/qdrant"
	"github.com/SujayCh07/codelinc10-sub000/worker"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	development := os.Getenv("ENV") != "production"
	if err := logger.Init(development, logger.LogLevel(os.Getenv("LOG_LEVEL"))); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

func main() {
	defer logger.Sync()

	router := gin.Default()
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"}) // Only trust local proxies
	router.Use(middleware.CorsMiddleware)

	// Initialize datastores
	if err := db.InitDB(); err != nil {
		logger.Get().Fatal("failed to initialize Postgres", zap.Error(err))
	}
	defer db.CloseDB()

	if err := mongodb.InitMongoDB(); err != nil {
		logger.Get().Fatal("failed to initialize MongoDB", zap.Error(err))
	}
	defer mongodb.CloseMongoDB()

	// Qdrant is optional: without it insights simply skip personalized
	// resources.
	if err := qdrant.InitQdrantClient(); err != nil {
		logger.Get().Warn("Qdrant unavailable, personalized resources disabled", zap.Error(err))
	} else {
		defer qdrant.CloseQdrantClient()
	}

	// Enrichment pipeline: worker pool consumes merged responses. Kafka is
	// optional; without it enrichment falls back to direct model calls.
	pool := worker.NewWorkerPool(4)
	pool.Start()
	defer pool.Stop()

	if os.Getenv("KAFKA_BOOTSTRAP_SERVERS") != "" {
		if err := kafka.InitProducer(); err != nil {
			logger.Get().Warn("Kafka producer unavailable", zap.Error(err))
		}
		if err := kafka.StartKafkaConsumer(pool); err != nil {
			logger.Get().Warn("Kafka consumer unavailable", zap.Error(err))
		}
	}

	// API routes
	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware)
	{
		api.POST("/profile", handlers.CreateProfile)
		api.GET("/profile", handlers.GetProfile)
		api.PUT("/profile/answer", handlers.UpdateProfileAnswer)
		api.DELETE("/profile", handlers.DeleteProfile)

		api.GET("/quiz/questions", handlers.GetQuestions)

		api.POST("/insights/generate", handlers.GenerateInsights)
		api.GET("/insights", handlers.GetInsights)

		api.POST("/chat/message", handlers.SendChatMessage)
		api.GET("/chat/history", handlers.GetChatHistory)
		api.DELETE("/chat/history", handlers.ClearChatHistory)

		api.DELETE("/account", handlers.HandleDeleteAccount)

		api.GET("/ws", handlers.HandleWebSocket)
	}

	// SSE authenticates via query token since EventSource can't set headers
	router.GET("/sse/:userID", handlers.HandleSSE)

	// Internal endpoints
	internal := router.Group("/internal")
	internal.Use(middleware.MicroserviceAuthMiddleware)
	{
		internal.GET("/metrics/worker", gin.WrapF(pool.MetricsHandler))
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Get().Info("server starting", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Get().Fatal("failed to start server", zap.Error(err))
	}
}
