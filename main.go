package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatapp/backend/cache"
	"chatapp/backend/config"
	"chatapp/backend/database"
	"chatapp/backend/handlers"
	"chatapp/backend/logger"
	"chatapp/backend/middleware"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors" // 引入 CORS 庫
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	mode := logger.DevelopmentMode
	if cfg.IsProduction() {
		mode = logger.ProductionMode
	}
	appLog, err := logger.New(mode)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLog.Sync()

	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStart()

	mongoDB, err := database.ConnectMongoDB(startCtx, cfg.MongoDBURI, cfg.DBName, cfg.DBTimeout)
	if err != nil {
		appLog.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := mongoDB.EnsureIndexes(startCtx); err != nil {
		appLog.Fatalf("Failed to create indexes: %v", err)
	}
	appLog.Infof("Connected to MongoDB database %s", cfg.DBName)

	users := database.NewUserStore(mongoDB)
	chats := database.NewChatStore(mongoDB)
	messages := database.NewMessageStore(mongoDB)

	// REDIS_ADDR 沒設定時不使用快取
	var userCache database.UserCache
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = cache.NewClient(startCtx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			appLog.Fatalf("Failed to connect to Redis: %v", err)
		}
		userCache = cache.NewUserCache(redisClient, cfg.UserCacheTTL)
		appLog.Infof("User cache enabled at %s", cfg.RedisAddr)
	} else {
		appLog.Warnf("REDIS_ADDR not set, user cache disabled")
	}

	populator := database.NewPopulator(users, messages, chats, userCache, appLog)

	router := mux.NewRouter()

	handlers.RegisterRoutes(router, handlers.Routes{
		Users: &handlers.UserHandler{
			Users:     users,
			JWTSecret: cfg.JWTSecret,
			JWTExpiry: cfg.JWTExpiry,
			Log:       appLog,
		},
		Chats: &handlers.ChatHandler{
			Chats:             chats,
			Populator:         populator,
			Log:               appLog,
			EnforceGroupAdmin: cfg.EnforceGroupAdmin,
		},
		Messages: &handlers.MessageHandler{
			Messages:  messages,
			Chats:     chats,
			Populator: populator,
			Log:       appLog,
		},
		Auth: middleware.JWTMiddleware(cfg.JWTSecret, users, appLog),
	})

	// 設置 CORS 中介軟體
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", middleware.RequestIDHeader},
		AllowCredentials: true,
	})

	// 存取紀錄包住整個 router，找不到路由的請求也會記錄
	handler := middleware.RequestIDMiddleware(middleware.LoggingMiddleware(appLog)(router))

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         serverAddr,
		Handler:      c.Handler(handler),
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		appLog.Infof("Server starting on %s", serverAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			// 如果錯誤不是因為主動關閉伺服器，就記錄錯誤並結束程式
			appLog.Fatalf("Could not listen on %s: %v", serverAddr, err)
		}
	}()

	//當按下 Ctrl+C，程式會收到 SIGINT
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	appLog.Infof("Received signal %s, shutting down server...", sig)

	//最多等30秒關閉，避免資料損壞，請求中斷
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLog.Errorf("Server forced to shutdown: %v", err)
	}
	if err := mongoDB.DisconnectMongoDB(ctx); err != nil {
		appLog.Errorf("Failed to disconnect MongoDB: %v", err)
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			appLog.Errorf("Failed to close Redis: %v", err)
		}
	}

	appLog.Infof("Server exited gracefully.")
}
