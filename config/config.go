package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv" // 引入這個庫來讀取 .env 檔案
)

// Config 結構體用於儲存應用程式的配置
type Config struct {
	Port   string `env:"PORT" env-default:"5000"`
	AppEnv string `env:"APP_ENV" env-default:"development"`

	MongoDBURI string        `env:"MONGODB_URI" env-default:"mongodb://localhost:27017"`
	DBName     string        `env:"DB_NAME" env-default:"chat_app_db"`
	DBTimeout  time.Duration `env:"DB_TIMEOUT" env-default:"5s"`

	JWTSecret string        `env:"JWT_SECRET" env-required:"true"`
	JWTExpiry time.Duration `env:"JWT_EXPIRY" env-default:"720h"` // 30 天

	// REDIS_ADDR 留空代表不啟用使用者快取
	RedisAddr     string        `env:"REDIS_ADDR" env-default:""`
	RedisPassword string        `env:"REDIS_PASSWORD" env-default:""`
	RedisDB       int           `env:"REDIS_DB" env-default:"0"`
	UserCacheTTL  time.Duration `env:"USER_CACHE_TTL" env-default:"5m"`

	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"http://localhost:3000"`

	// 群組改名、加人、踢人是否只允許管理員操作
	EnforceGroupAdmin bool `env:"ENFORCE_GROUP_ADMIN" env-default:"false"`
}

// LoadConfig 載入配置，優先從環境變數讀取，其次從 .env 檔案讀取
func LoadConfig() (*Config, error) {
	// 嘗試載入 .env 檔案，如果不存在也不會報錯
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction 是否為正式環境
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
