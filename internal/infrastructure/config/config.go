package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 應用配置
type Config struct {
	App         AppConfig         `mapstructure:"app"`
	Server      ServerConfig      `mapstructure:"server"`
	Spoonacular SpoonacularConfig `mapstructure:"spoonacular"`
	Cache       CacheConfig       `mapstructure:"cache"`
	Storage     StorageConfig     `mapstructure:"storage"`
	RateLimit   RateLimitConfig   `mapstructure:"rate_limit"`
	DedupWindow time.Duration     `mapstructure:"dedup_window"`
	LogLevel    string            `mapstructure:"log_level"`
	LogFile     string            `mapstructure:"log_file"`
}

// AppConfig 應用程式設定
type AppConfig struct {
	Env     string `mapstructure:"env"`
	Debug   bool   `mapstructure:"debug"`
	Version string `mapstructure:"version"`
	Name    string `mapstructure:"name"`
}

// ServerConfig 服務器配置
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
}

// SpoonacularConfig 外部食譜來源設定
// APIKey 僅用於啟動時預先寫入憑證儲存，實際請求一律使用儲存中的憑證
type SpoonacularConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CacheConfig 搜尋結果快取配置
type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	MaxSize         int           `mapstructure:"max_size"`
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// StorageConfig 本地狀態儲存設定
type StorageConfig struct {
	Driver        string `mapstructure:"driver"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
}

// RateLimitConfig 速率限制配置
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

const (
	StorageDriverMemory = "memory"
	StorageDriverRedis  = "redis"
)

// LoadConfig 載入設定
func LoadConfig() (*Config, error) {
	// .env 不存在時直接使用環境變數與預設值
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 綁定環境變量
	v.BindEnv("spoonacular.api_key", "SPOONACULAR_API_KEY")
	v.BindEnv("spoonacular.base_url", "SPOONACULAR_BASE_URL")
	v.BindEnv("server.port", "PORT")
	v.BindEnv("cache.enabled", "CACHE_ENABLED")
	v.BindEnv("storage.driver", "STORAGE_DRIVER")
	v.BindEnv("storage.redis_addr", "REDIS_ADDR")
	v.BindEnv("storage.redis_password", "REDIS_PASSWORD")
	v.BindEnv("storage.redis_db", "REDIS_DB")
	v.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	v.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	v.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	v.BindEnv("dedup_window", "DEDUP_WINDOW")
	v.BindEnv("log_level", "LOG_LEVEL")
	v.BindEnv("log_file", "LOG_FILE")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.Storage.Driver = strings.ToLower(strings.TrimSpace(config.Storage.Driver))

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// MaskAPIKey 遮罩 API Key，只顯示前後各 4 個字符
func MaskAPIKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// setDefaults 設定預設值
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.name", "recipe-planner")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.max_body_bytes", 1<<20)

	v.SetDefault("spoonacular.base_url", "https://api.spoonacular.com")
	v.SetDefault("spoonacular.api_key", "")
	v.SetDefault("spoonacular.timeout", "15s")

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.max_size", 500)
	v.SetDefault("cache.ttl", "1h")
	v.SetDefault("cache.cleanup_interval", "10m")

	v.SetDefault("storage.driver", StorageDriverMemory)
	v.SetDefault("storage.redis_addr", "localhost:6379")
	v.SetDefault("storage.redis_password", "")
	v.SetDefault("storage.redis_db", 0)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests", 100)
	v.SetDefault("rate_limit.window", "1m")

	v.SetDefault("dedup_window", "1s")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "logs/app.log")
}

// validateConfig 驗證設定
func validateConfig(config *Config) error {
	if config.Server.Port <= 0 {
		return fmt.Errorf("server port is required")
	}

	if strings.TrimSpace(config.Spoonacular.BaseURL) == "" {
		return fmt.Errorf("spoonacular base url is required")
	}
	if config.Spoonacular.Timeout <= 0 {
		return fmt.Errorf("invalid spoonacular timeout")
	}

	if config.Cache.Enabled {
		if config.Cache.MaxSize <= 0 {
			return fmt.Errorf("invalid cache max size")
		}
		if config.Cache.TTL <= 0 {
			return fmt.Errorf("invalid cache ttl")
		}
		if config.Cache.CleanupInterval <= 0 {
			return fmt.Errorf("invalid cache cleanup interval")
		}
	}

	switch config.Storage.Driver {
	case StorageDriverMemory:
	case StorageDriverRedis:
		if config.Storage.RedisAddr == "" {
			return fmt.Errorf("redis address is required for redis storage")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}

	if config.RateLimit.Enabled {
		if config.RateLimit.Requests <= 0 || config.RateLimit.Window <= 0 {
			return fmt.Errorf("invalid rate limit settings")
		}
	}

	return nil
}
