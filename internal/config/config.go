package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Redis   RedisConfig
	OpenTDB OpenTDBConfig
	Seed    SeedConfig
	Logger  LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// StorageConfig selects the key-value backend for all persisted state.
// Backend is one of "file", "redis" or "memory".
type StorageConfig struct {
	Backend string
	Path    string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type OpenTDBConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SeedConfig struct {
	Enabled        bool
	Target         int
	MaxExtraRounds int
}

type LoggerConfig struct {
	Level string
	Env   string
}

func setDefaults() {
	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 10)
	viper.SetDefault("server.write_timeout", 10)
	viper.SetDefault("storage.backend", "file")
	viper.SetDefault("storage.path", "trivia-hub.json")
	viper.SetDefault("redis.address", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("opentdb.base_url", "https://opentdb.com")
	viper.SetDefault("opentdb.timeout", 15)
	viper.SetDefault("seed.enabled", true)
	viper.SetDefault("seed.target", 20)
	viper.SetDefault("seed.max_extra_rounds", 3)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine, the defaults cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Storage: StorageConfig{
			Backend: viper.GetString("storage.backend"),
			Path:    viper.GetString("storage.path"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		OpenTDB: OpenTDBConfig{
			BaseURL: viper.GetString("opentdb.base_url"),
			Timeout: viper.GetDuration("opentdb.timeout") * time.Second,
		},
		Seed: SeedConfig{
			Enabled:        viper.GetBool("seed.enabled"),
			Target:         viper.GetInt("seed.target"),
			MaxExtraRounds: viper.GetInt("seed.max_extra_rounds"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
	}

	// Override with environment variables if set
	if backend := os.Getenv("STORAGE_BACKEND"); backend != "" {
		config.Storage.Backend = backend
	}
	if path := os.Getenv("STORAGE_PATH"); path != "" {
		config.Storage.Path = path
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if baseURL := os.Getenv("OPENTDB_BASE_URL"); baseURL != "" {
		config.OpenTDB.BaseURL = baseURL
	}

	return config, nil
}
