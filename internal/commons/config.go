package commons

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"belleza/internal/config"
)

// fileConfig mirrors config.Config with durations as strings so the
// yaml file can say "5m" instead of nanoseconds.
type fileConfig struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		User            string `yaml:"user"`
		Password        string `yaml:"password"`
		Name            string `yaml:"name"`
		MaxOpenConns    int    `yaml:"maxOpenConns"`
		MaxIdleConns    int    `yaml:"maxIdleConns"`
		ConnMaxLifetime string `yaml:"connMaxLifetime"`
	} `yaml:"database"`
	Redis struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Kafka struct {
		Enabled bool     `yaml:"enabled"`
		Brokers []string `yaml:"brokers"`
		Topic   string   `yaml:"topic"`
	} `yaml:"kafka"`
	Auth struct {
		JWTSecret string `yaml:"jwtSecret"`
		TokenTTL  string `yaml:"tokenTTL"`
	} `yaml:"auth"`
	Checkout struct {
		MerchantPhone string `yaml:"merchantPhone"`
		StoreBaseURL  string `yaml:"storeBaseURL"`
	} `yaml:"checkout"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	connMaxLifetime, err := time.ParseDuration(fc.Database.ConnMaxLifetime)
	if err != nil {
		return nil, fmt.Errorf("parsing database.connMaxLifetime: %w", err)
	}

	tokenTTL, err := time.ParseDuration(fc.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("parsing auth.tokenTTL: %w", err)
	}

	return &config.Config{
		Server: config.ServerConfig{
			Port: fc.Server.Port,
		},
		Database: config.DatabaseConfig{
			Host:            fc.Database.Host,
			Port:            fc.Database.Port,
			User:            fc.Database.User,
			Password:        fc.Database.Password,
			Name:            fc.Database.Name,
			MaxOpenConns:    fc.Database.MaxOpenConns,
			MaxIdleConns:    fc.Database.MaxIdleConns,
			ConnMaxLifetime: connMaxLifetime,
		},
		Redis: config.RedisConfig{
			Host:     fc.Redis.Host,
			Port:     fc.Redis.Port,
			Password: fc.Redis.Password,
			DB:       fc.Redis.DB,
		},
		Kafka: config.KafkaConfig{
			Enabled: fc.Kafka.Enabled,
			Brokers: fc.Kafka.Brokers,
			Topic:   fc.Kafka.Topic,
		},
		Auth: config.AuthConfig{
			JWTSecret: fc.Auth.JWTSecret,
			TokenTTL:  tokenTTL,
		},
		Checkout: config.CheckoutConfig{
			MerchantPhone: fc.Checkout.MerchantPhone,
			StoreBaseURL:  fc.Checkout.StoreBaseURL,
		},
		Log: config.LogConfig{
			Level: fc.Log.Level,
		},
	}, nil
}
