package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	YouTube   YouTubeConfig   `yaml:"youtube"`
	Database  DatabaseConfig  `yaml:"database"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
	Discovery DiscoveryConfig `yaml:"discovery"`
	Sync      SyncConfig      `yaml:"sync"`
	Webhook   WebhookConfig   `yaml:"webhook"`
	Server    ServerConfig    `yaml:"server"`
	CronSecret string         `yaml:"cron_secret"`
	LogLevel   string         `yaml:"log_level"`
}

type YouTubeConfig struct {
	APIKey          string        `yaml:"api_key"`
	BaseURL         string        `yaml:"base_url"`
	DailyQuotaLimit int           `yaml:"daily_quota_limit"`
	Timeout         time.Duration `yaml:"timeout"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type DiscoveryConfig struct {
	Keywords       []string `yaml:"keywords"`
	MaxSearchPages int      `yaml:"max_search_pages"`
}

type SyncConfig struct {
	BatchSize     int           `yaml:"batch_size"`
	BatchCooldown time.Duration `yaml:"batch_cooldown"`
	RetentionDays int           `yaml:"retention_days"`
	Interval      time.Duration `yaml:"interval"`
}

type WebhookConfig struct {
	HubSecret        string `yaml:"hub_secret"`
	BrokerCurrentKey string `yaml:"broker_current_key"`
	BrokerNextKey    string `yaml:"broker_next_key"`
	QueueSize        int    `yaml:"queue_size"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate enforces the settings the process cannot start without.
func (c *Config) Validate() error {
	if c.YouTube.APIKey == "" {
		return errors.New("youtube.api_key is required")
	}
	if c.Database.Host == "" || c.Database.User == "" || c.Database.DBName == "" {
		return errors.New("database host, user and dbname are required")
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.YouTube.DailyQuotaLimit == 0 {
		c.YouTube.DailyQuotaLimit = 10000
	}
	if c.YouTube.Timeout == 0 {
		c.YouTube.Timeout = 30 * time.Second
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "require"
	}
	if len(c.Discovery.Keywords) == 0 {
		c.Discovery.Keywords = []string{
			"Hololive 翻譯", "Hololive 烤肉", "Hololive 剪輯",
			"ホロライブ 翻譯", "ホロライブ 烤肉", "ホロライブ 剪輯",
		}
	}
	if c.Discovery.MaxSearchPages == 0 {
		c.Discovery.MaxSearchPages = 2
	}
	if c.Sync.BatchSize == 0 {
		c.Sync.BatchSize = 10
	}
	if c.Sync.BatchCooldown == 0 {
		c.Sync.BatchCooldown = time.Second
	}
	if c.Sync.RetentionDays == 0 {
		c.Sync.RetentionDays = 180
	}
	if c.Webhook.QueueSize == 0 {
		c.Webhook.QueueSize = 128
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
