package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Cluster  ClusterConfig
	Dataset  DatasetConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	BlackspotCacheTTL time.Duration
	StatsCacheTTL     time.Duration
}

// ClusterConfig carries the default blackspot clustering parameters used when
// a request does not override them.
type ClusterConfig struct {
	DefaultEpsKm      float64
	DefaultMinSamples int
}

// DatasetConfig configures the ingest CLI.
type DatasetConfig struct {
	SourceURL string
	FilePath  string
	KeepYears int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			BlackspotCacheTTL: time.Duration(viper.GetInt("BLACKSPOT_CACHE_TTL")) * time.Second,
			StatsCacheTTL:     time.Duration(viper.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Cluster: ClusterConfig{
			DefaultEpsKm:      viper.GetFloat64("CLUSTER_DEFAULT_EPS_KM"),
			DefaultMinSamples: viper.GetInt("CLUSTER_DEFAULT_MIN_SAMPLES"),
		},
		Dataset: DatasetConfig{
			SourceURL: viper.GetString("DATASET_SOURCE_URL"),
			FilePath:  viper.GetString("DATASET_FILE_PATH"),
			KeepYears: viper.GetInt("DATASET_KEEP_YEARS"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Cache.BlackspotCacheTTL == 0 {
		cfg.Cache.BlackspotCacheTTL = 300 * time.Second
	}
	if cfg.Cache.StatsCacheTTL == 0 {
		cfg.Cache.StatsCacheTTL = 300 * time.Second
	}
	if cfg.Cluster.DefaultEpsKm == 0 {
		cfg.Cluster.DefaultEpsKm = 0.5
	}
	if cfg.Cluster.DefaultMinSamples == 0 {
		cfg.Cluster.DefaultMinSamples = 5
	}
	if cfg.Dataset.KeepYears == 0 {
		cfg.Dataset.KeepYears = 6
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
