package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the service configuration
type Config struct {
	Server        ServerConfig
	Storage       StorageConfig
	Redis         RedisConfig
	Elasticsearch ElasticsearchConfig
	NewRelic      NewRelicConfig
	Worker        WorkerConfig
}

// ServerConfig holds the HTTP server configuration
type ServerConfig struct {
	Port int
	Mode string // debug, release, test
}

// StorageConfig holds the embedded key-value store configuration
type StorageConfig struct {
	Path string
}

// RedisConfig holds the Redis partition-cache configuration
type RedisConfig struct {
	Enabled    bool
	Host       string
	Port       int
	Password   string
	DB         int
	TTLSeconds int
}

// ElasticsearchConfig holds the scan-history index configuration
type ElasticsearchConfig struct {
	Enabled  bool
	URL      string
	Username string
	Password string
	Index    string
}

// NewRelicConfig holds the New Relic configuration
type NewRelicConfig struct {
	AppName    string
	LicenseKey string
	Enabled    bool
}

// WorkerConfig holds the background index worker configuration
type WorkerConfig struct {
	IndexIntervalMinutes int
}

// InitConfig initializes the configuration using Viper
func InitConfig(cfgFile string) error {
	setDefaults()

	// Use config file from the flag if provided
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("/etc/scanbridge")
		viper.SetConfigName("config")
	}

	// SCANBRIDGE_SERVER_PORT overrides server.port, and so on
	viper.SetEnvPrefix("SCANBRIDGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Println("No config file found, using defaults and environment variables")
		} else {
			return fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}

	return nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.port", 8094)
	viper.SetDefault("server.mode", "debug")

	// Storage defaults
	viper.SetDefault("storage.path", "./data/scanbridge")

	// Redis defaults
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.ttlseconds", 30)

	// Elasticsearch defaults
	viper.SetDefault("elasticsearch.enabled", false)
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("elasticsearch.index", "scan-history")

	// New Relic defaults
	viper.SetDefault("newrelic.appname", "Scanbridge Local")
	viper.SetDefault("newrelic.enabled", false)

	// Worker defaults
	viper.SetDefault("worker.indexintervalminutes", 5)
}

// Load loads the configuration
func Load() (*Config, error) {
	serverConfig := ServerConfig{
		Port: viper.GetInt("server.port"),
		Mode: viper.GetString("server.mode"),
	}

	storageConfig := StorageConfig{
		Path: viper.GetString("storage.path"),
	}

	redisConfig := RedisConfig{
		Enabled:    viper.GetBool("redis.enabled"),
		Host:       viper.GetString("redis.host"),
		Port:       viper.GetInt("redis.port"),
		Password:   viper.GetString("redis.password"),
		DB:         viper.GetInt("redis.db"),
		TTLSeconds: viper.GetInt("redis.ttlseconds"),
	}

	elasticsearchConfig := ElasticsearchConfig{
		Enabled:  viper.GetBool("elasticsearch.enabled"),
		URL:      viper.GetString("elasticsearch.url"),
		Username: viper.GetString("elasticsearch.username"),
		Password: viper.GetString("elasticsearch.password"),
		Index:    viper.GetString("elasticsearch.index"),
	}

	newRelicConfig := NewRelicConfig{
		AppName:    viper.GetString("newrelic.appname"),
		LicenseKey: viper.GetString("newrelic.licensekey"),
		Enabled:    viper.GetBool("newrelic.enabled"),
	}

	workerConfig := WorkerConfig{
		IndexIntervalMinutes: viper.GetInt("worker.indexintervalminutes"),
	}

	return &Config{
		Server:        serverConfig,
		Storage:       storageConfig,
		Redis:         redisConfig,
		Elasticsearch: elasticsearchConfig,
		NewRelic:      newRelicConfig,
		Worker:        workerConfig,
	}, nil
}
