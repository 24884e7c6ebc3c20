package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
}

// EngineConfig represents the workflow engine endpoint configuration
type EngineConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	Namespace      string        `mapstructure:"namespace"`
	FlowID         string        `mapstructure:"flow_id"`
	WebhookKey     string        `mapstructure:"webhook_key"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	HealthTimeout  time.Duration `mapstructure:"health_timeout"`
}

// InferenceConfig represents the model inference service configuration
type InferenceConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// DataConfig represents the domain data source configuration
type DataConfig struct {
	BasePath string `mapstructure:"base_path"`
}

// Config represents the application configuration
type Config struct {
	APITitle   string          `mapstructure:"api_title"`
	APIVersion string          `mapstructure:"api_version"`
	LogLevel   string          `mapstructure:"log_level"`
	Server     ServerConfig    `mapstructure:"server"`
	Engine     EngineConfig    `mapstructure:"engine"`
	Inference  InferenceConfig `mapstructure:"inference"`
	Data       DataConfig      `mapstructure:"data"`
}

// LoadConfig loads configuration from an optional YAML file and the
// environment. Environment variables use the FINSIGHT_ prefix with
// underscores for nesting, e.g. FINSIGHT_ENGINE_BASE_URL.
func LoadConfig(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("FINSIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	for _, p := range paths {
		v.SetConfigFile(p)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", p, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api_title", "Finsight Orchestrator API")
	v.SetDefault("api_version", "1.0.0")
	v.SetDefault("log_level", "info")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 120*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("server.cors_origins", []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://127.0.0.1:3000",
	})

	v.SetDefault("engine.base_url", "http://kestra:8080")
	v.SetDefault("engine.namespace", "finance")
	v.SetDefault("engine.flow_id", "finance-ai-orchestrator")
	v.SetDefault("engine.webhook_key", "finance-orchestrator-trigger")
	v.SetDefault("engine.request_timeout", 30*time.Second)
	v.SetDefault("engine.health_timeout", 10*time.Second)

	v.SetDefault("inference.base_url", "http://ollama:11434")
	v.SetDefault("inference.model", "llama3.2:3b")
	v.SetDefault("inference.timeout", 5*time.Second)

	v.SetDefault("data.base_path", "/app/data")
}

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}
	if cfg.Engine.BaseURL == "" {
		return fmt.Errorf("engine base URL must not be empty")
	}
	if cfg.Data.BasePath == "" {
		return fmt.Errorf("data base path must not be empty")
	}
	return nil
}
