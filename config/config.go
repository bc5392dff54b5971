package config

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix   = "DETECTOR"
	ModelDirEnv = "MODEL_DIR"
)

type Config struct {
	ModelDir string       `mapstructure:"model_dir"`
	Debug    bool         `mapstructure:"debug"`
	Server   ServerConfig `mapstructure:"server"`
	Pool     PoolConfig   `mapstructure:"pool"`
	Fetch    FetchConfig  `mapstructure:"fetch"`
	ONNX     ONNXConfig   `mapstructure:"onnx"`
	Model    ModelConfig  `mapstructure:"model"`
	Log      LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	HTTPAddr        string        `mapstructure:"http_addr"`
	GRPCAddr        string        `mapstructure:"grpc_addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type PoolConfig struct {
	Size           int           `mapstructure:"size"`
	AcquireTimeout time.Duration `mapstructure:"acquire_timeout"`
}

type FetchConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	MaxBytes  int64         `mapstructure:"max_bytes"`
	UserAgent string        `mapstructure:"user_agent"`
}

type ONNXConfig struct {
	LibraryPath    string `mapstructure:"library_path"`
	IntraOpThreads int    `mapstructure:"intra_op_threads"`
	InterOpThreads int    `mapstructure:"inter_op_threads"`
}

type ModelConfig struct {
	// Version is reported when the model file carries no version metadata.
	Version string `mapstructure:"version"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from defaults, the optional file at path and
// the environment, in increasing order of precedence.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("model_dir", ModelDirEnv); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", ModelDirEnv, err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("model_dir", "model")
	v.SetDefault("debug", false)

	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("server.grpc_addr", "[::1]:50051")
	v.SetDefault("server.read_timeout", 60*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)

	v.SetDefault("pool.size", runtime.NumCPU())
	v.SetDefault("pool.acquire_timeout", 5*time.Second)

	v.SetDefault("fetch.timeout", 30*time.Second)
	v.SetDefault("fetch.max_bytes", 20<<20)
	v.SetDefault("fetch.user_agent", "image-safety-service/1.0")

	v.SetDefault("onnx.library_path", "")
	v.SetDefault("onnx.intra_op_threads", 0)
	v.SetDefault("onnx.inter_op_threads", 0)

	v.SetDefault("model.version", "0.1.0")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

func (c *Config) Validate() error {
	if c.ModelDir == "" {
		return fmt.Errorf("model_dir must not be empty")
	}
	if c.Pool.Size <= 0 {
		return fmt.Errorf("pool.size must be positive, got %d", c.Pool.Size)
	}
	if c.Fetch.MaxBytes <= 0 {
		return fmt.Errorf("fetch.max_bytes must be positive, got %d", c.Fetch.MaxBytes)
	}
	if c.ONNX.IntraOpThreads < 0 || c.ONNX.InterOpThreads < 0 {
		return fmt.Errorf("onnx thread counts must not be negative")
	}
	return nil
}
