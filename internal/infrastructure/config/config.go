package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	DriverS3    = "s3"
	DriverMinio = "minio"
)

type Config struct {
	Resizer ResizerConfig
	Storage StorageConfig
	S3      S3Config
	Log     LogConfig
	Server  ServerConfig
}

type ResizerConfig struct {
	DestBucket   string `envconfig:"DEST_BUCKET"`
	DestPrefix   string `envconfig:"DEST_PREFIX" default:"resized/"`
	TargetWidth  int    `envconfig:"TARGET_WIDTH" default:"800"`
	TargetHeight int    `envconfig:"TARGET_HEIGHT" default:"600"`
}

type StorageConfig struct {
	Driver string `envconfig:"STORAGE_DRIVER" default:"s3"`
}

// S3Config is shared by both drivers. Leaving the static credentials empty
// falls back to the default AWS credential chain (the Lambda execution role).
type S3Config struct {
	Endpoint        string `envconfig:"S3_ENDPOINT"`
	Region          string `envconfig:"S3_REGION" default:"us-east-1"`
	AccessKeyID     string `envconfig:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"S3_SECRET_ACCESS_KEY"`
	UsePathStyle    bool   `envconfig:"S3_USE_PATH_STYLE" default:"false"`
	UseSSL          bool   `envconfig:"S3_USE_SSL" default:"true"`
}

func (c S3Config) HasStaticCredentials() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}
