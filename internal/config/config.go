// Package config loads the application configuration from YAML with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMySQL  = "mysql"
)

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Store   StoreConfig   `yaml:"store"`
	QR      QRConfig      `yaml:"qr"`
	Server  ServerConfig  `yaml:"server"`
	Logger  LoggerConfig  `yaml:"logger"`
}

type StorageConfig struct {
	Driver    string `yaml:"driver"`
	Path      string `yaml:"path"`
	RedisAddr string `yaml:"redis_addr"`
	MySQLDSN  string `yaml:"mysql_dsn"`
}

type StoreConfig struct {
	// IDScheme is "ordinal" or "uuid"
	IDScheme string `yaml:"id_scheme"`
}

type QRConfig struct {
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
}

type ServerConfig struct {
	HTTPAddr string `yaml:"http_addr"`
	GRPCAddr string `yaml:"grpc_addr"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode"`
	Level      string `yaml:"level"`
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver:    DriverBolt,
			Path:      filepath.Join(dataDir(), "inventory.bolt"),
			RedisAddr: "localhost:6379",
			MySQLDSN:  "root:root@tcp(localhost:3306)/inventory?parseTime=true",
		},
		Store: StoreConfig{IDScheme: "ordinal"},
		QR: QRConfig{
			Endpoint: "https://api.qrserver.com/v1/create-qr-code/",
			Timeout:  10 * time.Second,
		},
		Server: ServerConfig{
			HTTPAddr: ":8080",
			GRPCAddr: ":50051",
		},
		Logger: LoggerConfig{
			Mode:     "development",
			Level:    "info",
			Filename: filepath.Join(dataDir(), "inventory.log"),
		},
	}
}

// Load reads path over the defaults. An empty path skips the file; a
// missing explicit file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverBolt, DriverSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for driver %s", c.Storage.Driver)
		}
	case DriverRedis:
		if c.Storage.RedisAddr == "" {
			return errors.New("storage.redis_addr is required for driver redis")
		}
	case DriverMySQL:
		if c.Storage.MySQLDSN == "" {
			return errors.New("storage.mysql_dsn is required for driver mysql")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	switch c.Store.IDScheme {
	case "", "ordinal", "uuid":
	default:
		return fmt.Errorf("unknown id scheme %q", c.Store.IDScheme)
	}

	if c.QR.Timeout < 0 {
		return errors.New("qr.timeout must not be negative")
	}
	return nil
}

func (c *Config) applyEnv() {
	setString(&c.Storage.Driver, "INVENTORY_STORAGE_DRIVER")
	setString(&c.Storage.Path, "INVENTORY_STORAGE_PATH")
	setString(&c.Storage.RedisAddr, "REDIS_ADDR")
	setString(&c.Storage.MySQLDSN, "MYSQL_DSN")
	setString(&c.Store.IDScheme, "INVENTORY_ID_SCHEME")
	setString(&c.QR.Endpoint, "INVENTORY_QR_ENDPOINT")
	setString(&c.Server.HTTPAddr, "INVENTORY_HTTP_ADDR")
	setString(&c.Server.GRPCAddr, "INVENTORY_GRPC_ADDR")
	setString(&c.Logger.Mode, "INVENTORY_LOG_MODE")
}

func setString(dst *string, env string) {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		*dst = v
	}
}

func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "data"
	}
	return filepath.Join(home, ".gestao-produtos")
}
