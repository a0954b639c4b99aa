// Package config resolves runtime settings from defaults, an optional YAML
// file, a .env file and TOYINV_* environment variables, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Storage drivers understood by persistence.Open.
const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverS3       = "s3"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Metrics exporters.
const (
	ExporterNone       = "none"
	ExporterExpvar     = "expvar"
	ExporterPrometheus = "prometheus"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TOYINV_"

// DotenvFile is read into the process environment by Load when present.
const DotenvFile = ".env"

// DefaultDataPath is where the record file lives when nothing is configured.
const DefaultDataPath = "res/toys.txt"

// Config is the full runtime configuration.
type Config struct {
	Storage Storage `yaml:"storage"`
	Log     Log     `yaml:"log"`
	Metrics Metrics `yaml:"metrics"`
}

// Storage selects where inventory records are persisted.
type Storage struct {
	Driver string `yaml:"driver"`
	// Path is the record file for the file driver and the database file for
	// sqlite.
	Path string `yaml:"path"`
	// Key is the object key for the memory and s3 drivers.
	Key     string `yaml:"key"`
	Backups bool   `yaml:"backups"`
	DSN     string `yaml:"dsn"`
	S3      S3     `yaml:"s3"`
}

// S3 holds bucket settings for the s3 driver.
type S3 struct {
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	SessionToken    string `yaml:"session_token"`
	PathStyle       bool   `yaml:"path_style"`
}

// Log configures the logrus logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Metrics selects a metrics exporter.
type Metrics struct {
	Exporter string `yaml:"exporter"`
	Name     string `yaml:"name"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Storage: Storage{
			Driver: DriverFile,
			Path:   DefaultDataPath,
			Key:    "toys.txt",
		},
		Log: Log{
			Level:  "warn",
			Format: "text",
		},
		Metrics: Metrics{
			Exporter: ExporterNone,
		},
	}
}

// Load reads .env (when present) into the process environment and resolves
// the configuration from path and the environment. An empty path skips the
// YAML file.
func Load(path string) (Config, error) {
	if err := loadDotenv(DotenvFile); err != nil {
		return Config{}, err
	}
	return LoadWith(path, os.LookupEnv)
}

// loadDotenv sets unset variables from the dotenv file at path. A missing
// file is not an error; an unreadable or malformed one is.
func loadDotenv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return &OpError{Op: "config.dotenv", Kind: KindInvalid, Path: path, Err: err}
}

func readKind(err error) ErrorKind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	default:
		return KindUnreadable
	}
}

// LoadWith resolves the configuration using lookup for environment values.
func LoadWith(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, &OpError{Op: "config.load", Kind: readKind(err), Path: path, Err: err}
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, &OpError{Op: "config.load", Kind: KindInvalid, Path: path, Err: err}
		}
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, &OpError{Op: "config.env", Kind: KindInvalid, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, &OpError{Op: "config.validate", Kind: KindInvalid, Path: path, Err: err}
	}
	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"STORAGE_DRIVER":       &cfg.Storage.Driver,
		"DATA_PATH":            &cfg.Storage.Path,
		"STORAGE_KEY":          &cfg.Storage.Key,
		"POSTGRES_DSN":         &cfg.Storage.DSN,
		"S3_BUCKET":            &cfg.Storage.S3.Bucket,
		"S3_REGION":            &cfg.Storage.S3.Region,
		"S3_ENDPOINT":          &cfg.Storage.S3.Endpoint,
		"S3_ACCESS_KEY_ID":     &cfg.Storage.S3.AccessKeyID,
		"S3_SECRET_ACCESS_KEY": &cfg.Storage.S3.SecretAccessKey,
		"S3_SESSION_TOKEN":     &cfg.Storage.S3.SessionToken,
		"LOG_LEVEL":            &cfg.Log.Level,
		"LOG_FORMAT":           &cfg.Log.Format,
		"METRICS_EXPORTER":     &cfg.Metrics.Exporter,
		"METRICS_NAME":         &cfg.Metrics.Name,
	}
	for name, dst := range strs {
		if v, ok := lookup(EnvPrefix + name); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	bools := map[string]*bool{
		"STORAGE_BACKUPS": &cfg.Storage.Backups,
		"S3_PATH_STYLE":   &cfg.Storage.S3.PathStyle,
	}
	for name, dst := range bools {
		v, ok := lookup(EnvPrefix + name)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}
		*dst = b
	}
	return nil
}

// Validate reports unknown drivers, exporters and missing required settings.
func (c Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.Storage.Driver) {
	case DriverFile, DriverSQLite:
		if strings.TrimSpace(c.Storage.Path) == "" {
			errs = append(errs, fmt.Errorf("storage.path required for %s driver", c.Storage.Driver))
		}
	case DriverMemory:
	case DriverS3:
		if c.Storage.S3.Bucket == "" {
			errs = append(errs, errors.New("storage.s3.bucket required for s3 driver"))
		}
	case DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver %q", c.Storage.Driver))
	}
	switch strings.ToLower(c.Metrics.Exporter) {
	case "", ExporterNone, ExporterExpvar, ExporterPrometheus:
	default:
		errs = append(errs, fmt.Errorf("unknown metrics exporter %q", c.Metrics.Exporter))
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	return errors.Join(errs...)
}
