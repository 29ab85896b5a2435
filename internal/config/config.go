package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Export   ExportConfig
	S3       S3Config
	Log      LogConfig
	CORS     CORSConfig
	Business BusinessConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string        `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	Environment    string        `mapstructure:"environment"`
	RateLimitRPS   float64       `mapstructure:"rate_limit_rps"`
	RateLimitBurst int           `mapstructure:"rate_limit_burst"`
}

// DataConfig describes where the ledger workbook is read from.
type DataConfig struct {
	Path           string        `mapstructure:"path"`
	Sheet          string        `mapstructure:"sheet"`
	S3Bucket       string        `mapstructure:"s3_bucket"`
	S3Key          string        `mapstructure:"s3_key"`
	ReloadSchedule string        `mapstructure:"reload_schedule"`
	ReloadTimeout  time.Duration `mapstructure:"reload_timeout"`
	MinCode        int64         `mapstructure:"min_code"`
}

// Remote reports whether the workbook is fetched from object storage.
func (d *DataConfig) Remote() bool {
	return d.S3Bucket != "" && d.S3Key != ""
}

// ExportConfig holds table export settings.
type ExportConfig struct {
	Dir             string `mapstructure:"dir"`
	ResponsibleFile string `mapstructure:"responsible_file"`
	ProvinceFile    string `mapstructure:"province_file"`
	DatasetFile     string `mapstructure:"dataset_file"`
	S3Bucket        string `mapstructure:"s3_bucket"`
	S3Prefix        string `mapstructure:"s3_prefix"`
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// BusinessConfig points at the file holding targets and the province map.
type BusinessConfig struct {
	RulesFile string `mapstructure:"rules_file"`
}

// NeedsS3 reports whether any configured component uses object storage.
func (c *Config) NeedsS3() bool {
	return c.Data.Remote() || c.Export.S3Bucket != ""
}

// Load reads configuration from environment variables with the VOSUL_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("VOSUL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.rate_limit_rps", 20)
	v.SetDefault("server.rate_limit_burst", 40)

	// Data defaults
	v.SetDefault("data.path", "data.xlsx")
	v.SetDefault("data.sheet", "data")
	v.SetDefault("data.s3_bucket", "")
	v.SetDefault("data.s3_key", "")
	v.SetDefault("data.reload_schedule", "")
	v.SetDefault("data.reload_timeout", "5m")
	v.SetDefault("data.min_code", 60000)

	// Export defaults
	v.SetDefault("export.dir", "exports")
	v.SetDefault("export.responsible_file", "dashboard_table.xlsx")
	v.SetDefault("export.province_file", "province_table.xlsx")
	v.SetDefault("export.dataset_file", "exported_data.xlsx")
	v.SetDefault("export.s3_bucket", "")
	v.SetDefault("export.s3_prefix", "reports/")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.endpoint", "")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// The dashboard frontend is served from arbitrary hosts
	v.SetDefault("cors.allowed_origins", "*")

	v.SetDefault("business.rules_file", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "VOSUL_SERVER_PORT",
		"server.read_timeout":     "VOSUL_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "VOSUL_SERVER_WRITE_TIMEOUT",
		"server.environment":      "VOSUL_SERVER_ENVIRONMENT",
		"server.rate_limit_rps":   "VOSUL_SERVER_RATE_LIMIT_RPS",
		"server.rate_limit_burst": "VOSUL_SERVER_RATE_LIMIT_BURST",
		"data.path":               "VOSUL_DATA_PATH",
		"data.sheet":              "VOSUL_DATA_SHEET",
		"data.s3_bucket":          "VOSUL_DATA_S3_BUCKET",
		"data.s3_key":             "VOSUL_DATA_S3_KEY",
		"data.reload_schedule":    "VOSUL_DATA_RELOAD_SCHEDULE",
		"data.reload_timeout":     "VOSUL_DATA_RELOAD_TIMEOUT",
		"data.min_code":           "VOSUL_DATA_MIN_CODE",
		"export.dir":              "VOSUL_EXPORT_DIR",
		"export.responsible_file": "VOSUL_EXPORT_RESPONSIBLE_FILE",
		"export.province_file":    "VOSUL_EXPORT_PROVINCE_FILE",
		"export.dataset_file":     "VOSUL_EXPORT_DATASET_FILE",
		"export.s3_bucket":        "VOSUL_EXPORT_S3_BUCKET",
		"export.s3_prefix":        "VOSUL_EXPORT_S3_PREFIX",
		"s3.region":               "VOSUL_S3_REGION",
		"s3.endpoint":             "VOSUL_S3_ENDPOINT",
		"s3.access_key":           "VOSUL_S3_ACCESS_KEY",
		"s3.secret_key":           "VOSUL_S3_SECRET_KEY",
		"log.level":               "VOSUL_LOG_LEVEL",
		"log.format":              "VOSUL_LOG_FORMAT",
		"cors.allowed_origins":    "VOSUL_CORS_ALLOWED_ORIGINS",
		"business.rules_file":     "VOSUL_BUSINESS_RULES_FILE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set a PORT env var. Use it if VOSUL_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("VOSUL_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:           serverPort,
		ReadTimeout:    v.GetDuration("server.read_timeout"),
		WriteTimeout:   v.GetDuration("server.write_timeout"),
		Environment:    v.GetString("server.environment"),
		RateLimitRPS:   v.GetFloat64("server.rate_limit_rps"),
		RateLimitBurst: v.GetInt("server.rate_limit_burst"),
	}
	cfg.Data = DataConfig{
		Path:           v.GetString("data.path"),
		Sheet:          v.GetString("data.sheet"),
		S3Bucket:       v.GetString("data.s3_bucket"),
		S3Key:          v.GetString("data.s3_key"),
		ReloadSchedule: v.GetString("data.reload_schedule"),
		ReloadTimeout:  v.GetDuration("data.reload_timeout"),
		MinCode:        v.GetInt64("data.min_code"),
	}
	cfg.Export = ExportConfig{
		Dir:             v.GetString("export.dir"),
		ResponsibleFile: v.GetString("export.responsible_file"),
		ProvinceFile:    v.GetString("export.province_file"),
		DatasetFile:     v.GetString("export.dataset_file"),
		S3Bucket:        v.GetString("export.s3_bucket"),
		S3Prefix:        v.GetString("export.s3_prefix"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Business = BusinessConfig{
		RulesFile: v.GetString("business.rules_file"),
	}

	return cfg, nil
}
