package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type CommissionConfig struct {
	Env          string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	CommissionDB `yaml:"commission_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Commission   `yaml:"commission"`
	AdminAPI     `yaml:"admin_api"`
	Webhook      `yaml:"webhook"`
	Partner      `yaml:"partner"`
}

type HTTPServer struct {
	Host         string        `yaml:"host"`
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env-default:"30s"`
}

type CommissionDB struct {
	Dsn            string `yaml:"dsn" env:"COMMISSION_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
	Topic   string `yaml:"topic" env-default:"sale-events"`
	Enabled bool   `yaml:"enabled"`
}

type Commission struct {
	FlatRatePercent float64 `yaml:"flat_rate_percent" env-default:"10"`
}

type AdminAPI struct {
	Token string `yaml:"token" env:"ADMIN_API_TOKEN"`
}

type Webhook struct {
	// Empty secret disables signature checks, matching the partner
	// platform's unsigned deliveries.
	Secret string `yaml:"secret" env:"WEBHOOK_SECRET"`
}

type Partner struct {
	Domain        string        `yaml:"domain"`
	VerifyTimeout time.Duration `yaml:"verify_timeout" env-default:"10s"`
}

func MustLoad() *CommissionConfig {

	// Processing env config variable and file
	configPath := os.Getenv("COMMISSION_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("COMMISSION_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg CommissionConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
