// Package config provides the structures and loader for the application
// configuration.
package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the settings shared by all three binaries.
type Config struct {
	Env                     string `yaml:"env" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string"`
	HTTPServer              `yaml:"http_server"`
	RedisConnection         `yaml:"redis_connection"`
	JWTToken                `yaml:"jwttoken"`
	RabbitMQ                `yaml:"rabbitmq"`
	SMTP                    `yaml:"smtp"`
	Notify                  `yaml:"notify"`
}

// HTTPServer configures the API server.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:"0.0.0.0:8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection configures the read cache.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis"`
	Password     string        `yaml:"password"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries" env-default:"3"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env-default:"5s"`
	TimeoutRedis time.Duration `yaml:"timeoutredis" env-default:"3s"`
}

// JWTToken configures token signing for the API.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET_KEY"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"24h"`
}

// RabbitMQ configures the queue between the scheduler and the sender.
type RabbitMQ struct {
	RabbitMQURL        string        `yaml:"url"`
	RabbitMQMaxRetries int           `yaml:"max_retries" env-default:"10"`
	RabbitMQRetryDelay time.Duration `yaml:"retry_delay" env-default:"3s"`
}

// SMTP configures the outgoing mail account.
type SMTP struct {
	SMTPHost string `yaml:"host"`
	SMTPPort string `yaml:"port" env-default:"587"`
	SMTPUser string `yaml:"user"`
	SMTPPass string `yaml:"pass" env:"SMTP_PASS"`
}

// Notify configures the expiration reminder pipeline. SendTime is the
// local time of day ("15:04") the daily scan fires at. RecipientStrategy
// is "service" (per-service email references, the default) or "admin"
// (the fixed AdminEmails distribution list).
type Notify struct {
	SendTime          string `yaml:"send_time" env-default:"13:45"`
	ThresholdDays     int    `yaml:"threshold_days" env-default:"30"`
	RecipientStrategy string `yaml:"recipient_strategy" env-default:"service"`
	AdminEmails       string `yaml:"admin_emails"`
}

// AdminRecipients splits the comma-separated admin list into addresses.
func (n Notify) AdminRecipients() []string {
	var out []string
	for _, addr := range strings.Split(n.AdminEmails, ",") {
		addr = strings.TrimSpace(addr)
		if addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

// MustLoad reads the configuration from the file named by CONFIG_PATH
// and exits the process when it cannot.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
