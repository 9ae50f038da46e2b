package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StoreTypeRedis  = "redis"
	StoreTypeMySQL  = "mysql"
	StoreTypeMemory = "memory"

	DeliveryQueue  = "queue"
	DeliveryDirect = "direct"
)

type Config struct {
	Env        string `env:"ENV" env-required:"true"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	LogFile    string `env:"LOG_FILE" env-default:"" env-description:"optional path of a rotated log file"`
	HttpServer HttpServer
	Store      Store
	Database   Database
	Auth       AuthConfig
	SMTP       SMTPConfig
	Email      EmailConfig
	Queue      Queue
	Cache      Cache
}

type HttpServer struct {
	Port           string        `env:"HTTP_PORT" env-default:"8080"`
	Timeout        time.Duration `env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout    time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	SwaggerEnabled bool          `env:"HTTP_SWAGGER_ENABLED" env-default:"false"`
}

type Store struct {
	Type             string        `env:"STORE_TYPE" env-default:"redis" env-description:"key-value backend, one of redis/mysql/memory"`
	Namespace        string        `env:"STORE_NAMESPACE" env-default:"waitlist:" env-description:"key prefix used by the redis backend"`
	RetryAttempts    uint64        `env:"STORE_RETRY_ATTEMPTS" env-default:"3"`
	RetryMaxInterval time.Duration `env:"STORE_RETRY_MAX_INTERVAL" env-default:"1s"`
}

type Database struct {
	Net                string        `env:"DB_NET" env-default:"tcp"`
	Server             string        `env:"DB_SERVER"`
	DBName             string        `env:"DB_NAME"`
	User               string        `env:"DB_USER"`
	Password           string        `env:"DB_PASSWORD"`
	TimeZone           string        `env:"DB_TIMEZONE" env-default:"UTC"`
	Timeout            time.Duration `env:"DB_TIMEOUT" env-default:"2s"`
	MaxIdleConnections int           `env:"DB_MAX_IDLE_CONNECTIONS" env-default:"40"`
	MaxOpenConnections int           `env:"DB_MAX_OPEN_CONNECTIONS" env-default:"40"`
}

type AuthConfig struct {
	AdminPassword string `env:"ADMIN_PASSWORD" env-required:"true"`
	JWT           JWTConfig
}

type JWTConfig struct {
	SessionTTL time.Duration `env:"ADMIN_SESSION_TTL" env-default:"30m"`
	SigningKey string        `env:"JWT_SIGNING_KEY" env-required:"true"`
}

type SMTPConfig struct {
	Host string `env:"SMTP_HOST"`
	Port int    `env:"SMTP_PORT" env-default:"587"`
	User string `env:"SMTP_USER"`
	Pass string `env:"SMTP_PASS"`
}

type EmailConfig struct {
	Enabled  bool   `env:"EMAIL_ENABLED" env-default:"false"`
	Delivery string `env:"EMAIL_DELIVERY" env-default:"queue" env-description:"queue (asynq) or direct"`
	From     string `env:"EMAIL_FROM" env-default:"Waiting List <noreply@example.com>"`
	BaseURL  string `env:"APP_BASE_URL" env-default:"http://localhost:5173"`
}

type Queue struct {
	Concurrency int `env:"QUEUE_CONCURRENCY" env-default:"10"`
}

type Cache struct {
	Type  string `env:"REDIS_TYPE" env-default:"redis" env-description:"specifies provider, one of redis/redisCluster"`
	Redis struct {
		Address  string `env:"REDIS_ADDR" env-default:"localhost:6379" env-description:"redis host:port single instance"`
		Password string `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize int    `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
	RedisCluster struct {
		Addresses []string `env:"REDIS_CLUSTER_ADDRS" env-default:"" env-description:"redis cluster nodes: ['172.27.29.90:7000','172.27.29.91:7001'', '172.27.29.92:7002'']"`
		Password  string   `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize  int      `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
}

func MustLoad() *Config {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}

	return &cfg
}
