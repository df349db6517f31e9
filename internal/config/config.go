package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Database struct {
		DSN            string `env:"DSN,required"`
		ConnectTimeout int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		QueryTimeout   int    `env:"QUERY_TIMEOUT" envDefault:"10"`
		MaxOpenConns   int    `env:"MAX_OPEN_CONNS" envDefault:"10"`
		MaxIdleConns   int    `env:"MAX_IDLE_CONNS" envDefault:"10"`
		MaxIdleTime    int    `env:"MAX_IDLE_TIME" envDefault:"60"`
	} `envPrefix:"DATABASE_"`
	InitialAdmin struct {
		FullName string `env:"FULL_NAME" envDefault:"Administrator"`
		Email    string `env:"EMAIL,required"`
		Password string `env:"PASSWORD,required"`
	} `envPrefix:"INITIAL_ADMIN_"`
	JWT struct {
		Expiration int    `env:"EXPIRATION" envDefault:"1209600"` // 14 days, in seconds
		Secret     string `env:"SECRET,required"`
	} `envPrefix:"JWT_"`
	Email struct {
		From string `env:"FROM,required"`
		SMTP struct {
			Username    string `env:"USERNAME,required"`
			Password    string `env:"PASSWORD,required"`
			Host        string `env:"HOST,required"`
			Port        int    `env:"PORT" envDefault:"465"`
			DialTimeout int    `env:"DIAL_TIMEOUT" envDefault:"10"`
		} `envPrefix:"SMTP_"`
	} `envPrefix:"EMAIL_"`
	RabbitMQ struct {
		DSN            string `env:"DSN,required"`
		PublishTimeout int    `env:"PUBLISH_TIMEOUT" envDefault:"10"`
	} `envPrefix:"RABBITMQ_"`
	Redis struct {
		Host             string `env:"HOST" envDefault:"localhost"`
		Port             int    `env:"PORT" envDefault:"6379"`
		Password         string `env:"PASSWORD,required"`
		OperationTimeout int    `env:"OPERATION_TIMEOUT" envDefault:"10"`
	} `envPrefix:"REDIS_"`
	OTP struct {
		Expiration int `env:"EXPIRATION" envDefault:"900"` // 15 minutes, in seconds
	} `envPrefix:"OTP_"`
	S3 struct {
		Region       string `env:"REGION" envDefault:"us-east-1"`
		BaseEndpoint string `env:"BASE_ENDPOINT"`
		Bucket       string `env:"BUCKET,required"`
		AccessKey    string `env:"ACCESS_KEY,required"`
		SecretKey    string `env:"SECRET_KEY,required"`
		PublicURL    string `env:"PUBLIC_URL,required"`
	} `envPrefix:"S3_"`
	Upload struct {
		MaxSize int64 `env:"MAX_SIZE" envDefault:"10485760"` // 10 MB
	} `envPrefix:"UPLOAD_"`
	Seed struct {
		Password string `env:"PASSWORD" envDefault:"changeme"`
	} `envPrefix:"SEED_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// only the first error, keeps the log readable
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}
