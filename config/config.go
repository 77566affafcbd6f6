package config

import (
	"log"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

type Config struct {
	Host   string `envconfig:"HOST"`
	Port   string `envconfig:"PORT"`
	Prefix string `envconfig:"PREFIX"`
	Mode   Mode   `envconfig:"MODE"`
	Mysql  Mysql
	Redis  Redis
	JWT    JWT
	Log    Log `mapstructure:"Log"`
	Sentry Sentry
	Mail   Mail
	S3     S3
}

type Mysql struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
}

type Redis struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type JWT struct {
	AccessSecret string `envconfig:"ACCESS_SECRET"`
	AccessExpire int64  `envconfig:"ACCESS_EXPIRE"` // 秒
}

type Log struct {
	FilePath   string `envconfig:"LOG_FILE_PATH" mapstructure:"file_path"`     // 日志文件路径
	Level      string `envconfig:"LOG_LEVEL" mapstructure:"level"`             // 日志级别：debug, info, warn, error
	MaxSize    int    `envconfig:"LOG_MAX_SIZE" mapstructure:"max_size"`       // 日志文件最大大小（MB）
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" mapstructure:"max_backups"` // 保留的旧日志文件数
	MaxAge     int    `envconfig:"LOG_MAX_AGE" mapstructure:"max_age"`         // 日志文件保留天数
	Compress   bool   `envconfig:"LOG_COMPRESS" mapstructure:"compress"`       // 是否压缩旧日志文件
}

type Sentry struct {
	Dsn         string  `mapstructure:"dsn"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

// Mail 邮件网关配置，审核通知经由外部邮件服务发送
type Mail struct {
	Endpoint string `mapstructure:"endpoint"`
	APIKey   string `mapstructure:"api_key" envconfig:"MAIL_API_KEY"`
	Sender   string `mapstructure:"sender"`
}

type S3 struct {
	Endpoint        string `mapstructure:"endpoint"`
	BaseURL         string `mapstructure:"base_url"`
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	AccessKey       string `mapstructure:"access_key"`
	SecretAccessKey string `mapstructure:"secret_key" envconfig:"S3_SECRET_KEY"`
	Prefix          string `mapstructure:"prefix"`
	UsePathStyle    bool   `mapstructure:"path_style"`
}

var (
	instance *Config
	once     sync.Once
)

// Init 加载配置：先读 config.yaml，再用环境变量覆盖
func Init() {
	once.Do(func() {
		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")

		cfg := &Config{
			Host:   "0.0.0.0",
			Port:   "8080",
			Prefix: "api",
			Mode:   ModeDebug,
		}

		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				log.Fatalf("读取配置文件失败: %v", err)
			}
			// 没有配置文件时完全依赖环境变量
		} else if err := v.Unmarshal(cfg); err != nil {
			log.Fatalf("解析配置文件失败: %v", err)
		}

		if err := envconfig.Process("", cfg); err != nil {
			log.Fatalf("读取环境变量失败: %v", err)
		}

		instance = cfg
	})
}

func Get() *Config {
	if instance == nil {
		Init()
	}
	return instance
}
