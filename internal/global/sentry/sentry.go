package sentry

import (
	"fmt"
	"time"

	"project-submission-system/config"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
)

// CodedError 带业务错误码的错误，用于判断是否需要上报
type CodedError interface {
	error
	GetCode() int32
}

// Init 初始化 Sentry SDK，未配置 DSN 时跳过
func Init() error {
	cfg := config.Get()

	if cfg.Sentry.Dsn == "" {
		return nil
	}

	tracesSampleRate := cfg.Sentry.SampleRate
	if tracesSampleRate <= 0 {
		tracesSampleRate = 1.0
	}

	environment := cfg.Sentry.Environment
	if environment == "" {
		environment = string(cfg.Mode)
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.Dsn,
		Environment:      environment,
		Release:          "project-submission-system@1.0.0",
		SampleRate:       1.0, // 错误事件全量上报
		EnableTracing:    true,
		TracesSampleRate: tracesSampleRate,
		EnableLogs:       true,
	})
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}

	return nil
}

// Middleware 返回 Sentry Gin 中间件，未配置 DSN 时为空中间件
func Middleware() gin.HandlerFunc {
	if config.Get().Sentry.Dsn == "" {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return sentrygin.New(sentrygin.Options{
		Repanic:         true, // panic 继续传播，由 Recovery 中间件兜底响应
		WaitForDelivery: false,
		Timeout:         2 * time.Second,
	})
}

// CaptureException 上报异常。只上报服务端错误（5xxxx），业务错误不上报
func CaptureException(c *gin.Context, err error) {
	if err == nil || config.Get().Sentry.Dsn == "" {
		return
	}

	if coded, ok := err.(CodedError); ok && coded.GetCode() < 50000 {
		return
	}

	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
		return
	}
	sentry.CaptureException(err)
}
