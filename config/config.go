// Package config 读取服务与命令行工具的运行配置。
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config 运行配置
type Config struct {
	Addr            string        `validate:"required"`                            // 监听地址
	LogLevel        string        `validate:"oneof=trace debug info warn error"` // 日志级别
	LogJSON         bool          // 是否输出 JSON 日志
	CurvePoints     int           `validate:"gte=2,lte=2000"` // 曲线采样点数
	ShutdownTimeout time.Duration `validate:"gt=0"`           // 优雅退出等待时间
}

// Default 默认配置
func Default() Config {
	return Config{
		Addr:            ":8080",
		LogLevel:        "info",
		LogJSON:         true,
		CurvePoints:     60,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Load 加载配置
// 先读取 files 指定的 .env 文件(不存在则跳过)，再读取环境变量。
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("读取 %s 失败: %w", f, err)
		}
	}
	cfg := Default()
	var err error
	cfg.Addr = getEnv("PROTECTION_ADDR", cfg.Addr)
	cfg.LogLevel = getEnv("PROTECTION_LOG_LEVEL", cfg.LogLevel)
	if cfg.LogJSON, err = getEnvBool("PROTECTION_LOG_JSON", cfg.LogJSON); err != nil {
		return Config{}, err
	}
	if cfg.CurvePoints, err = getEnvInt("PROTECTION_CURVE_POINTS", cfg.CurvePoints); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = getEnvDuration("PROTECTION_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout); err != nil {
		return Config{}, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("配置无效: %w", err)
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue, fmt.Errorf("%s 不是布尔值: %q", key, v)
	}
	return b, nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, fmt.Errorf("%s 不是整数: %q", key, v)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultValue, fmt.Errorf("%s 不是时间间隔: %q", key, v)
	}
	return d, nil
}
