package config

import (
    "strings"
    "time"

    "github.com/spf13/viper"
)

type Config struct {
    Server    ServerConfig    `mapstructure:"server"`
    Database  DatabaseConfig  `mapstructure:"database"`
    Redis     RedisConfig     `mapstructure:"redis"`
    JWT       JWTConfig       `mapstructure:"jwt"`
    Sentry    SentryConfig    `mapstructure:"sentry"`
    Tracing   TracingConfig   `mapstructure:"tracing"`
    Chat      ChatConfig      `mapstructure:"chat"`
    Upload    UploadConfig    `mapstructure:"upload"`
    RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

type ServerConfig struct {
    Port int    `mapstructure:"port"`
    Mode string `mapstructure:"mode"` // debug / release
}

type DatabaseConfig struct {
    Driver string `mapstructure:"driver"` // sqlite / postgres
    DSN    string `mapstructure:"dsn"`
}

type RedisConfig struct {
    Addr     string `mapstructure:"addr"`
    Password string `mapstructure:"password"`
    DB       int    `mapstructure:"db"`
}

type JWTConfig struct {
    Secret     string        `mapstructure:"secret"`
    Issuer     string        `mapstructure:"issuer"`
    AccessTTL  time.Duration `mapstructure:"access_ttl"`
    RefreshTTL time.Duration `mapstructure:"refresh_ttl"`
}

type SentryConfig struct {
    DSN string `mapstructure:"dsn"`
}

type TracingConfig struct {
    Enabled  bool   `mapstructure:"enabled"`
    Endpoint string `mapstructure:"endpoint"`
}

// ChatConfig 私信行为策略
type ChatConfig struct {
    // ReadOnFetch 为 true 时，参与者拉取消息列表会把对方发来的未读消息置为已读
    ReadOnFetch bool `mapstructure:"read_on_fetch"`
}

type UploadConfig struct {
    Dir      string `mapstructure:"dir"`
    MaxBytes int64  `mapstructure:"max_bytes"`
}

type RateLimitConfig struct {
    RPS   float64 `mapstructure:"rps"`
    Burst int     `mapstructure:"burst"`
}

// Load 读取 config/config.yaml，环境变量 CINEGRAPH_* 可覆盖
func Load() (*Config, error) {
    v := viper.New()
    v.SetConfigName("config")
    v.SetConfigType("yaml")
    v.AddConfigPath("./config")
    v.AddConfigPath(".")
    v.SetEnvPrefix("CINEGRAPH")
    v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
    v.AutomaticEnv()

    v.SetDefault("server.port", 8080)
    v.SetDefault("server.mode", "debug")
    v.SetDefault("database.driver", "sqlite")
    v.SetDefault("database.dsn", "cinegraph.db")
    v.SetDefault("redis.addr", "127.0.0.1:6379")
    v.SetDefault("jwt.issuer", "cinegraph")
    v.SetDefault("jwt.access_ttl", 15*time.Minute)
    v.SetDefault("jwt.refresh_ttl", 7*24*time.Hour)
    v.SetDefault("chat.read_on_fetch", false)
    v.SetDefault("upload.dir", "./media")
    v.SetDefault("upload.max_bytes", 2*1024*1024)
    v.SetDefault("ratelimit.rps", 50)
    v.SetDefault("ratelimit.burst", 100)

    if err := v.ReadInConfig(); err != nil {
        // 配置文件缺失时用默认值 + 环境变量
        if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
            return nil, err
        }
    }
    var cfg Config
    if err := v.Unmarshal(&cfg); err != nil {
        return nil, err
    }
    return &cfg, nil
}
