package logger

import (
    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
)

var lg = zap.NewNop()

// Init 初始化全局 logger；mode 为 debug 时输出彩色控制台日志
func Init(mode string) error {
    var cfg zap.Config
    if mode == "debug" {
        cfg = zap.NewDevelopmentConfig()
        cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
    } else {
        cfg = zap.NewProductionConfig()
    }
    l, err := cfg.Build(zap.AddCallerSkip(1))
    if err != nil {
        return err
    }
    lg = l
    return nil
}

// L 返回底层 *zap.Logger（middleware 等需要自已定制 caller skip 的场景用）
func L() *zap.Logger { return lg }

func Debug(msg string, fields ...zap.Field) { lg.Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { lg.Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { lg.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { lg.Error(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { lg.Fatal(msg, fields...) }

func Sync() { _ = lg.Sync() }
