package tracing

import (
    "context"

    "go.opentelemetry.io/otel"
    "go.opentelemetry.io/otel/exporters/otlp/otlptrace"
    "go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
    sdkresource "go.opentelemetry.io/otel/sdk/resource"
    sdktrace "go.opentelemetry.io/otel/sdk/trace"
    semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

    "github.com/d60-Lab/cinegraph/config"
)

// Init 配置 OTLP/HTTP 上报并注册全局 TracerProvider，返回关闭函数
func Init(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
    exporter, err := otlptrace.New(ctx, otlptracehttp.NewClient(
        otlptracehttp.WithEndpoint(cfg.Tracing.Endpoint),
        otlptracehttp.WithInsecure(),
    ))
    if err != nil {
        return nil, err
    }
    res, err := sdkresource.New(ctx,
        sdkresource.WithAttributes(semconv.ServiceName("cinegraph")),
    )
    if err != nil {
        return nil, err
    }
    tp := sdktrace.NewTracerProvider(
        sdktrace.WithBatcher(exporter),
        sdktrace.WithResource(res),
    )
    otel.SetTracerProvider(tp)
    return tp.Shutdown, nil
}
