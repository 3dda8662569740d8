package middleware

import (
    "fmt"

    "github.com/getsentry/sentry-go"
    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "github.com/d60-Lab/cinegraph/pkg/logger"
    "github.com/d60-Lab/cinegraph/pkg/response"
)

// Recovery panic 兜底：记日志、上报 sentry（配置了 DSN 时）、回 500
func Recovery() gin.HandlerFunc {
    return func(c *gin.Context) {
        defer func() {
            if r := recover(); r != nil {
                err := fmt.Errorf("panic: %v", r)
                logger.Error("panic recovered",
                    zap.String("path", c.Request.URL.Path),
                    zap.Any("panic", r),
                )
                if hub := sentry.CurrentHub(); hub.Client() != nil {
                    hub.Recover(r)
                }
                response.InternalError(c, err)
                c.Abort()
            }
        }()
        c.Next()
    }
}
