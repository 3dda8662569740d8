package middleware

import (
    "strings"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/cinegraph/internal/service"
    "github.com/d60-Lab/cinegraph/pkg/response"
)

// CtxUserID 认证中间件写入 gin context 的 key
const CtxUserID = "user_id"

// JWTAuth 解析 Bearer access token，把 user id 放进 context
func JWTAuth(auth service.AuthService) gin.HandlerFunc {
    return func(c *gin.Context) {
        userID, ok := bearerUserID(c, auth)
        if !ok {
            response.Unauthorized(c, "authentication required")
            return
        }
        c.Set(CtxUserID, userID)
        c.Next()
    }
}

// OptionalJWTAuth 匿名可读的路由用：带了合法 token 就注入身份，没带不拦
func OptionalJWTAuth(auth service.AuthService) gin.HandlerFunc {
    return func(c *gin.Context) {
        if userID, ok := bearerUserID(c, auth); ok {
            c.Set(CtxUserID, userID)
        }
        c.Next()
    }
}

func bearerUserID(c *gin.Context, auth service.AuthService) (string, bool) {
    header := c.GetHeader("Authorization")
    token, found := strings.CutPrefix(header, "Bearer ")
    if !found || token == "" {
        return "", false
    }
    userID, err := auth.ParseAccess(token)
    if err != nil {
        return "", false
    }
    return userID, true
}

// UserID 取当前请求的认证用户 id，空串表示匿名
func UserID(c *gin.Context) string {
    return c.GetString(CtxUserID)
}
