package middleware

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/cinegraph/internal/service"
    "github.com/d60-Lab/cinegraph/pkg/response"
)

// AdminRequired 目录写操作的门禁，staff / superuser 放行。
// 必须挂在 JWTAuth 之后。
func AdminRequired(perm service.PermissionService) gin.HandlerFunc {
    return func(c *gin.Context) {
        ok, err := perm.IsAdmin(c.Request.Context(), UserID(c))
        if err != nil {
            response.InternalError(c, err)
            c.Abort()
            return
        }
        if !ok {
            response.Forbidden(c, "admin privileges required")
            return
        }
        c.Next()
    }
}
