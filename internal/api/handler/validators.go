package handler

import (
    "time"

    "github.com/gin-gonic/gin/binding"
    "github.com/go-playground/validator/v10"
)

func init() {
    if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
        _ = v.RegisterValidation("year", validYear)
    }
}

// year 年份上界取到明年，允许录入已定档的剧集
func validYear(fl validator.FieldLevel) bool {
    y := int(fl.Field().Int())
    return y >= 1880 && y <= time.Now().Year()+1
}
