package service

import (
    "errors"

    "gorm.io/gorm"
)

// ErrNotFound 通用的目标对象缺失
var ErrNotFound = errors.New("not found")

func notFoundOr(err error) error {
    if errors.Is(err, gorm.ErrRecordNotFound) {
        return ErrNotFound
    }
    return err
}
