package database

import (
    "fmt"

    "gorm.io/driver/postgres"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"

    "github.com/d60-Lab/cinegraph/config"
    "github.com/d60-Lab/cinegraph/internal/model"
)

// InitDB 按配置打开数据库并迁移表结构。
// TranslateError 打开后唯一键冲突统一表现为 gorm.ErrDuplicatedKey，
// 点赞/关注的幂等性判断依赖这一行为。
func InitDB(cfg *config.Config) (*gorm.DB, error) {
    var dialector gorm.Dialector
    switch cfg.Database.Driver {
    case "sqlite":
        dialector = sqlite.Open(cfg.Database.DSN)
    case "postgres":
        dialector = postgres.Open(cfg.Database.DSN)
    default:
        return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
    }
    db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
    if err != nil {
        return nil, err
    }
    if err := db.AutoMigrate(model.All()...); err != nil {
        return nil, err
    }
    return db, nil
}
