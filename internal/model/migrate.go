package model

// All AutoMigrate 用的全量实体列表
func All() []interface{} {
    return []interface{}{
        &User{},
        &Profile{},
        &Follow{},
        &Genre{},
        &Person{},
        &Movie{},
        &Series{},
        &Review{},
        &Comment{},
        &ReviewLike{},
        &Chat{},
        &DirectMessage{},
        &News{},
    }
}
