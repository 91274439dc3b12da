package model

import (
	"time"
)

// swagger:model User
type User struct {
	BaseModel
	Username      string `gorm:"size:100;unique;not null" json:"username"`
	TotalXP       int    `gorm:"default:0" json:"totalXp"`
	CurrentStreak int    `gorm:"default:0" json:"currentStreak"`
	BestStreak    int    `gorm:"default:0" json:"bestStreak"`
	// 最近一次获得经验的日期（只比较日期部分）
	LastActiveDate *time.Time `json:"lastActiveDate"`
}

func (User) TableName() string {
	return "users"
}
