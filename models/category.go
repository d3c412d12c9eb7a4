package models

import (
	"time"
)

// Category 消费类别模型
// 被消费记录引用的类别删除时只停用（Active=false），未被引用的直接物理删除
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:50;not null;uniqueIndex"`
	Active    bool      `json:"active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 设置表名
func (Category) TableName() string {
	return "categories"
}

// DefaultCategories 默认消费类别（仅在类别表为空时初始化）
func DefaultCategories() []string {
	return []string{
		"餐饮",
		"交通",
		"购物",
		"娱乐",
		"医疗",
		"教育",
		"住房",
		"其他",
	}
}
