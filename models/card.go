package models

import (
	"time"
)

// CreditCard 信用卡模型
// ClosingDay 为每月账单日（1-31），账单日超过当月天数时按当月最后一天出账
type CreditCard struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:50;not null;uniqueIndex"`
	ClosingDay int       `json:"closing_day" gorm:"not null"`
	Active     bool      `json:"active" gorm:"default:true"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName 设置表名
func (CreditCard) TableName() string {
	return "credit_cards"
}
