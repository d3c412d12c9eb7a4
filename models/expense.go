package models

import (
	"time"
)

// Expense 消费记录模型
// 普通消费直接按 purchase_date 入账；信用卡分期消费（is_installment=true）
// 在查询时按月展开为多条虚拟记录，不额外落库
type Expense struct {
	ID                uint        `json:"id" gorm:"primaryKey"`
	Description       string      `json:"description" gorm:"size:255"`
	TotalAmount       float64     `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	Payer             string      `json:"payer" gorm:"size:50;index"`
	PurchaseDate      time.Time   `json:"purchase_date" gorm:"not null;index"`
	IsInstallment     bool        `json:"is_installment" gorm:"default:false;index"`
	InstallmentCount  int         `json:"installment_count" gorm:"default:1"`
	InstallmentAmount float64     `json:"installment_amount" gorm:"type:decimal(10,2)"`
	CategoryID        uint        `json:"category_id" gorm:"index;not null"`
	Category          *Category   `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CardID            *uint       `json:"card_id" gorm:"index"` // 为空表示借记/现金支付
	Card              *CreditCard `json:"card,omitempty" gorm:"foreignKey:CardID"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

// Installments 有效期数，非分期消费按 1 期处理
func (e *Expense) Installments() int {
	if !e.IsInstallment || e.InstallmentCount < 1 {
		return 1
	}
	return e.InstallmentCount
}
