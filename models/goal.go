package models

import (
	"time"
)

// Goal 储蓄目标模型
// CurrentAmount 为存入记录金额之和，查询时计算，不落库
type Goal struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Name          string         `json:"name" gorm:"size:100;not null;index"`
	TargetAmount  float64        `json:"target_amount" gorm:"type:decimal(12,2);not null"`
	TargetDate    time.Time      `json:"target_date" gorm:"not null"`
	CurrentAmount float64        `json:"current_amount" gorm:"-"`
	Contributions []Contribution `json:"contributions" gorm:"foreignKey:GoalID"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// TableName 设置表名
func (Goal) TableName() string {
	return "goals"
}

// SumContributions 计算已存入总额
func (g *Goal) SumContributions() float64 {
	var total float64
	for _, c := range g.Contributions {
		total += c.Amount
	}
	return total
}
