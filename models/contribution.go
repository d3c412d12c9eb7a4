package models

import (
	"time"
)

// Contribution 储蓄目标的存入记录
type Contribution struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Amount        float64   `json:"amount" gorm:"type:decimal(12,2);not null"`
	Contributor   string    `json:"contributor" gorm:"size:50;not null;index"`
	ContributedAt time.Time `json:"contributed_at" gorm:"not null"`
	GoalID        uint      `json:"goal_id" gorm:"index;not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName 设置表名
func (Contribution) TableName() string {
	return "contributions"
}
