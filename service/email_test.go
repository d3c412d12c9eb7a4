package service

import (
	"testing"
	"time"

	"finbook/billing"
	"finbook/config"
	"finbook/models"

	"github.com/stretchr/testify/assert"
)

func newTestEmailService() *EmailService {
	return NewEmailService(&config.EmailConfig{})
}

func testStatement() Statement {
	cat := &models.Category{ID: 1, Name: "购物"}
	return Statement{
		CardName:    "招行信用卡",
		Year:        2025,
		Month:       9,
		PeriodStart: "2025-08-20",
		PeriodEnd:   "2025-09-19",
		Total:       320.50,
		Occurrences: []billing.Occurrence{
			{
				Expense: models.Expense{
					ID:               1,
					Description:      "新手机",
					IsInstallment:    true,
					InstallmentCount: 12,
					Category:         cat,
				},
				Amount:           250,
				OccurrenceDate:   time.Date(2025, 9, 5, 0, 0, 0, 0, time.Local),
				InstallmentIndex: 3,
			},
			{
				Expense: models.Expense{ID: 2, Description: "打车", Category: cat},
				Amount:  70.50,
				OccurrenceDate: time.Date(2025, 8, 25, 0, 0, 0, 0, time.Local),
			},
		},
	}
}

func TestGenerateStatementBody(t *testing.T) {
	s := newTestEmailService()
	body := s.generateStatementBody(testStatement())

	assert.Contains(t, body, "招行信用卡")
	assert.Contains(t, body, "2025年9月账单")
	assert.Contains(t, body, "2025-08-20")
	assert.Contains(t, body, "2025-09-19")
	assert.Contains(t, body, "新手机")
	// 分期显示第几期
	assert.Contains(t, body, "3/12")
	// 金额为本期应还，不是购买总额
	assert.Contains(t, body, "250.00")
	assert.Contains(t, body, "320.50")
}

func TestSendStatement_Disabled(t *testing.T) {
	s := newTestEmailService()
	err := s.SendStatement("a@example.com", testStatement())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "未启用")
}

func TestSendStatement_NoRecipient(t *testing.T) {
	s := NewEmailService(&config.EmailConfig{Enabled: true})
	err := s.SendStatement("", testStatement())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "收件地址")
}
