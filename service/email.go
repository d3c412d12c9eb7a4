package service

import (
	"fmt"
	"strings"

	"finbook/billing"
	"finbook/config"

	"gopkg.in/gomail.v2"
)

// EmailService 邮件服务
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// Statement 待发送的账单内容
type Statement struct {
	CardName    string
	Year        int
	Month       int
	PeriodStart string
	PeriodEnd   string
	Total       float64
	Occurrences []billing.Occurrence
}

// SendStatement 发送账单邮件
// to 为空时发送到配置的默认收件地址
func (s *EmailService) SendStatement(to string, stmt Statement) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用，请配置 FINBOOK_EMAIL_ENABLED=true")
	}
	if to == "" {
		to = s.cfg.To
	}
	if to == "" {
		return fmt.Errorf("未指定收件地址")
	}

	subject := fmt.Sprintf("【记账系统】%s %d年%d月账单", stmt.CardName, stmt.Year, stmt.Month)
	body := s.generateStatementBody(stmt)

	return s.sendEmail(to, subject, body)
}

// generateStatementBody 生成账单邮件内容
func (s *EmailService) generateStatementBody(stmt Statement) string {
	var rows strings.Builder
	for _, o := range stmt.Occurrences {
		installment := "-"
		if o.IsInstallment {
			installment = fmt.Sprintf("%d/%d", o.InstallmentIndex, o.InstallmentCount)
		}
		category := ""
		if o.Category != nil {
			category = o.Category.Name
		}
		rows.WriteString(fmt.Sprintf(`
            <tr>
                <td>%s</td>
                <td>%s</td>
                <td>%s</td>
                <td>%s</td>
                <td class="amount">%.2f</td>
            </tr>`,
			o.OccurrenceDate.Format("2006-01-02"), o.Description, category, installment, o.Amount))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: 'Microsoft YaHei', Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 640px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #2563eb, #1d4ed8); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 22px; }
        .content { padding: 30px; }
        .period { color: #6c757d; font-size: 14px; margin-bottom: 20px; }
        table { width: 100%%; border-collapse: collapse; font-size: 14px; }
        th { background: #f8f9fa; text-align: left; padding: 10px; border-bottom: 2px solid #dee2e6; }
        td { padding: 10px; border-bottom: 1px solid #eee; color: #333; }
        .amount { text-align: right; }
        .total { font-size: 18px; font-weight: 600; text-align: right; padding: 20px 10px 0; color: #1d4ed8; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>💳 %s %d年%d月账单</h1>
        </div>
        <div class="content">
            <p class="period">账单周期: %s ～ %s（共 %d 笔）</p>
            <table>
                <tr><th>日期</th><th>描述</th><th>类别</th><th>分期</th><th style="text-align:right">金额</th></tr>%s
            </table>
            <p class="total">本期应还: %.2f</p>
        </div>
        <div class="footer">
            <p>此邮件由系统自动发送，请勿回复</p>
            <p>© 记账系统 - 您的个人财务管理助手</p>
        </div>
    </div>
</body>
</html>
`, stmt.CardName, stmt.Year, stmt.Month,
		stmt.PeriodStart, stmt.PeriodEnd, len(stmt.Occurrences), rows.String(), stmt.Total)
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	return nil
}

// SendTestEmail 发送测试邮件
func (s *EmailService) SendTestEmail(toEmail string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用")
	}

	subject := "【记账系统】邮件配置测试"
	body := `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>✅ 邮件配置成功</h2>
    <p>如果您收到这封邮件，说明邮件服务配置正确。</p>
    <p style="color: #666;">—— 记账系统</p>
</body>
</html>
`
	return s.sendEmail(toEmail, subject, body)
}
