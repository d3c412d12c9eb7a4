package api

import (
	"strconv"
	"strings"
	"time"

	"finbook/billing"
	"finbook/config"
	"finbook/database"
	"finbook/models"
	"finbook/service"

	"github.com/gin-gonic/gin"
)

// CardHandler 信用卡处理器
type CardHandler struct {
	email *service.EmailService
}

// NewCardHandler 创建信用卡处理器
func NewCardHandler(cfg *config.Config) *CardHandler {
	return &CardHandler{email: service.NewEmailService(&cfg.Email)}
}

// CreateCardRequest 创建信用卡请求
type CreateCardRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=50" example:"招行信用卡"`
	ClosingDay int    `json:"closing_day" binding:"required,min=1,max=31" example:"20"`
}

// StatementResponse 账单查询响应
type StatementResponse struct {
	PeriodStart string               `json:"period_start" example:"2025-08-20"`
	PeriodEnd   string               `json:"period_end" example:"2025-09-19"`
	Total       float64              `json:"total" example:"1234.56"`
	Occurrences []billing.Occurrence `json:"occurrences"`
}

// Create 创建信用卡
// @Summary 创建信用卡
// @Description 创建信用卡，closing_day 为每月账单日（1-31），超过当月天数时按当月最后一天出账
// @Tags 信用卡
// @Accept json
// @Produce json
// @Param request body CreateCardRequest true "信用卡信息"
// @Success 200 {object} Response{data=models.CreditCard} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 409 {object} Response "卡名已存在"
// @Router /api/v1/cards [post]
func (h *CardHandler) Create(c *gin.Context) {
	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		BadRequest(c, "卡名不能为空")
		return
	}

	var existing models.CreditCard
	if err := database.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		Conflict(c, "卡名已存在")
		return
	}

	card := models.CreditCard{Name: req.Name, ClosingDay: req.ClosingDay, Active: true}
	if err := database.DB.Create(&card).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建失败"))
		return
	}
	SuccessWithMessage(c, "创建成功", card)
}

// List 获取信用卡列表
// @Summary 获取信用卡列表
// @Description 获取信用卡列表，按名称排序；默认只返回启用中的卡，include_inactive=true 时包含已停用的
// @Tags 信用卡
// @Produce json
// @Param include_inactive query bool false "是否包含已停用的卡" default(false)
// @Success 200 {object} Response{data=[]models.CreditCard} "获取成功"
// @Router /api/v1/cards [get]
func (h *CardHandler) List(c *gin.Context) {
	query := database.DB.Model(&models.CreditCard{})
	if c.Query("include_inactive") != "true" {
		query = query.Where("active = ?", true)
	}

	var cards []models.CreditCard
	if err := query.Order("name ASC").Find(&cards).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, cards)
}

// Deactivate 停用信用卡
// @Summary 停用信用卡
// @Description 停用指定的信用卡；不做物理删除，历史消费记录仍关联到该卡
// @Tags 信用卡
// @Produce json
// @Param id path int true "信用卡ID"
// @Success 200 {object} Response{data=models.CreditCard} "停用成功"
// @Failure 404 {object} Response "卡不存在"
// @Router /api/v1/cards/{id} [delete]
func (h *CardHandler) Deactivate(c *gin.Context) {
	card, ok := h.findCard(c)
	if !ok {
		return
	}
	if err := database.DB.Model(card).Update("active", false).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "停用失败"))
		return
	}
	card.Active = false
	SuccessWithMessage(c, "已停用", card)
}

// Reactivate 重新启用信用卡
// @Summary 重新启用信用卡
// @Tags 信用卡
// @Produce json
// @Param id path int true "信用卡ID"
// @Success 200 {object} Response{data=models.CreditCard} "启用成功"
// @Failure 404 {object} Response "卡不存在"
// @Router /api/v1/cards/{id}/reactivate [post]
func (h *CardHandler) Reactivate(c *gin.Context) {
	card, ok := h.findCard(c)
	if !ok {
		return
	}
	if err := database.DB.Model(card).Update("active", true).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "启用失败"))
		return
	}
	card.Active = true
	SuccessWithMessage(c, "已启用", card)
}

// Statement 查询信用卡某期账单
// @Summary 查询信用卡账单
// @Description 返回 (year, month) 期账单的消费明细和区间。账单区间为 [上月账单日, 本月账单日前一天]，
// @Description 账单日当天的消费计入下一期；分期消费只计入落在区间内的那一期金额
// @Tags 信用卡
// @Produce json
// @Param id path int true "信用卡ID"
// @Param year query int true "年份" example(2025)
// @Param month query int true "月份 1-12" example(9)
// @Success 200 {object} Response{data=StatementResponse} "获取成功"
// @Failure 400 {object} Response "缺少 year/month 参数"
// @Failure 404 {object} Response "卡不存在"
// @Router /api/v1/cards/{id}/statement [get]
func (h *CardHandler) Statement(c *gin.Context) {
	card, ok := h.findCard(c)
	if !ok {
		return
	}
	year, month, ok := parseYearMonth(c)
	if !ok {
		BadRequest(c, "year 和 month 参数必填")
		return
	}

	resp, err := h.buildStatement(card, year, month)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, resp)
}

// EmailStatement 邮件发送信用卡账单
// @Summary 邮件发送信用卡账单
// @Description 将 (year, month) 期账单明细以 HTML 邮件发送到配置的收件地址（或请求中指定的地址）
// @Tags 信用卡
// @Accept json
// @Produce json
// @Param id path int true "信用卡ID"
// @Param year query int true "年份" example(2025)
// @Param month query int true "月份 1-12" example(9)
// @Success 200 {object} Response "发送成功"
// @Failure 400 {object} Response "参数错误或邮件服务未启用"
// @Failure 404 {object} Response "卡不存在"
// @Router /api/v1/cards/{id}/statement/email [post]
func (h *CardHandler) EmailStatement(c *gin.Context) {
	card, ok := h.findCard(c)
	if !ok {
		return
	}
	year, month, ok := parseYearMonth(c)
	if !ok {
		BadRequest(c, "year 和 month 参数必填")
		return
	}

	// 请求体可选，不传时发送到配置的收件地址
	var req struct {
		To string `json:"to" binding:"omitempty,email"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			BadRequest(c, SafeErrorMessage(err, "参数错误"))
			return
		}
	}

	resp, err := h.buildStatement(card, year, month)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	stmt := service.Statement{
		CardName:    card.Name,
		Year:        year,
		Month:       int(month),
		PeriodStart: resp.PeriodStart,
		PeriodEnd:   resp.PeriodEnd,
		Total:       resp.Total,
		Occurrences: resp.Occurrences,
	}
	if err := h.email.SendStatement(req.To, stmt); err != nil {
		BadRequest(c, SafeErrorMessage(err, "邮件发送失败"))
		return
	}
	SuccessWithMessage(c, "账单邮件已发送", nil)
}

// findCard 解析路径中的卡 ID 并加载卡，失败时已写入响应
func (h *CardHandler) findCard(c *gin.Context) (*models.CreditCard, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return nil, false
	}
	var card models.CreditCard
	if err := database.DB.First(&card, uint(id)).Error; err != nil {
		NotFound(c, "卡不存在")
		return nil, false
	}
	return &card, true
}

// buildStatement 解析账单区间并物化区间内的消费
func (h *CardHandler) buildStatement(card *models.CreditCard, year int, month time.Month) (*StatementResponse, error) {
	start, end := billing.ResolvePeriod(year, month, card.ClosingDay)

	// ExpensesInWindow 是半开区间，账单 end 为闭区间最后一天
	occurrences, err := billing.ExpensesInWindow(database.DB, billing.Window{
		Start:  start,
		End:    end.AddDate(0, 0, 1),
		CardID: &card.ID,
	})
	if err != nil {
		return nil, err
	}

	var total float64
	for _, o := range occurrences {
		total += o.Amount
	}

	return &StatementResponse{
		PeriodStart: start.Format(dateLayout),
		PeriodEnd:   end.Format(dateLayout),
		Total:       total,
		Occurrences: occurrences,
	}, nil
}
