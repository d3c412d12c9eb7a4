package api

import (
	"strconv"
	"time"

	"finbook/billing"
	"finbook/database"
	"finbook/models"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler 消费记录处理器
type ExpenseHandler struct{}

// NewExpenseHandler 创建消费记录处理器
func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{}
}

// CreateExpenseRequest 创建消费记录请求
type CreateExpenseRequest struct {
	Description       string  `json:"description" binding:"required,max=255" example:"超市购物"`
	TotalAmount       float64 `json:"total_amount" binding:"required,gt=0" example:"600.00"`
	Payer             string  `json:"payer" example:"我"`
	PurchaseDate      string  `json:"purchase_date" binding:"required" example:"2025-07-25"`
	CategoryID        uint    `json:"category_id" binding:"required" example:"1"`
	CardID            *uint   `json:"card_id" example:"1"`
	IsInstallment     bool    `json:"is_installment" example:"true"`
	InstallmentCount  int     `json:"installment_count" example:"3"`
	InstallmentAmount float64 `json:"installment_amount" example:"200.00"`
}

// UpdateExpenseRequest 更新消费记录请求（字段均可选）
// card_id 传 0 表示改为借记/现金支付
type UpdateExpenseRequest struct {
	Description       *string  `json:"description" binding:"omitempty,max=255"`
	TotalAmount       *float64 `json:"total_amount" binding:"omitempty,gt=0"`
	Payer             *string  `json:"payer"`
	PurchaseDate      *string  `json:"purchase_date"`
	CategoryID        *uint    `json:"category_id"`
	CardID            *uint    `json:"card_id"`
	IsInstallment     *bool    `json:"is_installment"`
	InstallmentCount  *int     `json:"installment_count" binding:"omitempty,gte=1"`
	InstallmentAmount *float64 `json:"installment_amount" binding:"omitempty,gt=0"`
}

const dateLayout = "2006-01-02"

// parseYearMonth 解析 year/month 查询参数
func parseYearMonth(c *gin.Context) (int, time.Month, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1970 || year > 2200 {
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, time.Month(month), true
}

// Create 创建消费记录
// @Summary 创建消费记录
// @Description 创建一条消费记录；is_installment=true 时需提供期数和每期金额，查询时按月展开
// @Tags 消费记录
// @Accept json
// @Produce json
// @Param request body CreateExpenseRequest true "消费记录信息"
// @Success 200 {object} Response{data=models.Expense} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 校验类别是否存在（来源于数据库）
	var cat models.Category
	if err := database.DB.First(&cat, req.CategoryID).Error; err != nil {
		BadRequest(c, "无效的消费类别")
		return
	}

	// 指定了卡时校验卡是否存在
	if req.CardID != nil {
		var card models.CreditCard
		if err := database.DB.First(&card, *req.CardID).Error; err != nil {
			BadRequest(c, "无效的信用卡")
			return
		}
	}

	purchaseDate, err := time.ParseInLocation(dateLayout, req.PurchaseDate, time.Local)
	if err != nil {
		BadRequest(c, "日期格式错误，应为: 2006-01-02")
		return
	}

	if req.IsInstallment {
		if req.InstallmentCount < 1 {
			BadRequest(c, "分期期数不能小于 1")
			return
		}
		if req.InstallmentAmount <= 0 {
			BadRequest(c, "每期金额必须大于 0")
			return
		}
	} else {
		// 非分期统一按 1 期处理，每期金额不参与计算
		req.InstallmentCount = 1
		req.InstallmentAmount = 0
	}

	if req.Payer == "" {
		req.Payer = "我"
	}

	expense := models.Expense{
		Description:       req.Description,
		TotalAmount:       req.TotalAmount,
		Payer:             req.Payer,
		PurchaseDate:      purchaseDate,
		IsInstallment:     req.IsInstallment,
		InstallmentCount:  req.InstallmentCount,
		InstallmentAmount: req.InstallmentAmount,
		CategoryID:        req.CategoryID,
		CardID:            req.CardID,
	}

	if err := database.DB.Create(&expense).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建消费记录失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", expense)
}

// List 按月查询消费记录
// @Summary 按月查询消费记录
// @Description 返回指定月份的全部消费发生记录：普通消费 + 分期消费落在当月的期数（虚拟记录），按日期倒序。
// @Description payment_type=debit 时只返回借记/现金（无卡）消费
// @Tags 消费记录
// @Produce json
// @Param year query int true "年份" example(2025)
// @Param month query int true "月份 1-12" example(8)
// @Param payment_type query string false "支付方式筛选，可选值: debit" Enums(debit)
// @Success 200 {object} Response{data=[]billing.Occurrence} "获取成功"
// @Failure 400 {object} Response "缺少 year/month 参数"
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		BadRequest(c, "year 和 month 参数必填")
		return
	}

	start, end := billing.MonthWindow(year, month)
	w := billing.Window{Start: start, End: end}
	// 兼容旧客户端发送的 debito
	if pt := c.Query("payment_type"); pt == "debit" || pt == "debito" {
		w.DebitOnly = true
	}

	occurrences, err := billing.ExpensesInWindow(database.DB, w)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, occurrences)
}

// ListInstallments 查询还款中的分期消费
// @Summary 查询还款中的分期消费
// @Description 返回指定月份仍在还款中的分期消费，installment_index 标记当月是第几期；不传 year/month 默认当前月份
// @Tags 消费记录
// @Produce json
// @Param year query int false "年份" example(2025)
// @Param month query int false "月份 1-12" example(8)
// @Success 200 {object} Response{data=[]billing.Occurrence} "获取成功"
// @Router /api/v1/expenses/installments [get]
func (h *ExpenseHandler) ListInstallments(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		now := time.Now()
		year, month = now.Year(), now.Month()
	}

	occurrences, err := billing.ActiveInstallments(database.DB, year, month)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, occurrences)
}

// Get 获取单条消费记录
// @Summary 获取单条消费记录
// @Tags 消费记录
// @Produce json
// @Param id path int true "消费记录ID"
// @Success 200 {object} Response{data=models.Expense} "获取成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var expense models.Expense
	if err := database.DB.Preload("Category").Preload("Card").First(&expense, uint(id)).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	Success(c, expense)
}

// Update 更新消费记录
// @Summary 更新消费记录
// @Description 部分更新指定的消费记录，未提供的字段保持不变
// @Tags 消费记录
// @Accept json
// @Produce json
// @Param id path int true "消费记录ID"
// @Param request body UpdateExpenseRequest true "更新的字段"
// @Success 200 {object} Response{data=models.Expense} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var expense models.Expense
	if err := database.DB.First(&expense, uint(id)).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	updates := make(map[string]interface{})
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.TotalAmount != nil {
		updates["total_amount"] = *req.TotalAmount
	}
	if req.Payer != nil {
		updates["payer"] = *req.Payer
	}
	if req.PurchaseDate != nil {
		purchaseDate, err := time.ParseInLocation(dateLayout, *req.PurchaseDate, time.Local)
		if err != nil {
			BadRequest(c, "日期格式错误，应为: 2006-01-02")
			return
		}
		updates["purchase_date"] = purchaseDate
	}
	if req.CategoryID != nil {
		var cat models.Category
		if err := database.DB.First(&cat, *req.CategoryID).Error; err != nil {
			BadRequest(c, "无效的消费类别")
			return
		}
		updates["category_id"] = *req.CategoryID
	}
	if req.CardID != nil {
		if *req.CardID == 0 {
			// 0 表示改为借记/现金支付
			updates["card_id"] = nil
		} else {
			var card models.CreditCard
			if err := database.DB.First(&card, *req.CardID).Error; err != nil {
				BadRequest(c, "无效的信用卡")
				return
			}
			updates["card_id"] = *req.CardID
		}
	}
	if req.IsInstallment != nil {
		updates["is_installment"] = *req.IsInstallment
		if !*req.IsInstallment {
			updates["installment_count"] = 1
			updates["installment_amount"] = 0
		}
	}
	if req.InstallmentCount != nil {
		updates["installment_count"] = *req.InstallmentCount
	}
	if req.InstallmentAmount != nil {
		updates["installment_amount"] = *req.InstallmentAmount
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&expense).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "更新失败"))
			return
		}
	}

	// 重新获取更新后的记录
	database.DB.First(&expense, expense.ID)
	SuccessWithMessage(c, "更新成功", expense)
}

// Delete 删除消费记录
// @Summary 删除消费记录
// @Tags 消费记录
// @Produce json
// @Param id path int true "消费记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var expense models.Expense
	if err := database.DB.First(&expense, uint(id)).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	if err := database.DB.Delete(&expense).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
