package api

import (
	"sort"

	"finbook/billing"
	"finbook/database"

	"github.com/gin-gonic/gin"
)

// SummaryHandler 统计处理器
type SummaryHandler struct{}

// NewSummaryHandler 创建统计处理器
func NewSummaryHandler() *SummaryHandler {
	return &SummaryHandler{}
}

// CategoryStat 按类别统计
type CategoryStat struct {
	CategoryID uint    `json:"category_id"`
	Category   string  `json:"category"`
	Total      float64 `json:"total"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// GetMonthlySummary 获取月度消费统计
// @Summary 获取月度消费统计
// @Description 按月统计消费发生记录（含分期消费当月应还的期数）：总额、借记/信用卡拆分、按类别统计。
// @Description 统计基于按月展开后的虚拟记录，分期消费只计入当月那一期的金额
// @Tags 统计
// @Produce json
// @Param year query int true "年份" example(2025)
// @Param month query int true "月份 1-12" example(8)
// @Success 200 {object} Response "获取成功"
// @Failure 400 {object} Response "缺少 year/month 参数"
// @Router /api/v1/summary [get]
func (h *SummaryHandler) GetMonthlySummary(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		BadRequest(c, "year 和 month 参数必填")
		return
	}

	start, end := billing.MonthWindow(year, month)
	occurrences, err := billing.ExpensesInWindow(database.DB, billing.Window{Start: start, End: end})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	var totalAmount, debitAmount, cardAmount float64
	statIndex := map[uint]*CategoryStat{}
	for _, o := range occurrences {
		totalAmount += o.Amount
		if o.CardID == nil {
			debitAmount += o.Amount
		} else {
			cardAmount += o.Amount
		}

		stat, ok := statIndex[o.CategoryID]
		if !ok {
			stat = &CategoryStat{CategoryID: o.CategoryID}
			if o.Category != nil {
				stat.Category = o.Category.Name
			}
			statIndex[o.CategoryID] = stat
		}
		stat.Total += o.Amount
		stat.Count++
	}

	categoryStats := make([]CategoryStat, 0, len(statIndex))
	for _, stat := range statIndex {
		if totalAmount > 0 {
			stat.Percentage = (stat.Total / totalAmount) * 100
		}
		categoryStats = append(categoryStats, *stat)
	}
	sort.Slice(categoryStats, func(i, j int) bool {
		return categoryStats[i].Total > categoryStats[j].Total
	})

	Success(c, gin.H{
		"year":           year,
		"month":          int(month),
		"total_amount":   totalAmount,
		"debit_amount":   debitAmount,
		"card_amount":    cardAmount,
		"total_count":    len(occurrences),
		"category_stats": categoryStats,
	})
}
