package api

import (
	"strconv"
	"time"

	"finbook/database"
	"finbook/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GoalHandler 储蓄目标处理器
type GoalHandler struct{}

// NewGoalHandler 创建储蓄目标处理器
func NewGoalHandler() *GoalHandler {
	return &GoalHandler{}
}

// CreateGoalRequest 创建储蓄目标请求
type CreateGoalRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=100" example:"旅行基金"`
	TargetAmount float64 `json:"target_amount" binding:"required,gt=0" example:"25000"`
	TargetDate   string  `json:"target_date" binding:"required" example:"2026-10-01"`
}

// CreateContributionRequest 目标存入请求
type CreateContributionRequest struct {
	Amount        float64 `json:"amount" binding:"required,gt=0" example:"500"`
	Contributor   string  `json:"contributor" binding:"required,min=1,max=50" example:"我"`
	ContributedAt string  `json:"contributed_at" binding:"required" example:"2025-08-15"`
}

// Create 创建储蓄目标
// @Summary 创建储蓄目标
// @Tags 储蓄目标
// @Accept json
// @Produce json
// @Param request body CreateGoalRequest true "目标信息"
// @Success 200 {object} Response{data=models.Goal} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Router /api/v1/goals [post]
func (h *GoalHandler) Create(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	targetDate, err := time.ParseInLocation(dateLayout, req.TargetDate, time.Local)
	if err != nil {
		BadRequest(c, "日期格式错误，应为: 2006-01-02")
		return
	}

	goal := models.Goal{
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		TargetDate:   targetDate,
	}
	if err := database.DB.Create(&goal).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建失败"))
		return
	}
	goal.Contributions = []models.Contribution{}
	SuccessWithMessage(c, "创建成功", goal)
}

// List 获取储蓄目标列表
// @Summary 获取储蓄目标列表
// @Description 返回全部储蓄目标及其存入记录，current_amount 为存入金额之和（查询时计算）
// @Tags 储蓄目标
// @Produce json
// @Success 200 {object} Response{data=[]models.Goal} "获取成功"
// @Router /api/v1/goals [get]
func (h *GoalHandler) List(c *gin.Context) {
	var goals []models.Goal
	if err := database.DB.Preload("Contributions").Order("created_at ASC").Find(&goals).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	for i := range goals {
		goals[i].CurrentAmount = goals[i].SumContributions()
	}
	Success(c, goals)
}

// Delete 删除储蓄目标
// @Summary 删除储蓄目标
// @Description 删除目标并级联删除其全部存入记录
// @Tags 储蓄目标
// @Produce json
// @Param id path int true "目标ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "目标不存在"
// @Router /api/v1/goals/{id} [delete]
func (h *GoalHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var goal models.Goal
	if err := database.DB.First(&goal, uint(id)).Error; err != nil {
		NotFound(c, "目标不存在")
		return
	}

	// 目标和存入记录在同一事务中删除
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("goal_id = ?", goal.ID).Delete(&models.Contribution{}).Error; err != nil {
			return err
		}
		return tx.Delete(&goal).Error
	})
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}

// CreateContribution 向目标存入
// @Summary 向储蓄目标存入
// @Tags 储蓄目标
// @Accept json
// @Produce json
// @Param id path int true "目标ID"
// @Param request body CreateContributionRequest true "存入信息"
// @Success 200 {object} Response{data=models.Contribution} "存入成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "目标不存在"
// @Router /api/v1/goals/{id}/contributions [post]
func (h *GoalHandler) CreateContribution(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var goal models.Goal
	if err := database.DB.First(&goal, uint(id)).Error; err != nil {
		NotFound(c, "目标不存在")
		return
	}

	var req CreateContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	contributedAt, err := time.ParseInLocation(dateLayout, req.ContributedAt, time.Local)
	if err != nil {
		BadRequest(c, "日期格式错误，应为: 2006-01-02")
		return
	}

	contribution := models.Contribution{
		Amount:        req.Amount,
		Contributor:   req.Contributor,
		ContributedAt: contributedAt,
		GoalID:        goal.ID,
	}
	if err := database.DB.Create(&contribution).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "存入失败"))
		return
	}
	SuccessWithMessage(c, "存入成功", contribution)
}

// DeleteContribution 删除存入记录
// @Summary 删除存入记录
// @Tags 储蓄目标
// @Produce json
// @Param id path int true "存入记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/contributions/{id} [delete]
func (h *GoalHandler) DeleteContribution(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var contribution models.Contribution
	if err := database.DB.First(&contribution, uint(id)).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	if err := database.DB.Delete(&contribution).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}
