package api

import (
	"strconv"
	"strings"

	"finbook/database"
	"finbook/models"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 消费类别管理
type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

type CategoryCreateRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// List 列出启用中的类别
// @Summary 获取消费类别列表
// @Description 获取所有启用中的消费类别，按名称排序；被删除但仍被消费记录引用的类别不在列表中
// @Tags 消费类别
// @Produce json
// @Success 200 {object} Response{data=[]models.Category} "获取成功"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	var list []models.Category
	if err := database.DB.Where("active = ?", true).Order("name ASC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, list)
}

// Create 创建类别
// @Summary 创建消费类别
// @Description 创建新的消费类别；同名类别已停用时重新启用它，同名类别仍启用时返回 409
// @Tags 消费类别
// @Accept json
// @Produce json
// @Param request body CategoryCreateRequest true "类别信息"
// @Success 200 {object} Response{data=models.Category} "创建成功"
// @Failure 400 {object} Response "参数错误"
// @Failure 409 {object} Response "类别名称已存在"
// @Router /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		BadRequest(c, "名称不能为空")
		return
	}

	// 同名类别：停用的重新启用，启用中的报冲突
	var existing models.Category
	if err := database.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		if existing.Active {
			Conflict(c, "类别名称已存在")
			return
		}
		if err := database.DB.Model(&existing).Update("active", true).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "创建失败"))
			return
		}
		existing.Active = true
		SuccessWithMessage(c, "类别已重新启用", existing)
		return
	}

	cat := models.Category{Name: req.Name, Active: true}
	if err := database.DB.Create(&cat).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建失败"))
		return
	}
	SuccessWithMessage(c, "创建成功", cat)
}

// Delete 删除类别
// @Summary 删除消费类别
// @Description 未被任何消费记录引用的类别直接删除；被引用的只停用，保证历史记录仍能关联到类别
// @Tags 消费类别
// @Produce json
// @Param id path int true "类别ID"
// @Success 200 {object} Response "删除成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 404 {object} Response "类别不存在"
// @Router /api/v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	var cat models.Category
	if err := database.DB.First(&cat, uint(id64)).Error; err != nil {
		NotFound(c, "类别不存在")
		return
	}

	var refCount int64
	if err := database.DB.Model(&models.Expense{}).Where("category_id = ?", cat.ID).Count(&refCount).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	if refCount > 0 {
		if err := database.DB.Model(&cat).Update("active", false).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "删除失败"))
			return
		}
		SuccessWithMessage(c, "类别使用中，已停用。修改相关消费记录后可永久删除", gin.H{"status": "soft_deleted"})
		return
	}

	if err := database.DB.Delete(&cat).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}
	SuccessWithMessage(c, "删除成功", gin.H{"status": "hard_deleted"})
}
