package router

import (
	"time"

	"finbook/api"
	"finbook/config"
	_ "finbook/docs"
	"finbook/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// 状态页
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "记账系统 API 运行中",
		})
	})

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 路由组
	v1 := r.Group("/api/v1")
	{
		// 消费记录
		expenseHandler := api.NewExpenseHandler()
		expenses := v1.Group("/expenses")
		{
			expenses.POST("", expenseHandler.Create)
			expenses.GET("", expenseHandler.List)
			expenses.GET("/installments", expenseHandler.ListInstallments)
			expenses.GET("/:id", expenseHandler.Get)
			expenses.PUT("/:id", expenseHandler.Update)
			expenses.DELETE("/:id", expenseHandler.Delete)
		}

		// 消费类别
		categoryHandler := api.NewCategoryHandler()
		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.POST("", categoryHandler.Create)
			categories.DELETE("/:id", categoryHandler.Delete)
		}

		// 信用卡与账单
		cardHandler := api.NewCardHandler(cfg)
		cards := v1.Group("/cards")
		{
			cards.POST("", cardHandler.Create)
			cards.GET("", cardHandler.List)
			cards.DELETE("/:id", cardHandler.Deactivate)
			cards.POST("/:id/reactivate", cardHandler.Reactivate)
			cards.GET("/:id/statement", cardHandler.Statement)
			// 邮件发送有外部副作用，限流防止误触发打爆 SMTP
			cards.POST("/:id/statement/email",
				middleware.RateLimit(5, time.Minute), cardHandler.EmailStatement)
		}

		// 储蓄目标
		goalHandler := api.NewGoalHandler()
		goals := v1.Group("/goals")
		{
			goals.POST("", goalHandler.Create)
			goals.GET("", goalHandler.List)
			goals.DELETE("/:id", goalHandler.Delete)
			goals.POST("/:id/contributions", goalHandler.CreateContribution)
		}
		v1.DELETE("/contributions/:id", goalHandler.DeleteContribution)

		// 统计
		summaryHandler := api.NewSummaryHandler()
		v1.GET("/summary", summaryHandler.GetMonthlySummary)

		// 导出
		exportHandler := api.NewExportHandler()
		export := v1.Group("/export")
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/json", exportHandler.ExportJSON)
			export.GET("/excel", exportHandler.ExportExcel)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
