package database

import (
	"fmt"
	"log"

	"finbook/config"
	"finbook/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init 初始化数据库连接
// driver=sqlite 时使用单文件数据库（桌面部署），driver=mysql 时连接 MySQL
func Init(cfg *config.Config) error {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "sqlite", "":
		path := cfg.Database.Path
		if path == "" {
			path = "finbook.db"
		}
		dialector = sqlite.Open(path)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
			cfg.Database.Username,
			cfg.Database.Password,
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.DBName,
			cfg.Database.Charset,
		)
		dialector = mysql.Open(dsn)
	default:
		return fmt.Errorf("不支持的数据库驱动: %s", cfg.Database.Driver)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	// 获取底层 *sql.DB 连接池配置
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// 设置连接池参数；sqlite 单写者，限制为单连接避免 database is locked
	if cfg.Database.Driver == "mysql" {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	} else {
		sqlDB.SetMaxOpenConns(1)
	}

	// 自动迁移数据库表
	if err := DB.AutoMigrate(
		&models.Category{},
		&models.CreditCard{},
		&models.Expense{},
		&models.Goal{},
		&models.Contribution{},
	); err != nil {
		return err
	}

	// 初始化默认消费类别（仅当表为空时）
	var catCount int64
	DB.Model(&models.Category{}).Count(&catCount)
	if catCount == 0 {
		var cats []models.Category
		for _, name := range models.DefaultCategories() {
			cats = append(cats, models.Category{Name: name, Active: true})
		}
		if len(cats) > 0 {
			_ = DB.Create(&cats).Error
		}
	}

	log.Println("数据库初始化成功")
	return nil
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return DB
}
