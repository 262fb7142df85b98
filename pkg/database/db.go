package database

import (
	"SketchShare/config"
	"SketchShare/models"
	"SketchShare/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.MySQL.Dsn()
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		// 把驱动层的唯一键冲突翻译成 gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Like{},
		&models.Report{},
	); err != nil {
		log.L.Fatal("failed to migrate database", zap.Error(err))
	}

	log.L.Info("connect database success")
	return db
}
