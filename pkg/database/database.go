package database

import (
	"fmt"
	"log"

	"career_path_backend/internal/config"
	"career_path_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Test{},
		&model.TestResult{},
		&model.LearningPlan{},
		&model.ResultFeedback{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Built-in catalog so a fresh install has something to take.
	var count int64
	db.Model(&model.Test{}).Count(&count)
	if count == 0 {
		for _, t := range defaultTests() {
			db.Create(&t)
		}
	}

	return db, nil
}
