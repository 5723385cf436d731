package config

import (
	"fmt"
	"log"

	"authentix-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "authentix"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Failed to connect to database!")
	}

	log.Println("Database connected")

	// Auto Migration: create the registry tables from the model structs
	db.AutoMigrate(&model.Brand{})
	db.AutoMigrate(&model.Product{})
	db.AutoMigrate(&model.Activation{})
	db.AutoMigrate(&model.User{})

	DB = db
}
