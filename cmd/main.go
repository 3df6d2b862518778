package main

import (
	"context"
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	v1 "recipebook/api/v1"
	"recipebook/config"
	"recipebook/dao"
	"recipebook/internal/auth"
	"recipebook/middleware"
	"recipebook/model"
	"recipebook/service"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	rdb, err := config.NewRedis(context.Background(), cfg.Redis)
	if err != nil {
		log.Fatalf("connect redis: %v", err)
	}

	db, err := gorm.Open(mysql.Open(cfg.MySQL.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("connect mysql: %v", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Recipe{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	// Schema-level second layer behind the application validator. Fails
	// harmlessly when the constraint already exists.
	if err := db.Exec("ALTER TABLE recipes ADD CONSTRAINT chk_recipes_instructions CHECK (char_length(instructions) >= 50)").Error; err != nil {
		log.Printf("instructions check constraint: %v", err)
	}

	ttl := time.Duration(cfg.Session.TTL) * time.Second
	sessions := auth.NewSessionManager(rdb, ttl)
	tokens := auth.NewTokenManager(cfg.Session.Secret, ttl)

	userDAO := dao.NewUserDAO(db)
	recipeDAO := dao.NewRecipeDAO(db)
	userService := service.NewUserService(userDAO, sessions, tokens)
	recipeService := service.NewRecipeService(recipeDAO)
	userAPI := v1.NewUserAPI(userService, cfg.Session)
	recipeAPI := v1.NewRecipeAPI(recipeService)

	r := v1.SetupRouter(userAPI, recipeAPI, middleware.SessionAuth(cfg.Session.CookieName, tokens, sessions))

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
