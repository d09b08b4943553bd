package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lexora.app/lawstudybackend/internal/ai"
	"lexora.app/lawstudybackend/internal/config"
	"lexora.app/lawstudybackend/internal/model"
	"lexora.app/lawstudybackend/internal/server"
	"lexora.app/lawstudybackend/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if cfg.AppEnv == "development" {
		if err := seedAdminUser(db); err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(opts)
	} else {
		log.Println("REDIS_URL not set, login rate limiting disabled")
	}

	var generator ai.Generator
	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("failed to initialize gemini client: %v", err)
		}
		defer gemini.Close()
		generator = gemini
	} else {
		log.Println("GEMINI_API_KEY not set, summary and quiz generation will fail until configured")
	}

	srv := server.New(cfg, db, rdb, generator)

	log.Printf("server listening on port %s", cfg.Port)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Case{},
		&model.Note{},
	); err != nil {
		return err
	}

	// studentId must be unique among students only; other roles may
	// leave it null or reuse values
	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_student_id
		 ON users (student_id) WHERE role = 'student'`,
	).Error
}

func seedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).
		Where("email = ?", "admin@lexora.app").
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping seed")
		return nil
	}

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	hash := string(hashedPasswordBytes)
	adminUser := model.User{
		FullName:     "Administrator",
		Email:        "admin@lexora.app",
		PasswordHash: &hash,
		Role:         model.RoleAdmin,
	}

	if err := db.Create(&adminUser).Error; err != nil {
		return err
	}

	log.Println("Admin user seeded successfully")
	log.Println("   Email: admin@lexora.app")
	log.Println("   Password: admin123")

	return nil
}
