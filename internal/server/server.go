package server

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"lexora.app/lawstudybackend/internal/ai"
	"lexora.app/lawstudybackend/internal/config"
	"lexora.app/lawstudybackend/internal/handler"
	"lexora.app/lawstudybackend/internal/middleware"
	"lexora.app/lawstudybackend/internal/repository"
	"lexora.app/lawstudybackend/internal/service"
)

type Server struct {
	engine *gin.Engine
	db     *gorm.DB
}

func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, generator ai.Generator) *Server {
	userRepo := repository.NewUserRepository(db)
	caseRepo := repository.NewCaseRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	tokens := service.NewTokenService(cfg)

	authSvc := service.NewAuthService(userRepo, tokens, service.NewLoginLimiter(rdb))
	authHandler := handler.NewAuthHandler(authSvc, tokens)

	caseSvc := service.NewCaseService(caseRepo, generator)
	caseHandler := handler.NewCaseHandler(caseSvc)

	noteSvc := service.NewNoteService(noteRepo)
	noteHandler := handler.NewNoteHandler(noteSvc)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	setupCORS(router, cfg)

	authMiddleware := middleware.NewAuthMiddleware(tokens, userRepo)

	router.GET("/test", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "testing entry point"})
	})

	api := router.Group("/api")

	auth := api.Group("/Auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.POST("/refresh-token", authHandler.RefreshToken)
		auth.POST("/ask-ai/increment", authMiddleware.RequireAuth(), authHandler.IncrementAskAI)
	}

	cases := api.Group("/Case")
	cases.Use(authMiddleware.RequireAuth())
	{
		// Mutations are admin-only; reads and quiz generation are open
		// to any authenticated user
		cases.POST("", authMiddleware.RequireAdmin(), caseHandler.CreateCase)
		cases.GET("", caseHandler.GetAllCases)
		cases.GET("/:id", caseHandler.GetSingleCase)
		cases.PATCH("/:id", authMiddleware.RequireAdmin(), caseHandler.UpdateCase)
		cases.DELETE("/:id", authMiddleware.RequireAdmin(), caseHandler.DeleteCase)

		cases.POST("/:id/quiz/generate", caseHandler.GenerateQuiz)
		cases.GET("/:id/quiz", caseHandler.GetQuiz)
		cases.PUT("/:id/quiz/regenerate", caseHandler.RegenerateQuiz)
	}

	notes := api.Group("/Note")
	notes.Use(authMiddleware.RequireAuth())
	{
		notes.POST("", noteHandler.CreateNote)
		notes.GET("", noteHandler.GetAllNotes)
		notes.GET("/:id", noteHandler.GetSingleNote)
		notes.PATCH("/:id", noteHandler.EditNote)
		notes.DELETE("/:id", noteHandler.DeleteSingleNote)
		notes.DELETE("", noteHandler.DeleteAllNotes)
	}

	return &Server{
		engine: router,
		db:     db,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, cfg *config.Config) {
	var origins []string
	if cfg.AllowedOrigins != "" {
		origins = strings.Split(cfg.AllowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
