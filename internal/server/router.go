package server

import (
	"quiz-ingest-backend/internal/config"
	"quiz-ingest-backend/internal/handlers"
	"quiz-ingest-backend/internal/middleware"
	"quiz-ingest-backend/internal/services"
	"quiz-ingest-backend/internal/ws"

	_ "quiz-ingest-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter builds the gin engine. hub is only consulted when events are
// enabled in cfg.
func NewRouter(cfg *config.Config, quizService *services.QuizService, hub *ws.Hub) *gin.Engine {
	if !cfg.EnableEvents {
		hub = nil
	}

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:   []string{middleware.RequestIDHeader},
	}))

	quizHandler := handlers.NewQuizHandler(quizService, hub, cfg.MaxBodyBytes)

	r.GET("/", handlers.Health)
	r.POST("/save-quiz", quizHandler.SaveQuiz)

	if hub != nil {
		r.GET("/ws/quiz", handlers.NewWSHandler(hub).HandleWebSocket)
	}
	if cfg.EnableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
