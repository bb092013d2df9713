package handlers

import (
	"net/http"

	"trivia-api/internal/middleware"
	"trivia-api/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterConfig struct {
	PageSize     int
	AllowOrigins []string
	// AccessLog enables gin's request logger.
	AccessLog bool
}

func NewRouter(trivia *services.TriviaService, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middleware.RequestID())
	if cfg.AccessLog {
		r.Use(gin.Logger())
	}
	r.Use(middleware.Recovery(func(c *gin.Context) {
		abortWithError(c, http.StatusInternalServerError, nil)
	}))

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{middleware.RequestIDHeader},
	}
	if len(cfg.AllowOrigins) == 0 || (len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	r.Use(cors.New(corsCfg))

	r.NoRoute(func(c *gin.Context) { abortWithError(c, http.StatusNotFound, nil) })
	r.NoMethod(func(c *gin.Context) { abortWithError(c, http.StatusMethodNotAllowed, nil) })

	categoryHandler := NewCategoryHandler(trivia, cfg.PageSize)
	questionHandler := NewQuestionHandler(trivia, cfg.PageSize)
	quizHandler := NewQuizHandler(trivia)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/categories", categoryHandler.ListCategories)
	r.GET("/categories/:id/questions", categoryHandler.QuestionsByCategory)

	questions := r.Group("/questions")
	{
		questions.GET("", questionHandler.ListQuestions)
		questions.POST("", questionHandler.CreateOrSearchQuestions)
		questions.GET("/export", questionHandler.ExportQuestions)
		questions.DELETE("/:id", questionHandler.DeleteQuestion)
	}

	r.POST("/quizzes", quizHandler.NextQuestion)

	return r
}
