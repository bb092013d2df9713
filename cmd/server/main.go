package main

import (
	"log"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/handlers"
	"trivia-api/internal/services"

	_ "trivia-api/docs"
)

// @title           Trivia API
// @version         1.0
// @description     Question bank and quiz endpoints for the trivia game.
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("%v", err)
	}
	if cfg.SeedDatabase {
		if err := database.Seed(db); err != nil {
			log.Fatalf("%v", err)
		}
	}

	triviaService := services.NewTriviaService(db, services.GlobalRandom)

	r := handlers.NewRouter(triviaService, handlers.RouterConfig{
		PageSize:     cfg.QuestionsPerPage,
		AllowOrigins: cfg.AllowOrigins,
		AccessLog:    true,
	})

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
