package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"quiz-ingest-backend/internal/config"
	"quiz-ingest-backend/internal/database"
	"quiz-ingest-backend/internal/server"
	"quiz-ingest-backend/internal/services"
	"quiz-ingest-backend/internal/storage"
	"quiz-ingest-backend/internal/ws"
)

// @title           Quiz Ingest API
// @version         1.0
// @description     Appends quiz items to a CSV file
// @host            localhost:5000
// @BasePath        /

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	if db != nil {
		database.AutoMigrate(db)
	}

	writer := storage.NewCSVWriter(cfg.CSVPath, cfg.CSVEscapeQuotes)
	quizService := services.NewQuizService(writer, db)

	var hub *ws.Hub
	if cfg.EnableEvents {
		hub = ws.NewHub()
	} else {
		log.Println("ENABLE_EVENTS not set, quiz event feed disabled")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           server.NewRouter(cfg, quizService, hub),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("server starting on :%s (writing %s)", cfg.ServerPort, writer.Path())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
