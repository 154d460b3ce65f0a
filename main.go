package main

import (
	"log"

	api "task-manager-backend/cmd/api"
	authdomain "task-manager-backend/internal/auth/domain"
	authRepo "task-manager-backend/internal/auth/repository"
	authUsecase "task-manager-backend/internal/auth/usecase"
	taskdomain "task-manager-backend/internal/task/domain"
	taskRepo "task-manager-backend/internal/task/repository"
	taskUsecase "task-manager-backend/internal/task/usecase"
	"task-manager-backend/pkg/config"
	"task-manager-backend/pkg/database"
	"task-manager-backend/pkg/token"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &taskdomain.Task{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)

	// Initialize token service
	tokens := token.NewService(cfg.JWTSecret, cfg.AccessTokenExpiry)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, tokens)
	taskUsecaseInstance := taskUsecase.NewTaskUsecase(taskRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, taskUsecaseInstance, tokens, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
