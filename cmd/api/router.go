package api

import (
	"net/http"

	authDelivery "task-manager-backend/internal/auth/delivery"
	authUsecase "task-manager-backend/internal/auth/usecase"
	taskDelivery "task-manager-backend/internal/task/delivery"
	taskUsecase "task-manager-backend/internal/task/usecase"
	"task-manager-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, taskUc taskUsecase.TaskUsecase, tokens *token.Service) {
	authHandler := authDelivery.NewAuthHandler(authUc)
	taskHandler := taskDelivery.NewTaskHandler(taskUc)
	requireAuth := authDelivery.AuthMiddleware(tokens)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/sign_up", authHandler.SignUp)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", requireAuth, authHandler.Logout)
			auth.PUT("/update", requireAuth, authHandler.UpdateUser)
			auth.PUT("/update-password", requireAuth, authHandler.UpdatePassword)
			auth.PUT("/update-email", requireAuth, authHandler.UpdateEmail)
		}

		// Task routes (protected)
		tasks := api.Group("/task")
		tasks.Use(requireAuth)
		{
			tasks.POST("/create", taskHandler.CreateTask)
			tasks.GET("/get-tasks", taskHandler.GetTasks)
			tasks.GET("/get-task/:id", taskHandler.GetTaskByID)
			tasks.PUT("/update-task/:taskId", taskHandler.UpdateTask)
			tasks.DELETE("/delete-task/:id", taskHandler.DeleteTask)
		}
	}
}
