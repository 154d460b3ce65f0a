package delivery

import (
	"net/http"
	"strconv"

	"task-manager-backend/internal/task/usecase"
	"task-manager-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

func respondError(c *gin.Context, err error) {
	e := apperr.From(err)
	c.JSON(e.Status, gin.H{
		"success":      false,
		"message":      e.Message,
		"errorDetails": e.Details,
	})
}

// CreateTask creates a new task for the authenticated user
// POST /api/task/create
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var input usecase.CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperr.Validation("invalid request body"))
		return
	}

	task, err := h.taskUsecase.Create(c.GetString("userID"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTasks returns a filtered, sorted, paginated list of the user's tasks
// GET /api/task/get-tasks?page=1&limit=10&sortBy=createdAt&sortOrder=desc&status=&priority=&dueBefore=&dueAfter=&search=
func (h *TaskHandler) GetTasks(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	opts := usecase.ListOptions{
		Page:      page,
		Limit:     limit,
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
		DueBefore: c.Query("dueBefore"),
		DueAfter:  c.Query("dueAfter"),
		Search:    c.Query("search"),
	}

	result, err := h.taskUsecase.List(c.GetString("userID"), opts)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTaskByID returns one of the user's tasks
// GET /api/task/get-task/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	task, err := h.taskUsecase.GetByID(c.GetString("userID"), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask applies whitelisted field updates to one of the user's tasks
// PUT /api/task/update-task/:taskId
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	var updates usecase.UpdateTaskInput
	if err := c.ShouldBindJSON(&updates); err != nil {
		respondError(c, apperr.Validation("invalid request body"))
		return
	}

	task, err := h.taskUsecase.Update(c.GetString("userID"), c.Param("taskId"), updates)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask removes one of the user's tasks
// DELETE /api/task/delete-task/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.taskUsecase.Delete(c.GetString("userID"), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
