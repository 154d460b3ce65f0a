package usecase

import (
	"strings"
	"time"

	"task-manager-backend/internal/task/domain"
	"task-manager-backend/internal/task/repository"
	"task-manager-backend/pkg/apperr"
)

// The same message covers a missing task and one owned by another user,
// so task ids cannot be enumerated across accounts.
const taskNotFoundMessage = "task not found or access denied"

const (
	defaultPage  = 1
	defaultLimit = 10
	dateOnly     = "2006-01-02"
)

// taskUsecase implements TaskUsecase
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
	}
}

func parseDate(value string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.Parse(dateOnly, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func (u *taskUsecase) Create(userID string, input CreateTaskInput) (*domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	due := strings.TrimSpace(input.DueDate)
	if title == "" || description == "" || due == "" {
		return nil, apperr.Validation("title, description, and due date are required")
	}

	dueDate, ok := parseDate(due)
	if !ok {
		return nil, apperr.Validation("due date must be an RFC 3339 timestamp or a YYYY-MM-DD date")
	}

	status := domain.StatusPending
	if input.Status != "" {
		status = domain.Status(input.Status)
		if !domain.ValidStatus(status) {
			return nil, apperr.Validation("status must be one of pending, in_progress, completed")
		}
	}

	priority := domain.PriorityMedium
	if input.Priority != "" {
		priority = domain.Priority(input.Priority)
		if !domain.ValidPriority(priority) {
			return nil, apperr.Validation("priority must be one of low, medium, high")
		}
	}

	task := &domain.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		DueDate:     dueDate,
	}
	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) List(userID string, opts ListOptions) (*TaskPage, error) {
	page := opts.Page
	if page < 1 {
		page = defaultPage
	}
	limit := opts.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	sortOrder := "desc"
	if opts.SortOrder == "asc" {
		sortOrder = "asc"
	}

	q := repository.ListQuery{
		Page:      page,
		Limit:     limit,
		SortBy:    sortBy,
		SortOrder: sortOrder,
		Status:    domain.Status(opts.Status),
		Priority:  domain.Priority(opts.Priority),
		Search:    opts.Search,
	}
	if opts.DueBefore != "" {
		t, ok := parseDate(opts.DueBefore)
		if !ok {
			return nil, apperr.Validation("dueBefore must be an RFC 3339 timestamp or a YYYY-MM-DD date")
		}
		q.DueBefore = &t
	}
	if opts.DueAfter != "" {
		t, ok := parseDate(opts.DueAfter)
		if !ok {
			return nil, apperr.Validation("dueAfter must be an RFC 3339 timestamp or a YYYY-MM-DD date")
		}
		q.DueAfter = &t
	}

	tasks, total, err := u.taskRepo.ListOwned(userID, q)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &TaskPage{
		Tasks: tasks,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

func (u *taskUsecase) GetByID(userID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindOwned(userID, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperr.NotFound(taskNotFoundMessage)
	}
	return task, nil
}

func (u *taskUsecase) Update(userID, taskID string, updates UpdateTaskInput) (*domain.Task, error) {
	task, err := u.GetByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil {
		title := strings.TrimSpace(*updates.Title)
		if title == "" {
			return nil, apperr.Validation("title cannot be blank")
		}
		task.Title = title
	}
	if updates.Description != nil {
		description := strings.TrimSpace(*updates.Description)
		if description == "" {
			return nil, apperr.Validation("description cannot be blank")
		}
		task.Description = description
	}
	if updates.Status != nil {
		status := domain.Status(*updates.Status)
		if !domain.ValidStatus(status) {
			return nil, apperr.Validation("status must be one of pending, in_progress, completed")
		}
		task.Status = status
	}
	if updates.Priority != nil {
		priority := domain.Priority(*updates.Priority)
		if !domain.ValidPriority(priority) {
			return nil, apperr.Validation("priority must be one of low, medium, high")
		}
		task.Priority = priority
	}
	if updates.DueDate != nil {
		due, ok := parseDate(strings.TrimSpace(*updates.DueDate))
		if !ok {
			return nil, apperr.Validation("due date must be an RFC 3339 timestamp or a YYYY-MM-DD date")
		}
		task.DueDate = due
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) Delete(userID, taskID string) error {
	deleted, err := u.taskRepo.DeleteOwned(userID, taskID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound(taskNotFoundMessage)
	}
	return nil
}
