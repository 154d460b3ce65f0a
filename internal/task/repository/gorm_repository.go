package repository

import (
	"errors"
	"strings"
	"time"

	"task-manager-backend/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindOwned(userID, id string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

// sortColumns whitelists the sortable fields and maps them to columns.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"dueDate":   "due_date",
	"title":     "title",
	"status":    "status",
	"priority":  "priority",
	"order":     "order",
}

func (r *gormTaskRepository) ListOwned(userID string, q ListQuery) ([]*domain.Task, int64, error) {
	query := r.db.Model(&domain.Task{}).Where("user_id = ?", userID)

	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.Priority != "" {
		query = query.Where("priority = ?", q.Priority)
	}
	if q.DueBefore != nil {
		query = query.Where("due_date <= ?", *q.DueBefore)
	}
	if q.DueAfter != nil {
		query = query.Where("due_date >= ?", *q.DueAfter)
	}
	if q.Search != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(q.Search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[q.SortBy]
	if !ok {
		column = "created_at"
	}
	query = query.Order(clause.OrderByColumn{
		Column: clause.Column{Name: column},
		Desc:   q.SortOrder != "asc",
	})
	if column != "created_at" {
		// Stable tie-break: equal sort keys come back in insertion order.
		query = query.Order("created_at ASC")
	}

	var tasks []*domain.Task
	err := query.Offset((q.Page - 1) * q.Limit).Limit(q.Limit).Find(&tasks).Error
	return tasks, total, err
}

func (r *gormTaskRepository) Update(task *domain.Task) error {
	task.UpdatedAt = time.Now()
	return r.db.Save(task).Error
}

func (r *gormTaskRepository) DeleteOwned(userID, id string) (bool, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Task{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
