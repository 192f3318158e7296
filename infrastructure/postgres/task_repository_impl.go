package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskdesk/domain/models"
	"taskdesk/domain/repositories"
	"taskdesk/pkg/apperr"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

var taskSortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"title":     "title",
	"status":    "status",
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperr.New(apperr.KindForeignKey, "Referenced user does not exist.")
		}
		return apperr.Store(err)
	}
	return nil
}

func (r *TaskRepositoryImpl) GetByOwner(ctx context.Context, id, ownerID uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// A task owned by someone else reads the same as a missing one.
			return nil, apperr.NotFound("Task not found.")
		}
		return nil, apperr.Store(err)
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) Search(ctx context.Context, query repositories.TaskQuery) ([]*models.Task, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Task{}).Where("user_id = ?", query.OwnerID)

	if query.Status != nil {
		q = q.Where("status = ?", *query.Status)
	}
	if query.Search != "" {
		pattern := "%" + strings.ToLower(query.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperr.Store(err)
	}

	column, ok := taskSortColumns[query.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "ASC"
	if strings.EqualFold(query.SortOrder, "desc") {
		direction = "DESC"
	}

	var tasks []*models.Task
	err := q.
		// id tie-break keeps row order stable across pages when the sort
		// key has duplicate values.
		Order(fmt.Sprintf("%s %s, id ASC", column, direction)).
		Offset(query.Offset).
		Limit(query.Limit).
		Find(&tasks).Error
	if err != nil {
		return nil, 0, apperr.Store(err)
	}

	return tasks, total, nil
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return apperr.Store(err)
	}
	return nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, task *models.Task) error {
	if err := r.db.WithContext(ctx).Delete(task).Error; err != nil {
		return apperr.Store(err)
	}
	return nil
}
