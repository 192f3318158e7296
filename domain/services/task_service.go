package services

import (
	"context"

	"github.com/google/uuid"

	"taskdesk/domain/dto"
	"taskdesk/domain/models"
)

// TaskService is ownership-scoped end to end: every operation takes the
// authenticated owner and never reads or mutates another user's tasks.
type TaskService interface {
	CreateTask(ctx context.Context, ownerID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, ownerID, taskID uuid.UUID) (*models.Task, error)
	ListTasks(ctx context.Context, ownerID uuid.UUID, params *dto.TaskListParams) ([]*models.Task, int64, error)
	UpdateTask(ctx context.Context, ownerID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error
}
