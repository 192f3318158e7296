package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"taskdesk/domain/dto"
	"taskdesk/domain/models"
	"taskdesk/domain/repositories"
	"taskdesk/domain/services"
	"taskdesk/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
}

func NewTaskService(taskRepo repositories.TaskRepository) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, ownerID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error) {
	task := &models.Task{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Status:      models.TaskStatusPending,
		UserID:      ownerID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "user_id", ownerID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "user_id", ownerID)

	return task, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, ownerID, taskID uuid.UUID) (*models.Task, error) {
	return s.taskRepo.GetByOwner(ctx, taskID, ownerID)
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, ownerID uuid.UUID, params *dto.TaskListParams) ([]*models.Task, int64, error) {
	query := repositories.TaskQuery{
		OwnerID:   ownerID,
		Status:    params.Status,
		Search:    params.Search,
		SortBy:    params.SortBy,
		SortOrder: params.SortOrder,
		Offset:    (params.Page - 1) * params.Limit,
		Limit:     params.Limit,
	}

	tasks, total, err := s.taskRepo.Search(ctx, query)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "user_id", ownerID, "error", err)
		return nil, 0, err
	}

	logger.DebugContext(ctx, "Task query executed",
		"user_id", ownerID,
		"total", total,
		"page_size", len(tasks),
	)

	return tasks, total, nil
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, ownerID, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByOwner(ctx, taskID, ownerID)
	if err != nil {
		logger.WarnContext(ctx, "Task not found for update", "task_id", taskID, "user_id", ownerID)
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID, "user_id", ownerID)

	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error {
	task, err := s.taskRepo.GetByOwner(ctx, taskID, ownerID)
	if err != nil {
		logger.WarnContext(ctx, "Task not found for deletion", "task_id", taskID, "user_id", ownerID)
		return err
	}

	if err := s.taskRepo.Delete(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "user_id", ownerID)
	return nil
}
