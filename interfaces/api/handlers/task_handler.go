package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskdesk/domain/dto"
	"taskdesk/domain/services"
	"taskdesk/pkg/apperr"
	"taskdesk/pkg/logger"
	"taskdesk/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return apperr.Unauthenticated("Authentication token not provided.")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}

	if violations := utils.ValidateStruct(&req); len(violations) > 0 {
		logger.WarnContext(ctx, "Task creation validation failed", "user_id", user.ID)
		return apperr.Validation(violations...)
	}

	task, err := h.taskService.CreateTask(ctx, user.ID, &req)
	if err != nil {
		return err
	}

	return utils.CreatedResponse(c, dto.TaskEnvelope{
		Message: "Task created successfully!",
		Task:    *dto.TaskToTaskResponse(task),
	})
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return apperr.Unauthenticated("Authentication token not provided.")
	}

	query := dto.TaskListQuery{
		Page:      c.Query("page"),
		Limit:     c.Query("limit"),
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	params, violations := query.Normalize()
	if len(violations) > 0 {
		logger.WarnContext(ctx, "Task list validation failed", "user_id", user.ID)
		return apperr.Validation(violations...)
	}

	tasks, total, err := h.taskService.ListTasks(ctx, user.ID, params)
	if err != nil {
		return err
	}

	totalPages := int((total + int64(params.Limit) - 1) / int64(params.Limit))

	return utils.SuccessResponse(c, dto.TaskListResponse{
		Tasks:       dto.TasksToTaskResponses(tasks),
		TotalTasks:  total,
		TotalPages:  totalPages,
		CurrentPage: params.Page,
		Limit:       params.Limit,
	})
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return apperr.Unauthenticated("Authentication token not provided.")
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(ctx, user.ID, taskID)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task))
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return apperr.Unauthenticated("Authentication token not provided.")
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}

	violations := utils.ValidateStruct(&req)
	if req.Empty() {
		// One violation spanning all three updatable fields.
		violations = append(violations, apperr.Violation{
			Path:    "title.description.status",
			Message: "At least one of title, description or status must be provided.",
		})
	}
	if len(violations) > 0 {
		logger.WarnContext(ctx, "Task update validation failed", "user_id", user.ID, "task_id", taskID)
		return apperr.Validation(violations...)
	}

	task, err := h.taskService.UpdateTask(ctx, user.ID, taskID, &req)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.TaskEnvelope{
		Message: "Task updated successfully!",
		Task:    *dto.TaskToTaskResponse(task),
	})
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return apperr.Unauthenticated("Authentication token not provided.")
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(ctx, user.ID, taskID); err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.MessageResponse{
		Message: "Task deleted successfully!",
	})
}

func parseTaskID(c *fiber.Ctx) (uuid.UUID, error) {
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, apperr.BadRequest("Invalid task ID.")
	}
	return taskID, nil
}
