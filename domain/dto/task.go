package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskdesk/domain/models"
	"taskdesk/pkg/apperr"
)

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

// UpdateTaskRequest uses pointer fields so an absent field and an empty
// one stay distinguishable.
type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending completed"`
}

// Empty reports whether the update carries no field at all, which is a
// validation violation attached to all three field paths at once.
func (r UpdateTaskRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.Status == nil
}

type TaskResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	UserID      uuid.UUID `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type TaskEnvelope struct {
	Message string       `json:"message"`
	Task    TaskResponse `json:"task"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TaskListResponse struct {
	Tasks       []TaskResponse `json:"tasks"`
	TotalTasks  int64          `json:"totalTasks"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
	Limit       int            `json:"limit"`
}

// TaskListQuery holds the raw query-string inputs of GET /tasks before
// coercion. Normalize is the schema for it.
type TaskListQuery struct {
	Page      string
	Limit     string
	Status    string
	Search    string
	SortBy    string
	SortOrder string
}

// TaskListParams is the normalized, typed form a planner query is built
// from.
type TaskListParams struct {
	Page      int
	Limit     int
	Status    *string
	Search    string
	SortBy    string
	SortOrder string
}

const (
	DefaultPage  = 1
	DefaultLimit = 10

	DefaultSortBy    = "createdAt"
	DefaultSortOrder = "desc"
)

var sortableFields = map[string]bool{
	"createdAt": true,
	"updatedAt": true,
	"title":     true,
	"status":    true,
}

// Normalize validates and coerces the raw query strings, collecting every
// violation rather than stopping at the first. Absent fields take their
// defaults; present-but-invalid fields are violations, never silent
// fallbacks.
func (q TaskListQuery) Normalize() (*TaskListParams, []apperr.Violation) {
	var violations []apperr.Violation

	params := &TaskListParams{
		Page:      DefaultPage,
		Limit:     DefaultLimit,
		Search:    q.Search,
		SortBy:    DefaultSortBy,
		SortOrder: DefaultSortOrder,
	}

	if q.Page != "" {
		page, err := strconv.Atoi(q.Page)
		if err != nil || page <= 0 {
			violations = append(violations, apperr.Violation{
				Path:    "page",
				Message: "Page must be a positive number.",
				Value:   q.Page,
			})
		} else {
			params.Page = page
		}
	}

	if q.Limit != "" {
		limit, err := strconv.Atoi(q.Limit)
		if err != nil || limit <= 0 {
			violations = append(violations, apperr.Violation{
				Path:    "limit",
				Message: "Limit must be a positive number.",
				Value:   q.Limit,
			})
		} else {
			params.Limit = limit
		}
	}

	if q.Status != "" {
		if !models.ValidTaskStatus(q.Status) {
			violations = append(violations, apperr.Violation{
				Path:    "status",
				Message: "Status must be 'pending' or 'completed'.",
				Value:   q.Status,
			})
		} else {
			status := q.Status
			params.Status = &status
		}
	}

	if q.SortBy != "" {
		if !sortableFields[q.SortBy] {
			violations = append(violations, apperr.Violation{
				Path:    "sortBy",
				Message: "SortBy must be one of: createdAt, updatedAt, title, status.",
				Value:   q.SortBy,
			})
		} else {
			params.SortBy = q.SortBy
		}
	}

	if q.SortOrder != "" {
		switch strings.ToLower(q.SortOrder) {
		case "asc":
			params.SortOrder = "asc"
		case "desc":
			params.SortOrder = "desc"
		default:
			violations = append(violations, apperr.Violation{
				Path:    "sortOrder",
				Message: "SortOrder must be 'asc' or 'desc'.",
				Value:   q.SortOrder,
			})
		}
	}

	if len(violations) > 0 {
		return nil, violations
	}
	return params, nil
}
