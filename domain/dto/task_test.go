package dto

import (
	"testing"
)

func TestTaskListQuery_Normalize_Defaults(t *testing.T) {
	params, violations := TaskListQuery{}.Normalize()
	if violations != nil {
		t.Fatalf("Normalize() violations = %v, want none", violations)
	}

	if params.Page != 1 {
		t.Errorf("Page = %d, want 1", params.Page)
	}
	if params.Limit != 10 {
		t.Errorf("Limit = %d, want 10", params.Limit)
	}
	if params.Status != nil {
		t.Errorf("Status = %v, want nil", *params.Status)
	}
	if params.SortBy != "createdAt" {
		t.Errorf("SortBy = %q, want createdAt", params.SortBy)
	}
	if params.SortOrder != "desc" {
		t.Errorf("SortOrder = %q, want desc", params.SortOrder)
	}
}

func TestTaskListQuery_Normalize_ValidInputs(t *testing.T) {
	query := TaskListQuery{
		Page:      "3",
		Limit:     "25",
		Status:    "completed",
		Search:    "groceries",
		SortBy:    "title",
		SortOrder: "ASC",
	}

	params, violations := query.Normalize()
	if violations != nil {
		t.Fatalf("Normalize() violations = %v, want none", violations)
	}

	if params.Page != 3 || params.Limit != 25 {
		t.Errorf("Page, Limit = %d, %d, want 3, 25", params.Page, params.Limit)
	}
	if params.Status == nil || *params.Status != "completed" {
		t.Errorf("Status = %v, want completed", params.Status)
	}
	if params.Search != "groceries" {
		t.Errorf("Search = %q", params.Search)
	}
	if params.SortBy != "title" {
		t.Errorf("SortBy = %q, want title", params.SortBy)
	}
	if params.SortOrder != "asc" {
		t.Errorf("SortOrder = %q, want asc (normalized lower-case)", params.SortOrder)
	}
}

func TestTaskListQuery_Normalize_SortOrderIgnoresCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"asc", "asc"},
		{"ASC", "asc"},
		{"Asc", "asc"},
		{"desc", "desc"},
		{"DESC", "desc"},
		{"Desc", "desc"},
		{"dEsC", "desc"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			params, violations := TaskListQuery{SortOrder: tt.input}.Normalize()
			if violations != nil {
				t.Fatalf("Normalize() violations = %v, want none", violations)
			}
			if params.SortOrder != tt.want {
				t.Errorf("SortOrder = %q, want %q", params.SortOrder, tt.want)
			}
		})
	}
}

func TestTaskListQuery_Normalize_Violations(t *testing.T) {
	tests := []struct {
		name        string
		query       TaskListQuery
		wantPath    string
		wantMessage string
	}{
		{"page zero", TaskListQuery{Page: "0"}, "page", "Page must be a positive number."},
		{"page negative", TaskListQuery{Page: "-2"}, "page", "Page must be a positive number."},
		{"page non-numeric", TaskListQuery{Page: "abc"}, "page", "Page must be a positive number."},
		{"limit zero", TaskListQuery{Limit: "0"}, "limit", "Limit must be a positive number."},
		{"limit non-numeric", TaskListQuery{Limit: "ten"}, "limit", "Limit must be a positive number."},
		{"unknown status", TaskListQuery{Status: "archived"}, "status", "Status must be 'pending' or 'completed'."},
		{"status outside stored enum", TaskListQuery{Status: "in_progress"}, "status", "Status must be 'pending' or 'completed'."},
		{"unknown sort field", TaskListQuery{SortBy: "priority"}, "sortBy", "SortBy must be one of: createdAt, updatedAt, title, status."},
		{"unknown sort order", TaskListQuery{SortOrder: "sideways"}, "sortOrder", "SortOrder must be 'asc' or 'desc'."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, violations := tt.query.Normalize()
			if params != nil {
				t.Fatal("Normalize() returned params despite violations")
			}
			if len(violations) != 1 {
				t.Fatalf("len(violations) = %d, want 1: %v", len(violations), violations)
			}
			if violations[0].Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", violations[0].Path, tt.wantPath)
			}
			if violations[0].Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", violations[0].Message, tt.wantMessage)
			}
		})
	}
}

func TestTaskListQuery_Normalize_CollectsAllViolations(t *testing.T) {
	query := TaskListQuery{
		Page:      "0",
		Limit:     "nope",
		Status:    "archived",
		SortBy:    "priority",
		SortOrder: "sideways",
	}

	_, violations := query.Normalize()
	if len(violations) != 5 {
		t.Fatalf("len(violations) = %d, want 5: %v", len(violations), violations)
	}
}

func TestTaskListQuery_Normalize_KeepsOffendingValue(t *testing.T) {
	_, violations := TaskListQuery{Page: "abc"}.Normalize()
	if len(violations) != 1 {
		t.Fatalf("len(violations) = %d, want 1", len(violations))
	}
	if violations[0].Value != "abc" {
		t.Errorf("Value = %v, want %q", violations[0].Value, "abc")
	}
}

func TestUpdateTaskRequest_Empty(t *testing.T) {
	title := "x"

	if !(UpdateTaskRequest{}).Empty() {
		t.Error("all-nil update should be empty")
	}
	if (UpdateTaskRequest{Title: &title}).Empty() {
		t.Error("update with a field should not be empty")
	}
}
