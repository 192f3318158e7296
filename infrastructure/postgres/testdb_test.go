package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskdesk/domain/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		ID:        uuid.New(),
		Name:      "Test User",
		Email:     email,
		Password:  "$2a$10$hashedhashedhashedhashedhashed",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedTask(t *testing.T, db *gorm.DB, ownerID uuid.UUID, title, description, status string, createdAt time.Time) *models.Task {
	t.Helper()

	task := &models.Task{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Status:      status,
		UserID:      ownerID,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to seed task %q: %v", title, err)
	}
	return task
}
