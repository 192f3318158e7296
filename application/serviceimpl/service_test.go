package serviceimpl

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"taskdesk/domain/models"
	"taskdesk/infrastructure/postgres"
	"taskdesk/pkg/config"
)

const testJWTSecret = "service-test-secret"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Task{}); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

func newTestUserService(t *testing.T, db *gorm.DB) *UserServiceImpl {
	t.Helper()
	svc := NewUserService(postgres.NewUserRepository(db), config.JWTConfig{
		Secret:    testJWTSecret,
		ExpiresIn: time.Hour,
	})
	return svc.(*UserServiceImpl)
}

func newTestTaskService(t *testing.T, db *gorm.DB) *TaskServiceImpl {
	t.Helper()
	svc := NewTaskService(postgres.NewTaskRepository(db))
	return svc.(*TaskServiceImpl)
}
