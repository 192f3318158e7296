package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"taskdesk/application/serviceimpl"
	"taskdesk/domain/models"
	"taskdesk/infrastructure/postgres"
	"taskdesk/interfaces/api/handlers"
	"taskdesk/interfaces/api/middleware"
	"taskdesk/interfaces/api/routes"
	"taskdesk/pkg/config"
)

const testJWTSecret = "handler-test-secret"

// newTestApp wires the full stack against an in-memory database, exactly
// as the container does in production minus the process-level concerns.
func newTestApp(t *testing.T) *fiber.App {
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

	userRepo := postgres.NewUserRepository(db)
	taskRepo := postgres.NewTaskRepository(db)

	jwtCfg := config.JWTConfig{Secret: testJWTSecret, ExpiresIn: time.Hour}

	h := handlers.NewHandlers(&handlers.Services{
		UserService: serviceimpl.NewUserService(userRepo, jwtCfg),
		TaskService: serviceimpl.NewTaskService(taskRepo),
		JWTSecret:   testJWTSecret,
	})

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(false),
	})
	routes.SetupRoutes(app, h)

	return app
}

// doJSON performs a request with an optional bearer token and JSON body.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
}

// registerAndLogin creates an account and returns a usable bearer token.
func registerAndLogin(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name":     "Test User",
		"email":    email,
		"password": "password123",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: status = %d, want 201", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email":    email,
		"password": "password123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &body)
	if body.Token == "" {
		t.Fatal("login returned an empty token")
	}
	return body.Token
}

// createTask creates a task through the API and returns its id.
func createTask(t *testing.T, app *fiber.App, token, title, description string) string {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/tasks", token, fiber.Map{
		"title":       title,
		"description": description,
	})
	if resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		t.Fatalf("create task: status = %d, want 201, body %s", resp.StatusCode, raw)
	}

	var body struct {
		Task struct {
			ID string `json:"id"`
		} `json:"task"`
	}
	decodeBody(t, resp, &body)
	if body.Task.ID == "" {
		t.Fatal("create task returned an empty id")
	}
	return body.Task.ID
}

type errorBody struct {
	Message string `json:"message"`
	Errors  []struct {
		Path    string `json:"path"`
		Message string `json:"message"`
	} `json:"errors"`
}

func (b errorBody) paths() []string {
	paths := make([]string, 0, len(b.Errors))
	for _, v := range b.Errors {
		paths = append(paths, v.Path)
	}
	return paths
}
