package handlers

import (
	"taskdesk/domain/services"
)

// Services bundles everything the handlers need from the container.
type Services struct {
	UserService services.UserService
	TaskService services.TaskService
	JWTSecret   string
}

type Handlers struct {
	AuthHandler *AuthHandler
	TaskHandler *TaskHandler
	JWTSecret   string
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler: NewAuthHandler(services.UserService),
		TaskHandler: NewTaskHandler(services.TaskService),
		JWTSecret:   services.JWTSecret,
	}
}
