package handlers

import (
	"github.com/gofiber/fiber/v2"

	"taskdesk/domain/dto"
	"taskdesk/domain/services"
	"taskdesk/pkg/apperr"
	"taskdesk/pkg/logger"
	"taskdesk/pkg/utils"
)

type AuthHandler struct {
	userService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}

	if violations := utils.ValidateStruct(&req); len(violations) > 0 {
		logger.WarnContext(ctx, "Registration validation failed", "violations", len(violations))
		return apperr.Validation(violations...)
	}

	user, err := h.userService.Register(ctx, &req)
	if err != nil {
		return err
	}

	return utils.CreatedResponse(c, dto.RegisterResponse{
		Message: "User registered successfully!",
		User:    *dto.UserToUserResponse(user),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body.")
	}

	if violations := utils.ValidateStruct(&req); len(violations) > 0 {
		logger.WarnContext(ctx, "Login validation failed", "violations", len(violations))
		return apperr.Validation(violations...)
	}

	token, user, err := h.userService.Login(ctx, &req)
	if err != nil {
		return err
	}

	return utils.SuccessResponse(c, dto.LoginResponse{
		Message: "Login successful!",
		Token:   token,
		User:    *dto.UserToUserResponse(user),
	})
}
