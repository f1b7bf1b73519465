package handler

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/somewherelostt/KaizenX/internal/app/middleware"
	"github.com/somewherelostt/KaizenX/internal/config"
	"github.com/somewherelostt/KaizenX/internal/infrastructure/repository"
	"github.com/somewherelostt/KaizenX/internal/modules/user/dto"
	"github.com/somewherelostt/KaizenX/internal/modules/user/usecase"
	"github.com/somewherelostt/KaizenX/pkg/logger"
	"github.com/somewherelostt/KaizenX/pkg/response"
	"github.com/somewherelostt/KaizenX/pkg/validation"
)

var validate = validator.New()

type UserHandler struct {
	usecase *usecase.UserUsecase
	upload  *config.UploadConfig
}

func NewUserHandler(u *usecase.UserUsecase, upload *config.UploadConfig) *UserHandler {
	return &UserHandler{usecase: u, upload: upload}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "UserHandler.Register.Parser", nil, &errMsg)
		return response.WriteError(c, fiber.StatusBadRequest, "Invalid request body", errMsg)
	}
	if err := validate.Struct(&req); err != nil {
		errMsg := validation.ErrorMessage(err)
		logger.WriteLogToFile("failed", "UserHandler.Register.Validate", req.Email, &errMsg)
		return response.WriteError(c, fiber.StatusBadRequest, "Validation error", errMsg)
	}

	out, err := h.usecase.Register(c.Context(), req)
	if err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "UserHandler.Register.Usecase", req.Email, &errMsg)
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return response.WriteError(c, fiber.StatusConflict, "Email already registered", errMsg)
		}
		return response.WriteError(c, fiber.StatusInternalServerError, "Failed to register user", errMsg)
	}

	logger.WriteLogToFile("success", "UserHandler.Register", req.Email, nil)
	return response.WriteSuccess(c, fiber.StatusCreated, "User registered", out)
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginInput
	if err := c.BodyParser(&req); err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "UserHandler.Login.Parser", nil, &errMsg)
		return response.WriteError(c, fiber.StatusBadRequest, "Invalid request body", errMsg)
	}
	if err := validate.Struct(&req); err != nil {
		errMsg := validation.ErrorMessage(err)
		logger.WriteLogToFile("failed", "UserHandler.Login.Validate", req.Email, &errMsg)
		return response.WriteError(c, fiber.StatusBadRequest, "Validation error", errMsg)
	}

	out, err := h.usecase.Login(c.Context(), req)
	if err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "UserHandler.Login.Usecase", req.Email, &errMsg)
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return response.WriteError(c, fiber.StatusUnauthorized, "Invalid credentials", errMsg)
		}
		return response.WriteError(c, fiber.StatusInternalServerError, "Failed to login", errMsg)
	}

	logger.WriteLogToFile("success", "UserHandler.Login", req.Email, nil)
	return response.WriteSuccess(c, fiber.StatusOK, "Login successful", out)
}

// Me returns the user behind the bearer token.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	out, err := h.usecase.GetByID(c.Context(), middleware.UserID(c))
	if errors.Is(err, repository.ErrNotFound) {
		return response.WriteError(c, fiber.StatusNotFound, "User not found", err.Error())
	}
	if err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "UserHandler.Me.Usecase", nil, &errMsg)
		return response.WriteError(c, fiber.StatusInternalServerError, "Failed to get user", errMsg)
	}
	return response.WriteSuccess(c, fiber.StatusOK, "User retrieved", out)
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.usecase.List(c.Context())
	if err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "UserHandler.List.Usecase", nil, &errMsg)
		return response.WriteError(c, fiber.StatusInternalServerError, "Failed to list users", errMsg)
	}
	return response.WriteSuccess(c, fiber.StatusOK, "Users retrieved", out)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	out, err := h.usecase.GetByID(c.Context(), c.Params("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return response.WriteError(c, fiber.StatusNotFound, "User not found", err.Error())
	}
	if err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "UserHandler.Get.Usecase", c.Params("id"), &errMsg)
		return response.WriteError(c, fiber.StatusInternalServerError, "Failed to get user", errMsg)
	}
	return response.WriteSuccess(c, fiber.StatusOK, "User retrieved", out)
}

// Update modifies the authenticated user's own profile.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserInput
	if err := c.BodyParser(&req); err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "UserHandler.Update.Parser", nil, &errMsg)
		return response.WriteError(c, fiber.StatusBadRequest, "Invalid request body", errMsg)
	}
	if err := validate.Struct(&req); err != nil {
		errMsg := validation.ErrorMessage(err)
		logger.WriteLogToFile("failed", "UserHandler.Update.Validate", nil, &errMsg)
		return response.WriteError(c, fiber.StatusBadRequest, "Validation error", errMsg)
	}

	out, err := h.usecase.Update(c.Context(), middleware.UserID(c), req)
	if errors.Is(err, repository.ErrNotFound) {
		return response.WriteError(c, fiber.StatusNotFound, "User not found", err.Error())
	}
	if err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "UserHandler.Update.Usecase", nil, &errMsg)
		return response.WriteError(c, fiber.StatusInternalServerError, "Failed to update user", errMsg)
	}

	logger.WriteLogToFile("success", "UserHandler.Update", out.ID, nil)
	return response.WriteSuccess(c, fiber.StatusOK, "User updated", out)
}

// UploadImage stores a profile picture and points the user record at its
// static path.
func (h *UserHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return response.WriteError(c, fiber.StatusBadRequest, "Missing image file", err.Error())
	}
	if file.Size > int64(h.upload.MaxSizeMB)<<20 {
		return response.WriteError(c, fiber.StatusRequestEntityTooLarge, "Image too large", "image exceeds size limit")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.NewString() + ext
	if err := c.SaveFile(file, filepath.Join(h.upload.Dir, name)); err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "UserHandler.UploadImage.Save", nil, &errMsg)
		return response.WriteError(c, fiber.StatusInternalServerError, "Failed to store image", errMsg)
	}

	imageURL := h.upload.PublicPath + "/" + name
	out, err := h.usecase.Update(c.Context(), middleware.UserID(c), dto.UpdateUserInput{ImageURL: &imageURL})
	if err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "UserHandler.UploadImage.Usecase", nil, &errMsg)
		return response.WriteError(c, fiber.StatusInternalServerError, "Failed to update user image", errMsg)
	}

	logger.WriteLogToFile("success", "UserHandler.UploadImage", out.ID, nil)
	return response.WriteSuccess(c, fiber.StatusOK, "User image updated", out)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.usecase.Delete(c.Context(), middleware.UserID(c)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.WriteError(c, fiber.StatusNotFound, "User not found", err.Error())
		}
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "UserHandler.Delete.Usecase", nil, &errMsg)
		return response.WriteError(c, fiber.StatusInternalServerError, "Failed to delete user", errMsg)
	}
	return response.WriteSuccess(c, fiber.StatusOK, "User deleted", nil)
}
