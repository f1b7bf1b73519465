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
	"github.com/somewherelostt/KaizenX/internal/modules/event/dto"
	"github.com/somewherelostt/KaizenX/internal/modules/event/usecase"
	"github.com/somewherelostt/KaizenX/pkg/logger"
	"github.com/somewherelostt/KaizenX/pkg/response"
	"github.com/somewherelostt/KaizenX/pkg/validation"
)

var validate = validator.New()

type EventHandler struct {
	usecase *usecase.EventUsecase
	upload  *config.UploadConfig
}

func NewEventHandler(u *usecase.EventUsecase, upload *config.UploadConfig) *EventHandler {
	return &EventHandler{usecase: u, upload: upload}
}

func (h *EventHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEventInput
	if err := c.BodyParser(&req); err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "EventHandler.Create.Parser", req, &errMsg)
		return response.WriteError(c, fiber.StatusBadRequest, "Invalid request body", errMsg)
	}
	if err := validate.Struct(&req); err != nil {
		errMsg := validation.ErrorMessage(err)
		logger.WriteLogToFile("failed", "EventHandler.Create.Validate", req, &errMsg)
		return response.WriteError(c, fiber.StatusBadRequest, "Validation error", errMsg)
	}

	out, err := h.usecase.Create(c.Context(), middleware.UserID(c), req)
	if err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "EventHandler.Create.Usecase", req, &errMsg)
		return response.WriteError(c, fiber.StatusBadRequest, "Failed to create event", errMsg)
	}

	logger.WriteLogToFile("success", "EventHandler.Create", req, nil)
	return response.WriteSuccess(c, fiber.StatusCreated, "Event created", out)
}

func (h *EventHandler) List(c *fiber.Ctx) error {
	out, err := h.usecase.List(c.Context())
	if err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "EventHandler.List.Usecase", nil, &errMsg)
		return response.WriteError(c, fiber.StatusInternalServerError, "Failed to list events", errMsg)
	}
	return response.WriteSuccess(c, fiber.StatusOK, "Events retrieved", out)
}

func (h *EventHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.usecase.GetByID(c.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return response.WriteError(c, fiber.StatusNotFound, "Event not found", err.Error())
	}
	if err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "EventHandler.Get.Usecase", id, &errMsg)
		return response.WriteError(c, fiber.StatusInternalServerError, "Failed to get event", errMsg)
	}
	return response.WriteSuccess(c, fiber.StatusOK, "Event retrieved", out)
}

func (h *EventHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.UpdateEventInput
	if err := c.BodyParser(&req); err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "EventHandler.Update.Parser", req, &errMsg)
		return response.WriteError(c, fiber.StatusBadRequest, "Invalid request body", errMsg)
	}
	if err := validate.Struct(&req); err != nil {
		errMsg := validation.ErrorMessage(err)
		logger.WriteLogToFile("failed", "EventHandler.Update.Validate", req, &errMsg)
		return response.WriteError(c, fiber.StatusBadRequest, "Validation error", errMsg)
	}

	out, err := h.usecase.Update(c.Context(), middleware.UserID(c), id, req)
	if err != nil {
		return h.writeUsecaseError(c, "EventHandler.Update.Usecase", "Failed to update event", err)
	}

	logger.WriteLogToFile("success", "EventHandler.Update", req, nil)
	return response.WriteSuccess(c, fiber.StatusOK, "Event updated", out)
}

func (h *EventHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.usecase.Delete(c.Context(), middleware.UserID(c), id); err != nil {
		return h.writeUsecaseError(c, "EventHandler.Delete.Usecase", "Failed to delete event", err)
	}
	return response.WriteSuccess(c, fiber.StatusOK, "Event deleted", nil)
}

// UploadImage saves the multipart image under a random name and points the
// event at its static path.
func (h *EventHandler) UploadImage(c *fiber.Ctx) error {
	id := c.Params("id")

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
		logger.WriteLogToFile("failed", "EventHandler.UploadImage.Save", id, &errMsg)
		return response.WriteError(c, fiber.StatusInternalServerError, "Failed to store image", errMsg)
	}

	out, err := h.usecase.SetImage(c.Context(), middleware.UserID(c), id, h.upload.PublicPath+"/"+name)
	if err != nil {
		return h.writeUsecaseError(c, "EventHandler.UploadImage.Usecase", "Failed to update event image", err)
	}

	logger.WriteLogToFile("success", "EventHandler.UploadImage", id, nil)
	return response.WriteSuccess(c, fiber.StatusOK, "Event image updated", out)
}

func (h *EventHandler) writeUsecaseError(c *fiber.Ctx, op, msg string, err error) error {
	errMsg := err.Error()
	logger.WriteLogToFile("failed", op, c.Params("id"), &errMsg)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return response.WriteError(c, fiber.StatusNotFound, "Event not found", errMsg)
	case errors.Is(err, usecase.ErrForbidden):
		return response.WriteError(c, fiber.StatusForbidden, "Not allowed", errMsg)
	default:
		return response.WriteError(c, fiber.StatusInternalServerError, msg, errMsg)
	}
}
