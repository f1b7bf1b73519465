package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/somewherelostt/KaizenX/internal/infrastructure/repository"
	"github.com/somewherelostt/KaizenX/internal/modules/ticket/dto"
	"github.com/somewherelostt/KaizenX/internal/modules/ticket/usecase"
	"github.com/somewherelostt/KaizenX/pkg/logger"
	"github.com/somewherelostt/KaizenX/pkg/response"
	"github.com/somewherelostt/KaizenX/pkg/validation"
)

var validate = validator.New()

type TicketHandler struct {
	usecase *usecase.TicketUsecase
}

func NewTicketHandler(u *usecase.TicketUsecase) *TicketHandler {
	return &TicketHandler{usecase: u}
}

// Record accepts a purchase receipt and queues it for the stream worker.
func (h *TicketHandler) Record(c *fiber.Ctx) error {
	var req dto.RecordTicketInput
	if err := c.BodyParser(&req); err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "TicketHandler.Record.Parser", req, &errMsg)
		return response.WriteError(c, fiber.StatusBadRequest, "Invalid request body", errMsg)
	}
	if err := validate.Struct(&req); err != nil {
		errMsg := validation.ErrorMessage(err)
		logger.WriteLogToFile("failed", "TicketHandler.Record.Validate", req, &errMsg)
		return response.WriteError(c, fiber.StatusBadRequest, "Validation error", errMsg)
	}

	out, err := h.usecase.Record(c.Context(), req)
	if err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "TicketHandler.Record.Usecase", req, &errMsg)
		if errors.Is(err, repository.ErrNotFound) {
			return response.WriteError(c, fiber.StatusNotFound, "Event not found", errMsg)
		}
		return response.WriteError(c, fiber.StatusInternalServerError, "Failed to record ticket", errMsg)
	}

	logger.WriteLogToFile("success", "TicketHandler.Record", req, nil)
	return response.WriteSuccess(c, fiber.StatusAccepted, "Ticket queued", out)
}

func (h *TicketHandler) ListByEvent(c *fiber.Ctx) error {
	out, err := h.usecase.ListByEvent(c.Context(), c.Params("id"))
	if err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "TicketHandler.ListByEvent.Usecase", c.Params("id"), &errMsg)
		return response.WriteError(c, fiber.StatusInternalServerError, "Failed to list tickets", errMsg)
	}
	return response.WriteSuccess(c, fiber.StatusOK, "Tickets retrieved", out)
}
