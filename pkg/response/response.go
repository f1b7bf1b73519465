// Package response defines the JSON envelope every API handler writes:
// {success, message, data?, error?}.
package response

import "github.com/gofiber/fiber/v2"

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

func ErrorResponse(message string, err string) Response {
	return Response{Success: false, Message: message, Error: err}
}

// WriteSuccess renders a success envelope with the given status code.
func WriteSuccess(c *fiber.Ctx, code int, message string, data any) error {
	return c.Status(code).JSON(SuccessResponse(message, data))
}

// WriteError renders an error envelope with the given status code.
func WriteError(c *fiber.Ctx, code int, message string, err string) error {
	return c.Status(code).JSON(ErrorResponse(message, err))
}
