package response

import "github.com/gofiber/fiber/v2"

// ErrorBody is the error envelope the mobile client expects: it reads
// error.response.data.detail when a request fails.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// OK sends a 200 response with the resource as the body
func OK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

// Created sends a 201 created response
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// Error sends an error response
func Error(c *fiber.Ctx, statusCode int, detail string) error {
	return c.Status(statusCode).JSON(ErrorBody{Detail: detail})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, detail string) error {
	return Error(c, fiber.StatusBadRequest, detail)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, detail string) error {
	return Error(c, fiber.StatusUnauthorized, detail)
}

// Forbidden sends a 403 forbidden response
func Forbidden(c *fiber.Ctx, detail string) error {
	return Error(c, fiber.StatusForbidden, detail)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, detail string) error {
	return Error(c, fiber.StatusNotFound, detail)
}

// Conflict sends a 409 conflict response
func Conflict(c *fiber.Ctx, detail string) error {
	return Error(c, fiber.StatusConflict, detail)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, detail string) error {
	return Error(c, fiber.StatusInternalServerError, detail)
}
