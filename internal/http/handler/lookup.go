package handler

import (
	"github.com/gofiber/fiber/v2"

	"recordapi/internal/service"
)

// ListTags handles GET /tags.
func ListTags(svc service.LookupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tags, err := svc.ListTags(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(tags)
	}
}

// ListFields handles GET /fields.
func ListFields(svc service.LookupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fields, err := svc.Fields(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fields)
	}
}

// ListSections handles GET /sections.
func ListSections(svc service.LookupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sections, err := svc.Sections(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(sections)
	}
}

// GetUserInfo handles GET /users/:email/info.
func GetUserInfo(svc service.LookupService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.Params("email")
		if email == "" {
			return writeError(c, fiber.StatusBadRequest, "INVALID_EMAIL", "email is required")
		}
		info, err := svc.UserInfo(c.UserContext(), email)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(info)
	}
}
