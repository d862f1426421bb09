package handler

import (
	"github.com/gofiber/fiber/v2"

	"recordapi/internal/service"
)

// ForwardRecord handles POST /records/:id/forward.
func ForwardRecord(svc service.RoutingService) fiber.Handler {
	type body struct {
		OriginID      int64  `json:"origin_id"`
		DestinationID int64  `json:"destination_id"`
		ForwardedBy   string `json:"forwarded_by"`
		Reason        string `json:"reason"`
	}
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in body
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		res, err := svc.Forward(c.UserContext(), service.ForwardInput{
			RecordID:      id,
			OriginID:      in.OriginID,
			DestinationID: in.DestinationID,
			ForwardedBy:   in.ForwardedBy,
			Reason:        in.Reason,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

type lifecycleBody struct {
	Actor  string `json:"actor"`
	Reason string `json:"reason"`
}

// CloseRecord handles POST /records/:id/close.
func CloseRecord(svc service.RoutingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in lifecycleBody
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if err := svc.Close(c.UserContext(), service.LifecycleInput{
			RecordID: id,
			Actor:    in.Actor,
			Reason:   in.Reason,
		}); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"status": "finished"})
	}
}

// ReopenRecord handles POST /records/:id/reopen.
func ReopenRecord(svc service.RoutingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in lifecycleBody
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if err := svc.Reopen(c.UserContext(), service.LifecycleInput{
			RecordID: id,
			Actor:    in.Actor,
			Reason:   in.Reason,
		}); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"status": "running"})
	}
}

// ConfirmReceivement handles POST /records/:id/receivements/:receivementID/confirm.
func ConfirmReceivement(svc service.RoutingService) fiber.Handler {
	type body struct {
		DepartmentID int64  `json:"department_id"`
		ReceivedBy   string `json:"received_by"`
	}
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		receivementID, ok := paramID(c, "receivementID")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid receivement id format")
		}
		var in body
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		entry, err := svc.ConfirmReceivement(c.UserContext(), service.ConfirmInput{
			RecordID:      id,
			ReceivementID: receivementID,
			DepartmentID:  in.DepartmentID,
			ReceivedBy:    in.ReceivedBy,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(entry)
	}
}

// RecordHistory handles GET /records/:id/history.
func RecordHistory(svc service.RoutingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		entries, err := svc.History(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(entries)
	}
}

// RecordCurrentDepartment handles GET /records/:id/current-department.
func RecordCurrentDepartment(svc service.RoutingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		cur, err := svc.CurrentDepartment(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(cur)
	}
}
