package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"recordapi/internal/model"
	"recordapi/internal/service"
)

// CreateRecord handles POST /records.
func CreateRecord(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreateRecordInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		rec, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}

// ListRecords handles GET /records with limit, offset and filter params.
func ListRecords(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limitStr := c.Query("limit", "30")
		offsetStr := c.Query("offset", "0")
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		q := service.RecordListQuery{
			Limit:  limit,
			Offset: offset,
			Search: c.Query("search"),
		}
		if v := c.Query("department_id"); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_DEPARTMENT_ID", "invalid department id")
			}
			q.DepartmentID = id
		}
		if v := c.Query("from"); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "invalid from date")
			}
			q.From = t
		}
		if v := c.Query("to"); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "invalid to date")
			}
			q.To = t
		}

		res, err := svc.List(c.UserContext(), q)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetRecord handles GET /records/:id.
func GetRecord(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		rec, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(rec)
	}
}

// EditRecord handles PUT /records/:id.
func EditRecord(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in service.EditRecordInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		rec, err := svc.Edit(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(rec)
	}
}

// SetRecordSituation handles PATCH /records/:id/situation.
func SetRecordSituation(svc service.RecordService) fiber.Handler {
	type body struct {
		Situation string `json:"situation"`
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
		target, err := model.ParseSituation(in.Situation)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_SITUATION", "invalid situation provided")
		}
		rec, err := svc.SetSituation(c.UserContext(), id, target)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(rec)
	}
}

// CountRecords handles GET /records/count.
func CountRecords(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.Count(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"count": n})
	}
}

// CheckSeiNumber handles GET /records/sei/:number.
func CheckSeiNumber(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		exists, err := svc.HasSeiNumber(c.UserContext(), c.Params("number"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"exists": exists})
	}
}

// RecordDepartments handles GET /records/:id/departments.
func RecordDepartments(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		deps, err := svc.Departments(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(deps)
	}
}

// RecordTags handles GET /records/:id/tags.
func RecordTags(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		tags, err := svc.Tags(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(tags)
	}
}

// AddRecordTag handles POST /records/:id/tags/:tagID.
func AddRecordTag(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		tagID, ok := paramID(c, "tagID")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid tag id format")
		}
		rec, err := svc.AddTag(c.UserContext(), id, tagID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(rec)
	}
}

// DepartmentRecords handles GET /departments/:id/records.
func DepartmentRecords(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := paramID(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		recs, err := svc.DepartmentRecords(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(recs)
	}
}
