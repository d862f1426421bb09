package handler

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"recordapi/internal/service"
)

// Services bundles the application services the HTTP layer exposes.
type Services struct {
	Records     service.RecordService
	Routing     service.RoutingService
	Attachments service.AttachmentService
	Lookups     service.LookupService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic; validation beyond
// parameter shape lives in the service layer.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services, presignExpiry time.Duration) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/records", ListRecords(svcs.Records))
	app.Post("/records", CreateRecord(svcs.Records))
	app.Get("/records/count", CountRecords(svcs.Records))
	app.Get("/records/sei/:number", CheckSeiNumber(svcs.Records))
	app.Get("/records/:id", GetRecord(svcs.Records))
	app.Put("/records/:id", EditRecord(svcs.Records))
	app.Patch("/records/:id/situation", SetRecordSituation(svcs.Records))

	app.Post("/records/:id/forward", ForwardRecord(svcs.Routing))
	app.Post("/records/:id/close", CloseRecord(svcs.Routing))
	app.Post("/records/:id/reopen", ReopenRecord(svcs.Routing))
	app.Post("/records/:id/receivements/:receivementID/confirm", ConfirmReceivement(svcs.Routing))
	app.Get("/records/:id/history", RecordHistory(svcs.Routing))
	app.Get("/records/:id/current-department", RecordCurrentDepartment(svcs.Routing))

	app.Get("/records/:id/departments", RecordDepartments(svcs.Records))
	app.Get("/records/:id/tags", RecordTags(svcs.Records))
	app.Post("/records/:id/tags/:tagID", AddRecordTag(svcs.Records))
	app.Get("/departments/:id/records", DepartmentRecords(svcs.Records))

	app.Post("/records/:id/attachments", UploadAttachment(svcs.Attachments))
	app.Get("/records/:id/attachments", ListAttachments(svcs.Attachments))
	app.Get("/attachments/:id/url", DownloadAttachment(svcs.Attachments, presignExpiry))
	app.Delete("/attachments/:id", DeleteAttachment(svcs.Attachments))

	app.Get("/tags", ListTags(svcs.Lookups))
	app.Get("/fields", ListFields(svcs.Lookups))
	app.Get("/sections", ListSections(svcs.Lookups))
	app.Get("/users/:email/info", GetUserInfo(svcs.Lookups))
}
