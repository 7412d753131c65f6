package routers

import (
	"medrecord-service/internal/app/delivery/http/middlewares"
	"medrecord-service/internal/app/services/healthrecords"
	"medrecord-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachHealthRecordRoutes(router chi.Router, middlewares *middlewares.Middlewares, healthRecordController *healthrecords.HealthRecordController) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequireRoles(constvars.RoleTypeProvider, constvars.RoleTypeAdmin)).Post("/", healthRecordController.CreateHealthRecord)
	router.Get("/", healthRecordController.FindAllHealthRecords)
	router.Get("/patient/{patient_id}", healthRecordController.FindHealthRecordsByPatientID)
	router.Get("/{record_id}", healthRecordController.FindHealthRecordByID)
	router.With(middlewares.RequireRoles(constvars.RoleTypeProvider, constvars.RoleTypeAdmin)).Put("/{record_id}", healthRecordController.UpdateHealthRecord)
	router.With(middlewares.RequireRoles(constvars.RoleTypeAdmin)).Delete("/{record_id}", healthRecordController.DeleteHealthRecord)
	router.With(middlewares.RequireRoles(constvars.RoleTypeProvider, constvars.RoleTypeAdmin)).Post("/{record_id}/attachments", healthRecordController.UploadAttachment)
	router.Get("/{record_id}/attachments/{file_name}", healthRecordController.DownloadAttachment)
}
