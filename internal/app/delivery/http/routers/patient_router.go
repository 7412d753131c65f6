package routers

import (
	"medrecord-service/internal/app/delivery/http/middlewares"
	"medrecord-service/internal/app/services/patients"
	"medrecord-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", patientController.CreatePatient)
	router.With(middlewares.RequireRoles(constvars.RoleTypeProvider, constvars.RoleTypeAdmin)).Get("/", patientController.FindAllPatients)
	router.Get("/me", patientController.FindMyPatient)
	router.Get("/{patient_id}", patientController.FindPatientByID)
	router.Put("/{patient_id}", patientController.UpdatePatient)
	router.With(middlewares.RequireRoles(constvars.RoleTypeAdmin)).Delete("/{patient_id}", patientController.DeletePatient)
}
