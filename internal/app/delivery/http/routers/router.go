package routers

import (
	"fmt"
	"time"

	"medrecord-service/internal/app/config"
	"medrecord-service/internal/app/delivery/http/middlewares"
	"medrecord-service/internal/app/services/auth"
	"medrecord-service/internal/app/services/healthrecords"
	"medrecord-service/internal/app/services/patients"
	"medrecord-service/internal/app/services/providers"
	"medrecord-service/internal/app/services/users"
	"medrecord-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	userController *users.UserController,
	patientController *patients.PatientController,
	providerController *providers.ProviderController,
	healthRecordController *healthrecords.HealthRecordController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/"+constvars.ResourceAuth, func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/"+constvars.ResourceUsers, func(r chi.Router) {
				attachUserRoutes(r, middlewares, userController)
			})

			r.Route("/"+constvars.ResourcePatients, func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController)
			})

			r.Route("/"+constvars.ResourceProviders, func(r chi.Router) {
				attachProviderRoutes(r, middlewares, providerController)
			})

			r.Route("/"+constvars.ResourceHealthRecords, func(r chi.Router) {
				attachHealthRecordRoutes(r, middlewares, healthRecordController)
			})
		})
	})
}
