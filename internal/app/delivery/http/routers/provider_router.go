package routers

import (
	"medrecord-service/internal/app/delivery/http/middlewares"
	"medrecord-service/internal/app/services/providers"
	"medrecord-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachProviderRoutes(router chi.Router, middlewares *middlewares.Middlewares, providerController *providers.ProviderController) {
	// Provider directory is browsable without an account.
	router.Get("/", providerController.FindAllProviders)

	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RoleTypeProvider, constvars.RoleTypeAdmin)).Post("/", providerController.CreateProvider)
	router.With(middlewares.Authenticate).Get("/me", providerController.FindMyProvider)

	router.Get("/{provider_id}", providerController.FindProviderByID)
	router.With(middlewares.Authenticate).Put("/{provider_id}", providerController.UpdateProvider)
	router.With(middlewares.Authenticate, middlewares.RequireRoles(constvars.RoleTypeAdmin)).Delete("/{provider_id}", providerController.DeleteProvider)
	router.With(middlewares.Authenticate).Post("/{provider_id}/patients", providerController.AssignPatient)
}
