package routers

import (
	"medrecord-service/internal/app/delivery/http/middlewares"
	"medrecord-service/internal/app/services/users"
	"medrecord-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequireRoles(constvars.RoleTypeAdmin)).Get("/", userController.FindAllUsers)
	router.Get("/{user_id}", userController.FindUserByID)
	router.Put("/{user_id}", userController.UpdateUser)
	router.With(middlewares.RequireRoles(constvars.RoleTypeAdmin)).Delete("/{user_id}", userController.DeleteUser)
}
