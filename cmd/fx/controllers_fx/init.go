package controllers_fx

import (
	"go.uber.org/fx"

	"roamly/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewSearchController),
	fx.Provide(controllers.NewPlanController))
