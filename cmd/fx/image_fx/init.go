package image_fx

import (
	"go.uber.org/fx"

	"roamly/internal/services"
)

var Module = fx.Provide(services.NewImageService)
