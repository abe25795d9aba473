package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/milassets/asset_command_app/internal/core/domain"
)

// registerCustomValidators wires domain enums into gin's binding layer so
// malformed filter values fail at bind time with a uniform 400.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("movementkind", func(fl validator.FieldLevel) bool {
		return domain.MovementKind(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("actorrole", func(fl validator.FieldLevel) bool {
		return domain.Role(fl.Field().String()).IsValid()
	})
}
