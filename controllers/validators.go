package controllers

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ratemybandeco/backend/models"
)

// RegisterValidators adds the institutional-email rule to gin's binding
// engine. Called once from router setup.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("uspemail", func(fl validator.FieldLevel) bool {
			return strings.HasSuffix(strings.ToLower(fl.Field().String()), models.InstitutionalEmailSuffix)
		})
	}
}
