package handlers

import (
	"strings"
	"sync"

	"github.com/SscSPs/fintrack/internal/core/domain"
	"github.com/SscSPs/fintrack/internal/utils"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by the request DTOs.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("password", validatePassword)
		_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	})
}

func validatePassword(fl validator.FieldLevel) bool {
	return utils.ValidatePasswordComplexity(fl.Field().String()) == nil
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	return domain.IsValidCurrencyCode(strings.ToUpper(strings.TrimSpace(fl.Field().String())))
}
