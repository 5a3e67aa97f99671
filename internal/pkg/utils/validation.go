package utils

import (
	"regexp"

	"petfirst-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("phone_number", validatePhoneNumber)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexMobileNumber).MatchString(fl.Field().String())
}
