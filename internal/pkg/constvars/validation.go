package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"min":              "must be at least %s characters long",
	"max":              "maximum at %s characters long",
	"len":              "must be %s characters long",
	"numeric":          "must be a number",
	"oneof":            "must be one of [%s]",
	"gt":               "must be greater than %s",
	"gte":              "must be greater than or equal to %s",
	"mongodb":          "must be a valid object id",
	"base64":           "must be a valid base64 string",
	"phone_number":     "must be a valid 10 digit mobile number",
	"required_if":      "is required when %s is %s",
	"required_without": "is required when %s is not present",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":              true,
	"max":              true,
	"len":              true,
	"gt":               true,
	"gte":              true,
	"oneof":            true,
	"required_if":      true,
	"required_without": true,
}

const (
	RegexMobileNumber = `^[6-9][0-9]{9}$`
)
