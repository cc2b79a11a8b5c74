package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

var profileNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validations
	registerCustomValidations()
}

func registerCustomValidations() {
	// Profile name validation (Noroff restricts names to word characters)
	validate.RegisterValidation("profile_name", func(fl validator.FieldLevel) bool {
		return profileNamePattern.MatchString(fl.Field().String())
	})

	// Noroff student email validation
	validate.RegisterValidation("noroff_email", func(fl validator.FieldLevel) bool {
		email := strings.ToLower(fl.Field().String())
		return strings.HasSuffix(email, "@stud.noroff.no") || strings.HasSuffix(email, "@noroff.no")
	})

	// Calendar month in YYYY-MM form
	validate.RegisterValidation("year_month", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) != 7 || s[4] != '-' {
			return false
		}
		for i, r := range s {
			if i == 4 {
				continue
			}
			if r < '0' || r > '9' {
				return false
			}
		}
		month := (int(s[5]-'0') * 10) + int(s[6]-'0')
		return month >= 1 && month <= 12
	})
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "email":
			errors[field] = "Invalid email format"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "gte":
			errors[field] = "Value must be at least " + err.Param()
		case "lte":
			errors[field] = "Value must be at most " + err.Param()
		case "url":
			errors[field] = "Invalid URL format"
		case "profile_name":
			errors[field] = "Name may only contain letters, digits, and underscores"
		case "noroff_email":
			errors[field] = "Email must be a noroff.no address"
		case "year_month":
			errors[field] = "Month must be in YYYY-MM format"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}

// ValidateVar validates a single variable
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}
