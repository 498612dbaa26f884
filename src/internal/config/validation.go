package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	unixAccountRegexp = regexp.MustCompile(`^[a-z_][a-z0-9_-]{0,31}$`)
	serviceNameRegexp = regexp.MustCompile(`^[A-Za-z0-9@._-]+$`)
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "max":
		return fmt.Sprintf("must be <= %s", e.Param())
	case "nefield":
		return "must differ from trans_port"
	case "cidrv4":
		return "must be a valid IPv4 network in CIDR notation (e.g., 10.0.0.0/8)"
	case "unix_account":
		return "must be a valid system account name [a-z_][a-z0-9_-]*"
	case "service_name":
		return "must consist only of letters, numbers and [@._-]"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	FieldPath string // Dot-notation field path (e.g., "proxy.dns_port", "firewall.excluded_networks[1]")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("unix_account", validateUnixAccount); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("service_name", validateServiceName); err != nil {
		panic(err)
	}

	// Register function to get field name from "toml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateUnixAccount(fl validator.FieldLevel) bool {
	return unixAccountRegexp.MatchString(fl.Field().String())
}

func validateServiceName(fl validator.FieldLevel) bool {
	return serviceNameRegexp.MatchString(fl.Field().String())
}
