package validation

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/stencil-dev/stencil-cli/internal/constants"
)

// ValidNameRegex matches only letters (upper and lower case), numbers, dashes, and underscores
var ValidNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

var languageOptions = map[string]struct{}{
	"ts":    {},
	"js":    {},
	"ts-sw": {},
	"js-sw": {},
}

func isProjectName(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		panic(fmt.Sprintf("input field name is not a string: %s", fl.FieldName()))
	}

	return IsValidProjectName(fl.Field().String()) == nil
}

func isLanguageOption(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		panic(fmt.Sprintf("input field name is not a string: %s", fl.FieldName()))
	}

	_, ok := languageOptions[fl.Field().String()]
	return ok
}

// IsValidProjectName accepts alphanumeric names with dashes and underscores,
// plus the "." sentinel which means "scaffold into the current directory".
func IsValidProjectName(projectName string) error {
	if projectName == "" {
		return fmt.Errorf("project name can't be an empty string")
	}

	if projectName == constants.InPlaceSentinel {
		return nil
	}

	if len(projectName) > constants.MaxProjectNameLength {
		return fmt.Errorf("project name is too long, limit is %d characters", constants.MaxProjectNameLength)
	}

	if !ValidNameRegex.MatchString(projectName) {
		return fmt.Errorf("project name can only contain letters (a-z, A-Z), numbers (0-9), dashes (-), and underscores (_)")
	}

	return nil
}
