package storage

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"quiz/internal/core"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report db column names ("question") instead of Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("db"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(f.Name)
		}
		return name
	})
	return v
}

// checkQuiz applies the quiz field rules and returns a field validation error
// carrying one message per violated rule
func checkQuiz(q *core.Quiz) error {
	err := validate.Struct(q)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return core.ErrGeneric(fmt.Errorf("validate quiz: %w", err))
	}

	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s must not be empty", fe.Field()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return core.ErrFieldValidation(messages)
}
