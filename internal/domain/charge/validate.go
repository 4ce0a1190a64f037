package charge

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
	errValidate  error
)

func initValidator() (*validator.Validate, error) {
	vld := validator.New(validator.WithRequiredStructEnabled())

	vld.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	vld.RegisterCustomTypeFunc(func(v reflect.Value) any {
		m, ok := v.Interface().(Money)
		if !ok {
			return nil
		}
		return m.text
	}, Money{})

	if err := vld.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		return inAmountRange(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("register 'amount': %w", err)
	}

	return vld, nil
}

func getValidator() (*validator.Validate, error) {
	validateOnce.Do(func() {
		validate, errValidate = initValidator()
	})
	return validate, errValidate
}

var reasons = map[string]func(fe validator.FieldError) string{
	"required": func(validator.FieldError) string { return "is required" },
	"max": func(fe validator.FieldError) string {
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	},
	"min": func(fe validator.FieldError) string {
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	},
	"len":     func(fe validator.FieldError) string { return "must be exactly " + fe.Param() + " characters" },
	"numeric": func(validator.FieldError) string { return "must be numeric" },
	"email":   func(validator.FieldError) string { return "must be a valid email" },
	"url":     func(validator.FieldError) string { return "must be a valid URL" },
	"amount": func(validator.FieldError) string {
		return "must be between " + MinAmount.StringFixed(2) + " and " + MaxAmount.StringFixed(2)
	},
}

// check runs the rule table declared in v's struct tags and reports every
// failing field at once.
func check(v any) error {
	vld, err := getValidator()
	if err != nil {
		return err
	}

	err = vld.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ValidationError{Violations: make([]Violation, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		reason := "is invalid"
		if f, ok := reasons[fe.Tag()]; ok {
			reason = f(fe)
		}
		out.Violations = append(out.Violations, Violation{
			Field:  fieldPath(fe.Namespace()),
			Rule:   fe.Tag(),
			Reason: reason,
		})
	}
	return out
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
