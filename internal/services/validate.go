package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"

	"academic-events/dto"
	"academic-events/internal/metrics"
	"academic-events/internal/rules"
)

// ErrInvalidInput is returned when a payload fails structural validation.
var ErrInvalidInput = errors.New("invalid input")

type enum interface{ Valid() bool }

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// enum accepts only the members of a closed string set.
	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(enum)
		return ok && e.Valid()
	})
	return v
}

func checkInput(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", field, fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

// assign copies a set Optional into dst and records the stored field. A null
// clears nullable fields and is rejected for the others.
func assign[T any](o dto.Optional[T], field string, dst *T, fields bson.M, nullable bool) error {
	if !o.Set {
		return nil
	}
	if o.Null {
		if !nullable {
			return fmt.Errorf("%w: %s cannot be null", ErrInvalidInput, field)
		}
		var zero T
		*dst = zero
		fields[field] = nil
		return nil
	}
	*dst = o.Value
	fields[field] = o.Value
	return nil
}

// normalizeDate keeps the precision the document store round-trips, so
// same-day lookups match exactly.
func normalizeDate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

func rejected(entity string, err error) error {
	if code := rules.Code(err); code != "" {
		metrics.RuleRejectionsTotal.WithLabelValues(entity, code).Inc()
	}
	return err
}
