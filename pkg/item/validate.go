package item

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"tableflip.dev/daybook/pkg/timeutil"
)

// fieldOrder is the order problems are reported in.
var fieldOrder = []string{"id", "title", "description", "completed", "dayKey", "createdAt", "updatedAt"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("daykey", func(fl validator.FieldLevel) bool {
		return timeutil.IsDayKey(fl.Field().String())
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if ts, ok := field.Interface().(Timestamp); ok {
			return ts.Time
		}
		return nil
	}, Timestamp{})
	return v
}

// Validate checks the structural invariants of an item and reports every
// violated field in a single *MalformedError.
func Validate(i Item) error {
	err := validate.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	problems := make([]Problem, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, Problem{Field: fe.Field(), Reason: reasonFor(fe)})
	}
	return &MalformedError{Problems: sortProblems(problems)}
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "notblank":
		return "must not be blank"
	case "daykey":
		return "must match YYYY-MM-DD"
	default:
		return "failed " + fe.Tag()
	}
}

// Decode reads one persisted item record. Missing fields and values of the
// wrong JSON type are reported alongside the invariants Validate checks,
// rather than being coerced to zero values.
func Decode(data []byte) (Item, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return Item{}, &MalformedError{Problems: []Problem{{Field: "record", Reason: "must be an object"}}}
	}

	var (
		it       Item
		problems []Problem
		reported = map[string]bool{}
	)
	fail := func(field, reason string) {
		problems = append(problems, Problem{Field: field, Reason: reason})
		reported[field] = true
	}
	text := func(field string, dst *string) bool {
		raw, ok := fields[field]
		if !ok || isNull(raw) {
			fail(field, "missing")
			return false
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			fail(field, "must be a string")
			return false
		}
		return true
	}
	stamp := func(field string, dst *Timestamp) {
		var s string
		if !text(field, &s) {
			return
		}
		t, err := ParseTime(s)
		if err != nil {
			fail(field, "must be an ISO-8601 timestamp")
			return
		}
		dst.Time = t
	}

	text("id", &it.ID)
	text("title", &it.Title)
	text("description", &it.Description)
	if raw, ok := fields["completed"]; !ok || isNull(raw) {
		fail("completed", "missing")
	} else if err := json.Unmarshal(raw, &it.Completed); err != nil {
		fail("completed", "must be a boolean")
	}
	text("dayKey", &it.DayKey)
	stamp("createdAt", &it.CreatedAt)
	stamp("updatedAt", &it.UpdatedAt)

	var malformed *MalformedError
	if err := Validate(it); errors.As(err, &malformed) {
		for _, p := range malformed.Problems {
			if !reported[p.Field] {
				problems = append(problems, p)
			}
		}
	}
	if len(problems) > 0 {
		return Item{}, &MalformedError{Problems: sortProblems(problems)}
	}
	return it, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func sortProblems(problems []Problem) []Problem {
	rank := func(field string) int {
		for i, f := range fieldOrder {
			if f == field {
				return i
			}
		}
		return len(fieldOrder)
	}
	sort.SliceStable(problems, func(i, j int) bool {
		return rank(problems[i].Field) < rank(problems[j].Field)
	})
	return problems
}
