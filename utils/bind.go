package utils

import (
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"github.com/swy0123/stablepath/errors"
)

var Validator = NewStructValidator()
var queryBinder = schema.NewDecoder()

func init() {
	queryBinder.SetAliasTag("query")
	queryBinder.IgnoreUnknownKeys(true)
}

type structValidator struct {
	validator *validator.Validate
}

func (s *structValidator) Validate(v any) error {
	return s.validator.Struct(v)
}

func NewStructValidator() *structValidator {
	v := &structValidator{validator: validator.New()}

	v.validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if tag, ok := fld.Tag.Lookup("query"); ok {
			return strings.SplitN(tag, ",", 2)[0]
		}
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	return v
}

// Bind populates a request struct in order: declared defaults, query
// parameters, JSON body, then validates. Panics with an AppError; the
// recovery middleware serializes it.
func Bind[T any](r *http.Request) *T {
	if reflect.TypeFor[T]().Kind() != reflect.Struct {
		panic(errors.NewValidationError("invalid request type"))
	}
	data := new(T)
	if err := defaults.Set(data); err != nil {
		panic(errors.HandleBindError(err))
	}
	if err := r.ParseForm(); err != nil {
		panic(errors.HandleBindError(err))
	}
	if err := queryBinder.Decode(data, r.Form); err != nil {
		panic(errors.HandleBindError(err))
	}
	bodyData, err := io.ReadAll(r.Body)
	if err != nil {
		panic(errors.HandleBindError(err))
	}
	if len(bodyData) > 0 {
		if err = json.Unmarshal(bodyData, data); err != nil {
			panic(errors.HandleBindError(err))
		}
	}

	if err = Validator.Validate(data); err != nil {
		panic(errors.HandleBindError(err))
	}

	return data
}
