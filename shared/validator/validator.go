package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"ohanna/shared/failure"
	"ohanna/shared/timezone"
	"reflect"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// registerValidMethod accepts fields whose type exposes `Valid() bool`, such as string enums.
func registerValidMethod(fl val.FieldLevel) bool {
	method := fl.Field().MethodByName("Valid")
	if !method.IsValid() {
		return false
	}

	result := method.Call([]reflect.Value{})

	return len(result) == 1 && result[0].Bool()
}

func registerDateValidation(fl val.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := timezone.ParseDate(str)

	return err == nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("valid", registerValidMethod)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})

	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("date", registerDateValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
