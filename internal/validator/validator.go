package validator

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Struct runs the `validate` struct tags on s.
func Struct(s interface{}) error {
	return validate.Struct(s)
}
