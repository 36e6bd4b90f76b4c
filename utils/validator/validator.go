package validatorx

import (
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v    *gpvalidator.Validate
	once sync.Once
)

// Init initializes the validator singleton (idempotent)
func Init() {
	once.Do(func() {
		v = gpvalidator.New()
		_ = v.RegisterValidation("notblank", notBlank)
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	Init()
	return v.Struct(s)
}

func notBlank(fl gpvalidator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
