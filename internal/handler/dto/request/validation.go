package request

import (
	"reflect"
	"strings"
	"sync"

	"parking-api/internal/domain/vehicle"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding rules to gin's validator engine.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		err = v.RegisterValidation("plate", validatePlate)
	})
	return err
}

// jsonFieldName makes validation errors report the wire name of a field.
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

func validatePlate(fl validator.FieldLevel) bool {
	return vehicle.PlatePattern.MatchString(vehicle.NormalizePlate(fl.Field().String()))
}
