package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerOnce sync.Once

// RegisterValidators teaches gin's validator to compare decimal amounts, so
// tags like `binding:"required,gt=0"` work on decimal.Decimal fields.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindingMessage turns validator errors into a short Spanish message
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		if errors.Is(err, errEmptyBody) {
			return err.Error()
		}
		return "JSON inválido: " + err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s es requerido", fe.Field()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s debe ser mayor a %s", fe.Field(), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s no puede exceder %s caracteres", fe.Field(), fe.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s debe tener al menos %s caracteres", fe.Field(), fe.Param()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s debe ser un email válido", fe.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s debe ser uno de: %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s es inválido", fe.Field()))
		}
	}
	return strings.Join(msgs, "; ")
}

// bind reads a request body into req and answers 400 on failure
func bind(c *gin.Context, key string, req interface{}) bool {
	if err := BindNestedOrFlat(c, key, req); err != nil {
		badRequest(c, bindingMessage(err))
		return false
	}
	return true
}
