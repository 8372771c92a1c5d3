// Package validation registers custom binding rules shared by the handlers.
package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// contactInfoRe matches a 10-digit phone number with no leading zero.
var contactInfoRe = regexp.MustCompile(`^[1-9][0-9]{9}$`)

// Register installs the custom rules on gin's validator engine. Call once at
// startup before routes are served.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("contact10", contact10)
}

func contact10(fl validator.FieldLevel) bool {
	return contactInfoRe.MatchString(fl.Field().String())
}
