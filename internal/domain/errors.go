package domain

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound      = errString("not found")
	ErrInvalid       = errString("invalid input")
	ErrSetupRequired = errString("investor setup required")
	ErrUnavailable   = errString("feature not configured")
)

type errString string

func (e errString) Error() string { return string(e) }

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct tags and reports failures wrapped in ErrInvalid.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s failed %q", ErrInvalid, fe.Namespace(), fe.Tag())
	}
	return fmt.Errorf("%w: %v", ErrInvalid, err)
}
