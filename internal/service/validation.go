package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/meeting-planner-api/internal/editor"
	"github.com/noah-isme/meeting-planner-api/internal/timeline"
	appErrors "github.com/noah-isme/meeting-planner-api/pkg/errors"
)

// registerTimeValidators adds the hhmm tag used by request payloads.
func registerTimeValidators(validate *validator.Validate) *validator.Validate {
	if validate == nil {
		validate = validator.New()
	}
	_ = validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := timeline.ParseTime(fl.Field().String())
		return err == nil
	})
	return validate
}

// validationError converts validator and timeline errors into a VALIDATION_ERROR.
func validationError(err error, message string) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		message = fmt.Sprintf("%s: field %s failed %s", message, fe.Field(), fe.Tag())
	}
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
}

// editorError maps schedule editor failures onto API errors.
func editorError(err error, userID, index int) error {
	var (
		malformed *timeline.MalformedTimeError
		inverted  *timeline.InvalidIntervalError
		duplicate *editor.DuplicateUserError
		badID     *editor.InvalidUserIDError
	)
	switch {
	case errors.Is(err, editor.ErrUserNotFound):
		return appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, fmt.Sprintf("user %d not found in draft", userID))
	case errors.Is(err, editor.ErrSlotIndexOutOfRange):
		return appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, fmt.Sprintf("busy slot %d not found for user %d", index, userID))
	case errors.As(err, &malformed), errors.As(err, &inverted), errors.As(err, &duplicate), errors.As(err, &badID):
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	default:
		return appErrors.FromError(err)
	}
}
