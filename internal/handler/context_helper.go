package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/meeting-planner-api/internal/timeline"
	appErrors "github.com/noah-isme/meeting-planner-api/pkg/errors"
)

// intParam reads a path parameter as an integer.
func intParam(c *gin.Context, name string) (int, error) {
	raw := c.Param(name)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, fmt.Sprintf("%s must be an integer", name))
	}
	return v, nil
}

// intQuery reads an optional integer query parameter.
func intQuery(c *gin.Context, name string) (*int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, fmt.Sprintf("%s must be an integer", name))
	}
	return &v, nil
}

// clockStyle reads the display format from the "format" query parameter.
func clockStyle(c *gin.Context) (timeline.ClockStyle, error) {
	style, err := timeline.ParseClockStyle(c.Query("format"))
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	return style, nil
}
