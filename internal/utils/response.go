package utils

import (
	"time"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform wrapper around every API response body. A success
// carries data and a null errors field; a failure carries errors (possibly
// null) and a null data field. Never both.
type Envelope struct {
	Success    bool      `json:"success"`
	StatusCode int       `json:"statusCode"`
	Message    string    `json:"message"`
	Data       any       `json:"data"`
	Errors     any       `json:"errors"`
	Timestamp  time.Time `json:"timestamp"`
}

// OK writes a success envelope with the given status, message and data.
func OK(c echo.Context, status int, msg string, data any) error {
	return c.JSON(status, Envelope{
		Success:    true,
		StatusCode: status,
		Message:    msg,
		Data:       data,
		Timestamp:  time.Now().UTC(),
	})
}

// Fail writes a failure envelope with the given status, message and error
// details. Pass nil details when there is nothing structured to report.
func Fail(c echo.Context, status int, msg string, details any) error {
	return c.JSON(status, Envelope{
		Success:    false,
		StatusCode: status,
		Message:    msg,
		Errors:     details,
		Timestamp:  time.Now().UTC(),
	})
}
