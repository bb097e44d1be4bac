package exceptions

import (
	"doctrack-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	Kind          string     `json:"kind,omitempty"`
	Code          string     `json:"code,omitempty"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
	Err           error      `json:"-"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// BuildNewCustomError wraps err into a CustomError. When err already is a
// CustomError its kind, code and locations are carried over.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	return build(err, statusCode, constvars.ErrKindInternal, constvars.ErrCodeServer, clientMessage, devMessage, 3)
}

func newKindError(err error, statusCode int, kind, code, clientMessage, devMessage string) *CustomError {
	return build(err, statusCode, kind, code, clientMessage, devMessage, 4)
}

func build(err error, statusCode int, kind, code, clientMessage, devMessage string, skip int) *CustomError {
	customErr := &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		Kind:          kind,
		Code:          code,
		DevMessage:    devMessage,
		Err:           err,
	}

	var previous *CustomError
	if errors.As(err, &previous) {
		customErr.Locations = append(customErr.Locations, previous.Locations...)
	} else if err != nil {
		customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	customErr.Locations = append([]Location{getLocation(skip)}, customErr.Locations...)
	return customErr
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}

// Code returns the specific reason carried by err, or "" when err is not a CustomError.
func Code(err error) string {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Code
	}
	return ""
}

// Kind returns the taxonomy kind carried by err, or "" when err is not a CustomError.
func Kind(err error) string {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind
	}
	return ""
}

func HasCode(err error, code string) bool {
	return Code(err) == code
}
