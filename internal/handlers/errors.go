package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"user-processing-api/internal/models"
	"user-processing-api/pkg/lambda"
)

// errorKind names the category of an error for the internal error body.
// It unwraps to the root cause first, so wrapped decode errors still
// report the decoder's type rather than the wrapper's.
func errorKind(err error) string {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			break
		}
		err = unwrapped
	}
	return typeName(err)
}

// panicKind names the category of a recovered panic value.
func panicKind(value any) string {
	if err, ok := value.(error); ok {
		return errorKind(err)
	}
	return typeName(value)
}

func typeName(v any) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", v), "*")
}

// jsonResponse marshals a body into a JSON envelope response. Marshal
// failures collapse into the internal error response so the handler
// always returns well-formed JSON.
func jsonResponse(statusCode int, body any) *lambda.Response {
	data, err := json.Marshal(body)
	if err != nil {
		return internalErrorResponse(err.Error(), errorKind(err))
	}
	return lambda.NewJSONResponse(statusCode, data)
}

// internalErrorResponse builds the 500 envelope carrying the failure
// message and its category.
func internalErrorResponse(message, kind string) *lambda.Response {
	body := models.InternalErrorResponse{
		Error:   models.InternalErrorMessage,
		Message: message,
		Type:    kind,
	}
	// All fields are strings, so this cannot fail.
	data, _ := json.Marshal(body)
	return lambda.NewJSONResponse(500, data)
}
