package http

import (
	"github.com/danielgtaylor/huma/v2"
)

// errorEnvelope is the error body for every non-2xx response, including the
// validation errors Huma raises before a handler runs.
type errorEnvelope struct {
	status  int
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func (e *errorEnvelope) Error() string {
	return e.Message
}

func (e *errorEnvelope) GetStatus() int {
	return e.status
}

func init() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		details := make([]string, 0, len(errs))
		for _, err := range errs {
			if err == nil {
				continue
			}
			details = append(details, err.Error())
		}

		if message == "" {
			message = "Invalid request parameters"
		}

		return &errorEnvelope{
			status:  status,
			Message: message,
			Errors:  details,
		}
	}
}
