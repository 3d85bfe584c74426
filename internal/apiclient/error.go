package apiclient

// Fixed user-facing messages for failures that never produced a usable
// response. Server-provided messages always win when a body is present.
const (
	NetworkErrorMessage       = "Unable to connect to server. Please check your connection and try again."
	TimeoutErrorMessage       = "The request timed out. Please try again."
	InvalidFormatErrorMessage = "Invalid data format received from server"
	UnauthorizedMessage       = "Your session has expired. Please log in again."
)

// APIError is the normalized shape every failed request is converted
// into before it reaches UI state. Status is zero when no response was
// received at all.
type APIError struct {
	Message        string
	Status         int
	Details        any
	IsNetworkError bool
	IsTimeout      bool
}

func (e *APIError) Error() string {
	return e.Message
}

func networkError() *APIError {
	return &APIError{Message: NetworkErrorMessage, IsNetworkError: true}
}

func timeoutError() *APIError {
	return &APIError{Message: TimeoutErrorMessage, IsTimeout: true}
}

// errorBody is the subset of a 4xx/5xx response body the client cares
// about. Backends in the wild use either "message" or "title".
type errorBody struct {
	Message string `json:"message"`
	Title   string `json:"title"`
	Details any    `json:"details"`
	Errors  any    `json:"errors"`
}

func serverError(status int, body errorBody, fallback string) *APIError {
	message := body.Message
	if message == "" {
		message = body.Title
	}
	if message == "" {
		message = fallback
	}
	details := body.Details
	if details == nil {
		details = body.Errors
	}
	return &APIError{Message: message, Status: status, Details: details}
}
