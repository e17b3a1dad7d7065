package models

// PaymentResponse is the body of a successful GET /v1/payments/{id}.
type PaymentResponse struct {
	Payment PaymentPublic `json:"payment"`
}

// ErrorResponse is the body of every non-2xx JSON response.
//
// Message is always set. Error carries additional detail about the failure
// and is omitted when there is nothing to add.
type ErrorResponse struct {
	Message string       `json:"message"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes the failure behind an [ErrorResponse] without
// exposing internal causes such as driver errors.
type ErrorDetail struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}
