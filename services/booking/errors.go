package booking

import "fmt"

// Admission error codes.
const (
	CodeAlreadyBooked = "alreadyBooked"
	CodeInvalidInput  = "invalidInput"
)

// AdmissionError describes why a booking candidate was rejected.
type AdmissionError struct {
	Code    string
	Message string
}

func (e *AdmissionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAlreadyBookedError reports a conflict on the (date, email, treatment) triple.
func NewAlreadyBookedError(date string) error {
	return &AdmissionError{
		Code:    CodeAlreadyBooked,
		Message: fmt.Sprintf("You already have a booking on %s", date),
	}
}

// NewInvalidInputError reports a malformed booking candidate.
func NewInvalidInputError(msg string) error {
	return &AdmissionError{
		Code:    CodeInvalidInput,
		Message: msg,
	}
}
