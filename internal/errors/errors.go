// Package errors defines the domain error values shared across services.
package errors

// DomainError is a typed error with a stable machine-readable code and a
// user-facing message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches two domain errors by code so wrapped values still compare
// with errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}
