package errors

var (
	ErrEmptyInput = &DomainError{
		Code:    "EMPTY_INPUT",
		Message: "input data is empty",
	}
	ErrInvalidAddress = &DomainError{
		Code:    "INVALID_ADDRESS",
		Message: "invalid wallet address",
	}
	ErrInvalidAmount = &DomainError{
		Code:    "INVALID_AMOUNT",
		Message: "invalid payment amount",
	}
	ErrEncodingFailure = &DomainError{
		Code:    "ENCODING_FAILURE",
		Message: "failed to encode QR image",
	}
)
