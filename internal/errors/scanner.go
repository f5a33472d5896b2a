package errors

var (
	ErrCameraUnsupported = &DomainError{
		Code:    "CAMERA_UNSUPPORTED",
		Message: "this device does not provide a camera API",
	}
	ErrPermissionDenied = &DomainError{
		Code:    "PERMISSION_DENIED",
		Message: "camera access was denied",
	}
	ErrDeviceNotFound = &DomainError{
		Code:    "DEVICE_NOT_FOUND",
		Message: "no camera device found",
	}
	ErrStreamFailure = &DomainError{
		Code:    "STREAM_FAILURE",
		Message: "unable to start the camera stream",
	}
	ErrScannerStopped = &DomainError{
		Code:    "SCANNER_STOPPED",
		Message: "scanner is stopped",
	}
)
