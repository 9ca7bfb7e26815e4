package handler

// User-facing error messages.
// 5xx messages intentionally do not expose internal error details.
const (
	// Generic messages
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgInvalidRequestError   = "Invalid request. Please check your inputs."
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Care verification messages
	ErrMsgPlantNotFoundError       = "Plant not found"
	ErrMsgUserNotFoundError        = "User not found"
	ErrMsgUpstreamDataError        = "Could not read the plant checkup result. Please try another photo."
	ErrMsgUpstreamUnavailableError = "Plant checkup service is unavailable. Please try again later."
	ErrMsgPhotoRequired            = "photo is required"
	ErrMsgPhotoTooLarge            = "photo exceeds the %d byte limit"
	ErrMsgInvalidMultipart         = "Invalid multipart form"

	// Parameter validation error messages
	ErrMsgInvalidLimit = "Invalid limit parameter"
)

// Success messages for API responses
const (
	MsgCareVerified = "Care Verified!"
)
