package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query and path parameter error messages
	ErrMsgInvalidLimit     = "Invalid limit parameter"
	ErrMsgInvalidIndex     = "Invalid image index"
	ErrMsgInvalidAsyncFlag = "Invalid async parameter"

	// Upload error messages
	ErrMsgInvalidUpload = "Expected a multipart form with an image file"
	ErrMsgUploadTooBig  = "Image is too large"
)

// Success messages for API responses
const (
	MsgDraftDiscarded   = "Draft discarded"
	MsgDraftUpdated     = "Draft updated"
	MsgImageAdded       = "Image added"
	MsgImageSlotsFull   = "All image slots are in use"
	MsgImageRemoved     = "Image removed"
	MsgSubmissionQueued = "Submission queued"
	MsgListingPosted    = "Your item has been posted"
	MsgDraftComplete    = "Draft is ready to post"
	MsgDraftIncomplete  = "Please fill in all required fields"
	MsgLoginSuccess     = "Logged in"
	MsgRegisterSuccess  = "Account created"
	MsgRoleSelected     = "Role selected"
)

// Query parameter names
const (
	QueryParamLimit = "limit"
	QueryParamAsync = "async"
	QueryParamCount = "n"
)

// Path parameter names
const (
	PathParamID    = "id"
	PathParamIndex = "index"
)

// Upload form
const (
	UploadFormField = "image"
	// MaxUploadMemory bounds the part of a multipart upload kept in memory
	MaxUploadMemory = 8 << 20
)
