package listing

import "time"

// Image upload limits
const (
	MaxImageUploadBytes = 8 << 20
	ImageKeyPrefix      = "drafts"
)

// AllowedImageTypes are the content types accepted for uploads, keyed to a file extension
var AllowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/heic": ".heic",
}

// Event sources recorded in event metadata
const (
	SourceSync  = "sync"
	SourceAsync = "async"
)

// DefaultSubmitTimeout bounds a backend call made from the queue
const DefaultSubmitTimeout = 30 * time.Second

// Error message formats
const (
	ErrMsgUnsupportedImageType = "unsupported image type %q"
	ErrMsgImageTooLarge        = "image exceeds %d bytes"
)

// Log messages
const (
	LogMsgDraftOpened        = "Draft opened"
	LogMsgDraftDiscarded     = "Draft discarded"
	LogMsgDraftEvicted       = "Draft session evicted"
	LogMsgDraftSubmitted     = "Draft submitted"
	LogMsgSubmissionRejected = "Draft submission rejected by backend"
	LogMsgSubmissionQueued   = "Draft submission queued"
	LogMsgPublishFailed      = "Failed to publish listing event"
	LogMsgImageUploaded      = "Draft image uploaded"
	LogMsgImageCleanupFailed = "Failed to delete orphaned image"
	LogMsgServiceShutdown    = "Listing service shutting down, waiting for queued submissions..."
)
