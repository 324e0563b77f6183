package storage

// DefaultRegion is used when none is configured; most S3-compatible stores ignore it
const DefaultRegion = "us-east-1"

// Error message formats
const (
	ErrMsgUploadFailed = "s3 upload %s/%s: %w"
	ErrMsgDeleteFailed = "s3 delete %s/%s: %w"
)
