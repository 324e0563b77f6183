package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// likeEscape escapes LIKE wildcards in user supplied text
const likeEscape = `\`

// Error Messages
const (
	ErrMsgFailedToInsertListing  = "failed to insert listing"
	ErrMsgFailedToGetListing     = "failed to get listing"
	ErrMsgFailedToUpdateListing  = "failed to update listing status"
	ErrMsgFailedToSearchListings = "failed to search listings"
	ErrMsgFailedToInsertAccount  = "failed to insert account"
	ErrMsgFailedToGetAccount     = "failed to get account"
)
