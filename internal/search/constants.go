package search

// DefaultPopularSearches seed the popular list before any query has been recorded
var DefaultPopularSearches = []string{
	"Baby clothes 0-6M",
	"Stroller",
	"High chair",
	"Baby books",
	"Toys 2-3 years",
}

// Popular search limits
const (
	DefaultPopularCount = 5
	MaxPopularCount     = 20
	MaxTrackedQueries   = 1000
	MaxQueryLength      = 200
)

// Log messages
const (
	LogMsgSessionOpened   = "Search session opened"
	LogMsgSearchPerformed = "Search performed"
	LogMsgPublishFailed   = "Failed to publish search event"
	LogMsgPopularDecayed  = "Popular search counts decayed"
)
