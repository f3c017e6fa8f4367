package domain

import "time"

// SummaryKeyPrefix namespaces summaries in the shared key-value store
const SummaryKeyPrefix = "summary:"

// SummaryKey returns the store key for a session's summary
func SummaryKey(sessionID string) string {
	return SummaryKeyPrefix + sessionID
}

// Session is one analysis request and the PDF it was created for
type Session struct {
	ID        string    `json:"session_id"`
	CreatedAt time.Time `json:"-"`
	FilePath  string    `json:"-"`
}

// SummaryStatus reports whether a session's summary has been stored yet
type SummaryStatus string

const (
	SummaryStatusPending SummaryStatus = "pending"
	SummaryStatusReady   SummaryStatus = "ready"
)

// SessionSummary is what the front end polls for
type SessionSummary struct {
	SessionID string        `json:"session_id"`
	Status    SummaryStatus `json:"status"`
	Summary   string        `json:"summary,omitempty"`
}
