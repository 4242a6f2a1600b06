package models

import "time"

// Link is the persistent mapping from a short code to its destination URL,
// plus usage metadata. Code and URL are immutable after creation; only the
// click fields change, and only through the registry's click recording.
type Link struct {
	Code        string     `json:"code" db:"code"`
	URL         string     `json:"url" db:"url"`
	Clicks      int64      `json:"clicks" db:"clicks"`
	LastClicked *time.Time `json:"last_clicked" db:"last_clicked"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// CreateLinkRequest is the POST /api/links payload. Code is optional; when
// empty a code is generated server-side.
type CreateLinkRequest struct {
	URL  string `json:"url"`
	Code string `json:"code,omitempty"`
}

// CreateLinkResponse is the creation result returned to the caller.
type CreateLinkResponse struct {
	Code string `json:"code"`
	URL  string `json:"url"`
}
