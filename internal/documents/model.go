package documents

import "time"

// Document represents an uploaded student submission owned by a user.
type Document struct {
	ID            string
	UserID        string
	Filename      string
	ContentType   string
	SizeBytes     int64
	StorageKey    string
	SHA256        string
	ExtractedText string
	CreatedAt     time.Time
}
