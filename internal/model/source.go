package model

import "time"

// Source types.
const (
	SourceTypePage  = "page"
	SourceTypeGroup = "group"
)

// Source is a monitored Facebook page or group.
type Source struct {
	ID   string
	Name string
	Type string // page | group

	// AccessToken is the Graph API token used by the collector.
	// Stored AES-encrypted; decrypted only for the internal listing.
	AccessToken string

	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
