package entity

import (
	"time"
)

// Product statuses as stored in the catalog collection.
const (
	StatusDraft      = "draft"
	StatusPreview    = "preview"
	StatusPublic     = "public"
	StatusDeprecated = "deprecated"
	StatusDisabled   = "disabled"
)

// Visibility values as stored in the catalog collection.
const (
	VisibilityCatalog  = "catalog"
	VisibilityUnlisted = "unlisted"
	VisibilityInvited  = "invited"
	VisibilityInternal = "internal"
)

// Product is one API product listing row. The identifier is unique and
// immutable; every other field is owned and mutated by the remote store,
// so the dashboard only ever holds a read-only snapshot of it.
type Product struct {
	ID                 string     `json:"id" firestore:"id"`
	Name               string     `json:"name,omitempty" firestore:"name"`
	Category           string     `json:"category,omitempty" firestore:"category"`
	Status             string     `json:"status,omitempty" firestore:"status"`
	Visibility         string     `json:"visibility,omitempty" firestore:"visibility"`
	ThumbnailURL       string     `json:"thumbnail_url,omitempty" firestore:"thumbnailUrl"`
	ServiceEndpointURL string     `json:"service_endpoint_url,omitempty" firestore:"serviceEndpointUrl"`
	CreatedAt          *time.Time `json:"created_at,omitempty" firestore:"createdAt"`
}
