package handler

import (
	"net/url"
	"time"

	"devportal/internal/domain/entity"
)

// placeholderGlyph stands in for any display value the row is missing.
const placeholderGlyph = "—"

var statusLabels = map[string]string{
	entity.StatusDraft:      "Draft",
	entity.StatusPreview:    "Preview",
	entity.StatusPublic:     "Public",
	entity.StatusDeprecated: "Deprecated",
	entity.StatusDisabled:   "Disabled",
}

type productView struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Status       string     `json:"status,omitempty"`
	StatusLabel  string     `json:"status_label"`
	Visibility   string     `json:"visibility"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty"`
	EndpointHost string     `json:"endpoint_host"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	Deleting     bool       `json:"deleting"`
}

type pageView struct {
	Loading  bool          `json:"loading"`
	Products []productView `json:"products"`
	Total    int           `json:"total"`
}

func statusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return placeholderGlyph
}

// Visibility is shown verbatim; only a missing value degrades.
func visibilityLabel(visibility string) string {
	if visibility == "" {
		return placeholderGlyph
	}
	return visibility
}

// endpointHost reduces the service endpoint URL to its host component.
func endpointHost(raw string) string {
	if raw == "" {
		return placeholderGlyph
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return placeholderGlyph
	}
	return u.Host
}

func newProductView(p *entity.Product, deleting bool) productView {
	return productView{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Status:       p.Status,
		StatusLabel:  statusLabel(p.Status),
		Visibility:   visibilityLabel(p.Visibility),
		ThumbnailURL: p.ThumbnailURL,
		EndpointHost: endpointHost(p.ServiceEndpointURL),
		CreatedAt:    p.CreatedAt,
		Deleting:     deleting,
	}
}
