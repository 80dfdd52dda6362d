package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"devportal/internal/domain/entity"
)

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Draft", statusLabel(entity.StatusDraft))
	assert.Equal(t, "Preview", statusLabel(entity.StatusPreview))
	assert.Equal(t, "Public", statusLabel(entity.StatusPublic))
	assert.Equal(t, "Deprecated", statusLabel(entity.StatusDeprecated))
	assert.Equal(t, "Disabled", statusLabel(entity.StatusDisabled))

	// Unknown and missing values degrade instead of failing.
	assert.Equal(t, placeholderGlyph, statusLabel("archived"))
	assert.Equal(t, placeholderGlyph, statusLabel(""))
}

func TestVisibilityShownVerbatim(t *testing.T) {
	assert.Equal(t, "catalog", visibilityLabel(entity.VisibilityCatalog))
	assert.Equal(t, "somethingelse", visibilityLabel("somethingelse"))
	assert.Equal(t, placeholderGlyph, visibilityLabel(""))
}

func TestEndpointHost(t *testing.T) {
	assert.Equal(t, "api.example.com", endpointHost("https://api.example.com/v2/weather"))
	assert.Equal(t, "localhost:8443", endpointHost("https://localhost:8443"))
	assert.Equal(t, placeholderGlyph, endpointHost(""))
	assert.Equal(t, placeholderGlyph, endpointHost("not a url"))
}
