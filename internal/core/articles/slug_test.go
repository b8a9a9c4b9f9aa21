package articles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify_Basic(t *testing.T) {
	assert.Equal(t, "hello-world", Slugify("Hello World"))
}

func TestSlugify_CollapsesPunctuationRuns(t *testing.T) {
	assert.Equal(t, "whats-new-in-2025", Slugify("What's new... in 2025?!"))
}

func TestSlugify_TrimsEdgeHyphens(t *testing.T) {
	assert.Equal(t, "trimmed", Slugify("  --trimmed--  "))
}

func TestSlugify_UnicodeLettersKept(t *testing.T) {
	assert.Equal(t, "café-culture", Slugify("Café Culture"))
}

func TestSlugify_AllPunctuation(t *testing.T) {
	assert.Equal(t, "", Slugify("!!! ???"))
}
