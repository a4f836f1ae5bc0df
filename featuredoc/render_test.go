package featuredoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featuredoc/featuredoc/featuredoc"
)

func TestRenderHTML(t *testing.T) {
	t.Parallel()

	md := "* **`feat1`** *(enabled by default)* —  Enables feat1.\n"

	html, err := featuredoc.RenderHTML([]byte(md))
	require.NoError(t, err)

	got := string(html)
	assert.Contains(t, got, "<ul>")
	assert.Contains(t, got, "<li>")
	assert.Contains(t, got, "<code>feat1</code>")
	assert.Contains(t, got, "<strong>")
	assert.Contains(t, got, "<em>(enabled by default)</em>")
}

func TestRenderHTMLEmpty(t *testing.T) {
	t.Parallel()

	html, err := featuredoc.RenderHTML(nil)
	require.NoError(t, err)
	assert.Empty(t, string(html))
}
