package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joinLine(l Line) string {
	var sb strings.Builder
	for _, t := range l.Tokens {
		sb.WriteString(t.Text)
	}
	return sb.String()
}

func TestHighlightKeepsSourceText(t *testing.T) {
	h := New(DefaultStyle)
	code := "pub fn withdraw(amount: u64) -> Result<()> {\n    Ok(())\n}"

	lines, err := h.Highlight(code, "rust")
	require.NoError(t, err)
	require.Len(t, lines, 3)

	for i, want := range strings.Split(code, "\n") {
		assert.Equal(t, i+1, lines[i].Number)
		assert.Equal(t, want, joinLine(lines[i]))
	}
}

func TestHighlightClassifiesKeywords(t *testing.T) {
	lines, err := New(DefaultStyle).Highlight("pub fn main() {}", "rust")
	require.NoError(t, err)
	require.NotEmpty(t, lines)

	var keywords int
	for _, tok := range lines[0].Tokens {
		if strings.HasPrefix(tok.Class, "k") {
			keywords++
		}
	}
	assert.Positive(t, keywords)
}

func TestHighlightUnknownLanguageFallsBack(t *testing.T) {
	lines, err := New(DefaultStyle).Highlight("just text\nsecond", "no-such-language")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "just text", joinLine(lines[0]))
	assert.Equal(t, "second", joinLine(lines[1]))
}

func TestHighlightPreservesBlankLines(t *testing.T) {
	lines, err := New(DefaultStyle).Highlight("a\n\nb", "text")
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Empty(t, lines[1].Tokens)
}

func TestCSS(t *testing.T) {
	css, err := New("no-such-style").CSS()
	require.NoError(t, err)
	assert.Contains(t, css, ".chroma")
}
