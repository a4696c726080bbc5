package markup

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineKinds(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		kind   Kind
		text   string
		number int
	}{
		{"heading", "**Step 1: Recon**", Heading, "Step 1: Recon", 0},
		{"heading with leading space", "   **Why**  ", Heading, "Why", 0},
		{"only opening marker is paragraph", "**Note", Paragraph, "**Note", 0},
		{"bold lead-in is paragraph", "**Note:** rest of line", Paragraph, "**Note:** rest of line", 0},
		{"bare markers are paragraph", "****", Paragraph, "****", 0},
		{"bullet", "- Use checked_add", Bullet, "Use checked_add", 0},
		{"ordered", "3. Verify the program id", Ordered, "Verify the program id", 3},
		{"ordered multi digit", "12. Twelfth", Ordered, "Twelfth", 12},
		{"decimal is paragraph", "1.5 million lamports", Paragraph, "1.5 million lamports", 0},
		{"numeral without space is paragraph", "1.first", Paragraph, "1.first", 0},
		{"dash without space", "-not a bullet", Paragraph, "-not a bullet", 0},
		{"paragraph", "Plain text line.", Paragraph, "Plain text line.", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := ParseLine(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.kind, b.Kind)
			assert.Equal(t, tt.text, b.Text)
			assert.Equal(t, tt.number, b.Number)
		})
	}
}

func TestBoldLeadInKeepsSpans(t *testing.T) {
	b, ok := ParseLine("**Note:** check the owner")
	require.True(t, ok)
	assert.Equal(t, []Span{
		{Text: "Note:", Bold: true},
		{Text: " check the owner"},
	}, b.Spans)
}

func TestParseLineBlank(t *testing.T) {
	_, ok := ParseLine("   \t ")
	assert.False(t, ok)
}

func TestParseSkipsEmptyLines(t *testing.T) {
	blocks := Parse("first\n\n   \nsecond\n")
	require.Len(t, blocks, 2)
	assert.Equal(t, "first", blocks[0].Text)
	assert.Equal(t, "second", blocks[1].Text)
}

func TestInlineSpans(t *testing.T) {
	spans := Inline("use **Signer** and `has_one` here")
	assert.Equal(t, []Span{
		{Text: "use "},
		{Text: "Signer", Bold: true},
		{Text: " and "},
		{Text: "has_one", Code: true},
		{Text: " here"},
	}, spans)
}

func TestInlineUnclosedMarkers(t *testing.T) {
	assert.Equal(t, []Span{{Text: "a ** b ` c"}}, Inline("a ** b ` c"))
	assert.Equal(t, []Span{{Text: "****"}}, Inline("****"))
}

func TestGroupBlocks(t *testing.T) {
	text := strings.Join([]string{
		"**Title**",
		"intro",
		"- a",
		"- b",
		"1. one",
		"2. two",
		"- c",
		"outro",
	}, "\n")

	groups := Render(text)
	require.Len(t, groups, 6)

	assert.True(t, groups[0].IsHeading())
	assert.True(t, groups[1].IsParagraph())
	assert.True(t, groups[2].IsBulletList())
	assert.Len(t, groups[2].Blocks, 2)
	assert.True(t, groups[3].IsOrderedList())
	assert.Equal(t, 1, groups[3].Start())
	assert.Len(t, groups[3].Blocks, 2)
	assert.True(t, groups[4].IsBulletList())
	assert.Len(t, groups[4].Blocks, 1)
	assert.True(t, groups[5].IsParagraph())
}

func TestMarkupProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("every non-empty line yields one block", prop.ForAll(
		func(lines []string) bool {
			want := 0
			for _, l := range lines {
				if strings.TrimSpace(l) != "" {
					want++
				}
			}
			return len(Parse(strings.Join(lines, "\n"))) == want
		},
		gen.SliceOf(gen.AnyString().Map(func(s string) string {
			return strings.ReplaceAll(s, "\n", " ")
		})),
	))

	properties.Property("text without markers is a single plain span", prop.ForAll(
		func(s string) bool {
			spans := Inline(s)
			if s == "" {
				return len(spans) == 0
			}
			return len(spans) == 1 && spans[0].Text == s && !spans[0].Bold && !spans[0].Code
		},
		gen.AlphaString(),
	))

	properties.Property("grouping keeps every block in order", prop.ForAll(
		func(lines []string) bool {
			blocks := Parse(strings.Join(lines, "\n"))
			var flat []Block
			for _, g := range GroupBlocks(blocks) {
				flat = append(flat, g.Blocks...)
			}
			if len(flat) != len(blocks) {
				return false
			}
			for i := range flat {
				if flat[i].Text != blocks[i].Text {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.OneConstOf("- item", "1. first", "2. second", "**Head**", "para")),
	))

	properties.TestingRun(t)
}
