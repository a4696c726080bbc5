// Package markup разбирает построчную разметку текстов паттернов и Deep Dive.
//
// Каждая непустая строка — отдельный блок:
//
//	**Заголовок**   -> Heading (маркеры ** убираются)
//	- пункт         -> Bullet
//	1. пункт        -> Ordered
//	всё остальное   -> Paragraph
//
// Внутри текста поддерживаются **жирный** и `код`.
package markup

import (
	"regexp"
	"strconv"
	"strings"
)

type Kind int

const (
	Paragraph Kind = iota
	Heading
	Bullet
	Ordered
)

func (k Kind) String() string {
	switch k {
	case Heading:
		return "heading"
	case Bullet:
		return "bullet"
	case Ordered:
		return "ordered"
	default:
		return "paragraph"
	}
}

type Span struct {
	Text string
	Bold bool
	Code bool
}

type Block struct {
	Kind   Kind
	Number int // только для Ordered
	Text   string
	Spans  []Span
}

// пробел после точки обязателен: "1.5 SOL" не пункт списка
var orderedRe = regexp.MustCompile(`^(\d+)\.\s+(.*)$`)

// Parse — блоки в порядке строк; пустые строки пропускаются
func Parse(text string) []Block {
	var blocks []Block
	for _, line := range strings.Split(text, "\n") {
		if b, ok := ParseLine(line); ok {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// ParseLine — один блок из строки; false для пустой строки
func ParseLine(line string) (Block, bool) {
	s := strings.TrimSpace(line)
	if s == "" {
		return Block{}, false
	}

	switch {
	case isHeading(s):
		text := strings.TrimSpace(strings.ReplaceAll(s, "**", ""))
		return Block{Kind: Heading, Text: text, Spans: []Span{{Text: text}}}, true

	case strings.HasPrefix(s, "- "):
		text := strings.TrimSpace(s[2:])
		return Block{Kind: Bullet, Text: text, Spans: Inline(text)}, true
	}

	if m := orderedRe.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			text := strings.TrimSpace(m[2])
			return Block{Kind: Ordered, Number: n, Text: text, Spans: Inline(text)}, true
		}
	}

	return Block{Kind: Paragraph, Text: s, Spans: Inline(s)}, true
}

// заголовок — вся строка в **...**; "**Note:** дальше текст" остаётся абзацем
func isHeading(s string) bool {
	return len(s) > 4 && strings.HasPrefix(s, "**") && strings.HasSuffix(s, "**")
}

// Inline режет строку на спаны. Незакрытый маркер остаётся обычным текстом.
func Inline(s string) []Span {
	var (
		spans []Span
		buf   strings.Builder
	)
	flush := func() {
		if buf.Len() > 0 {
			spans = append(spans, Span{Text: buf.String()})
			buf.Reset()
		}
	}

	for i := 0; i < len(s); {
		if strings.HasPrefix(s[i:], "**") {
			if end := strings.Index(s[i+2:], "**"); end > 0 {
				flush()
				spans = append(spans, Span{Text: s[i+2 : i+2+end], Bold: true})
				i += end + 4
				continue
			}
		} else if s[i] == '`' {
			if end := strings.IndexByte(s[i+1:], '`'); end > 0 {
				flush()
				spans = append(spans, Span{Text: s[i+1 : i+1+end], Code: true})
				i += end + 2
				continue
			}
		}
		buf.WriteByte(s[i])
		i++
	}
	flush()

	return spans
}

// Plain — текст блока без разметки
func (b Block) Plain() string {
	var sb strings.Builder
	for _, sp := range b.Spans {
		sb.WriteString(sp.Text)
	}
	return sb.String()
}

// Group — подряд идущие пункты одного типа собираются в один список,
// заголовки и абзацы остаются по одному.
type Group struct {
	Kind   Kind
	Blocks []Block
}

func (g Group) IsHeading() bool     { return g.Kind == Heading }
func (g Group) IsParagraph() bool   { return g.Kind == Paragraph }
func (g Group) IsBulletList() bool  { return g.Kind == Bullet }
func (g Group) IsOrderedList() bool { return g.Kind == Ordered }

// Start — номер первого пункта нумерованного списка
func (g Group) Start() int {
	if g.Kind != Ordered || len(g.Blocks) == 0 {
		return 0
	}
	return g.Blocks[0].Number
}

func GroupBlocks(blocks []Block) []Group {
	var groups []Group
	for _, b := range blocks {
		list := b.Kind == Bullet || b.Kind == Ordered
		if list && len(groups) > 0 && groups[len(groups)-1].Kind == b.Kind {
			last := &groups[len(groups)-1]
			last.Blocks = append(last.Blocks, b)
			continue
		}
		groups = append(groups, Group{Kind: b.Kind, Blocks: []Block{b}})
	}
	return groups
}

// Render — Parse + GroupBlocks, так удобнее шаблонам
func Render(text string) []Group {
	return GroupBlocks(Parse(text))
}
