package highlight

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/cockroachdb/errors"
)

const DefaultStyle = "monokai"

// Token — кусок строки кода и его css-класс (короткие имена chroma: k, s, c1 ...)
type Token struct {
	Text  string
	Class string
}

type Line struct {
	Number int
	Tokens []Token
}

// Highlighter превращает (код, язык) в строки с токенами. Без побочных эффектов.
type Highlighter struct {
	style *chroma.Style
}

func New(styleName string) *Highlighter {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &Highlighter{style: style}
}

// Highlight режет код на строки с токенами.
// Код приходит уже обрезанным — Trim делает вызывающая сторона.
func (h *Highlighter) Highlight(code, language string) ([]Line, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil, errors.Wrapf(err, "tokenise %s", language)
	}

	raw := chroma.SplitTokensIntoLines(it.Tokens())
	lines := make([]Line, 0, len(raw))
	for i, toks := range raw {
		line := Line{Number: i + 1}
		for _, t := range toks {
			text := strings.TrimSuffix(t.Value, "\n")
			if text == "" {
				continue
			}
			line.Tokens = append(line.Tokens, Token{Text: text, Class: tokenClass(t.Type)})
		}
		lines = append(lines, line)
	}

	// chroma отдаёт хвостовую пустую строку, если код кончается переводом строки
	if n := len(lines); n > 1 && len(lines[n-1].Tokens) == 0 && strings.HasSuffix(code, "\n") {
		lines = lines[:n-1]
	}

	return lines, nil
}

func tokenClass(t chroma.TokenType) string {
	// у подтипов без своего класса берём класс подкатегории или категории
	for _, c := range []chroma.TokenType{t, t.SubCategory(), t.Category()} {
		if cls, ok := chroma.StandardTypes[c]; ok {
			return cls
		}
	}
	return ""
}

// CSS — стили под классы токенов для выбранной темы
func (h *Highlighter) CSS() (string, error) {
	var buf bytes.Buffer
	f := html.New(html.WithClasses(true))
	if err := f.WriteCSS(&buf, h.style); err != nil {
		return "", errors.Wrap(err, "write highlight css")
	}
	return buf.String(), nil
}
