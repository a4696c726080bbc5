package widgets

import (
	"strings"

	"solana-patterns/internal/highlight"
)

type Variant string

const (
	VariantVulnerable Variant = "vulnerable"
	VariantSecure     Variant = "secure"
	VariantNeutral    Variant = "neutral"
)

func ParseVariant(s string) (Variant, bool) {
	switch v := Variant(s); v {
	case VariantVulnerable, VariantSecure, VariantNeutral:
		return v, true
	}
	return "", false
}

// Label — фиксированная подпись над блоком; у neutral нет
func (v Variant) Label() string {
	switch v {
	case VariantVulnerable:
		return "VULNERABLE"
	case VariantSecure:
		return "SECURE"
	default:
		return ""
	}
}

func (v Variant) Icon() string {
	switch v {
	case VariantVulnerable:
		return "⚠"
	case VariantSecure:
		return "🛡"
	default:
		return ""
	}
}

func (v Variant) Class() string {
	switch v {
	case VariantVulnerable, VariantSecure:
		return "code-" + string(v)
	default:
		return "code-neutral"
	}
}

// CodeBlock — подготовленный к рендеру блок кода
type CodeBlock struct {
	Title       string
	Language    string
	Variant     Variant
	LineNumbers bool
	Lines       []highlight.Line

	code string
}

type CodeOption func(*CodeBlock)

func WithoutLineNumbers() CodeOption {
	return func(b *CodeBlock) { b.LineNumbers = false }
}

func WithTitle(title string) CodeOption {
	return func(b *CodeBlock) { b.Title = title }
}

// NewCodeBlock подсвечивает обрезанный код, а оригинал хранит для копирования.
// Если подсветка не удалась — строки без классов, блок всё равно рисуется.
func NewCodeBlock(h *highlight.Highlighter, code, language string, variant Variant, opts ...CodeOption) CodeBlock {
	b := CodeBlock{
		Language:    language,
		Variant:     variant,
		LineNumbers: true,
		code:        code,
	}
	for _, o := range opts {
		o(&b)
	}

	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return b
	}

	lines, err := h.Highlight(trimmed, language)
	if err != nil {
		lines = plainLines(trimmed)
	}
	b.Lines = lines
	return b
}

// CopyText — ровно то, что пришло на вход, с пробелами по краям
func (b CodeBlock) CopyText() string { return b.code }

func (b CodeBlock) Empty() bool { return len(b.Lines) == 0 }

func plainLines(code string) []highlight.Line {
	raw := strings.Split(code, "\n")
	lines := make([]highlight.Line, len(raw))
	for i, l := range raw {
		lines[i] = highlight.Line{Number: i + 1}
		if l != "" {
			lines[i].Tokens = []highlight.Token{{Text: l}}
		}
	}
	return lines
}
