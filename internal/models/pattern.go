package models

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
)

var ErrInvalidSeverity = errors.New("invalid severity")

var titleCaser = cases.Title(language.English)

// ParseSeverity — только три допустимых значения, всё остальное (в т.ч. "low") отбрасываем.
func ParseSeverity(raw string) (Severity, error) {
	switch s := Severity(raw); s {
	case SeverityCritical, SeverityHigh, SeverityMedium:
		return s, nil
	default:
		return "", errors.Wrapf(ErrInvalidSeverity, "%q", raw)
	}
}

func (s Severity) Valid() bool {
	_, err := ParseSeverity(string(s))
	return err == nil
}

// Label — подпись для бейджа: "Critical", "High", "Medium"
func (s Severity) Label() string {
	return titleCaser.String(string(s))
}

// Class — css-класс бейджа. Для неизвестного значения пусто.
func (s Severity) Class() string {
	switch s {
	case SeverityCritical:
		return "severity-critical"
	case SeverityHigh:
		return "severity-high"
	case SeverityMedium:
		return "severity-medium"
	default:
		return ""
	}
}

type Reference struct {
	Title string `yaml:"title" validate:"required"`
	URL   string `yaml:"url" validate:"required,url"`
}

// SecurityPattern — одна запись каталога уязвимостей
type SecurityPattern struct {
	ID          string   `yaml:"id" validate:"required"`
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description"`
	Severity    Severity `yaml:"severity" validate:"required,oneof=critical high medium"`
	Category    string   `yaml:"category"`

	Explanation string `yaml:"explanation"` // абзацы через \n

	Language              string `yaml:"language"` // тег для подсветки, по умолчанию rust
	VulnerableCode        string `yaml:"vulnerableCode"`
	SecureCode            string `yaml:"secureCode"`
	VulnerableExplanation string `yaml:"vulnerableExplanation"`
	SecureExplanation     string `yaml:"secureExplanation"`

	AttackScenario string      `yaml:"attackScenario"`
	Prevention     []string    `yaml:"prevention"`
	References     []Reference `yaml:"references" validate:"dive"`
}

// Clone — копия со своими слайсами, чтобы наружу не утекали ссылки на датасет
func (p SecurityPattern) Clone() SecurityPattern {
	out := p
	if p.Prevention != nil {
		out.Prevention = append([]string(nil), p.Prevention...)
	}
	if p.References != nil {
		out.References = append([]Reference(nil), p.References...)
	}
	return out
}
