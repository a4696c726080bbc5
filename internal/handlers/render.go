package handlers

import (
	"strings"

	"solana-patterns/internal/content"
	"solana-patterns/internal/highlight"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	NavPatterns = "patterns"
	NavDeepDive = "deep-dive"
)

// Pages — обработчики страниц. Датасет и подсветка приходят снаружи, глобального состояния нет.
type Pages struct {
	ds  *content.Dataset
	hl  *highlight.Highlighter
	log *zap.Logger
}

func NewPages(ds *content.Dataset, hl *highlight.Highlighter, log *zap.Logger) *Pages {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pages{ds: ds, hl: hl, log: log}
}

// ActiveNav — какой пункт шапки подсветить для пути
func ActiveNav(path string) string {
	switch {
	case path == "/" || strings.HasPrefix(path, "/pattern/"):
		return NavPatterns
	case path == "/deep-dive" || strings.HasPrefix(path, "/deep-dive/"):
		return NavDeepDive
	default:
		return ""
	}
}

// render — обёртка над c.HTML, которая во все шаблоны прокидывает данные оболочки.
func (p *Pages) render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	site := p.ds.Site()
	data["Site"] = site
	data["ActiveNav"] = ActiveNav(c.Request.URL.Path)
	if _, ok := data["Title"]; !ok {
		data["Title"] = site.Name
	}

	c.HTML(status, tmpl, data)
}
