package handlers

import (
	"net/http"

	"solana-patterns/internal/markup"
	"solana-patterns/internal/widgets"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (p *Pages) patternNotFound(c *gin.Context, id string) {
	p.log.Debug("pattern not found", zap.String("id", id))

	p.render(c, http.StatusNotFound, "not_found.html", gin.H{
		"Title":   "Pattern Not Found",
		"Heading": "Pattern Not Found",
		"Message": "The security pattern you're looking for doesn't exist.",
	})
}

// Exists — есть ли паттерн (и вариант кода, если он в пути). Для ETag на страницах паттернов.
func (p *Pages) Exists(c *gin.Context) bool {
	if _, ok := p.ds.Find(c.Param("id")); !ok {
		return false
	}
	if raw := c.Param("variant"); raw != "" {
		v, _ := widgets.ParseVariant(raw)
		return v == widgets.VariantVulnerable || v == widgets.VariantSecure
	}
	return true
}

func (p *Pages) ShowPattern(c *gin.Context) {
	id := c.Param("id")

	pattern, ok := p.ds.Find(id)
	if !ok {
		p.patternNotFound(c, id)
		return
	}

	prev, next := p.ds.Neighbors(id)

	vulnerable := widgets.NewCodeBlock(p.hl, pattern.VulnerableCode, pattern.Language,
		widgets.VariantVulnerable, widgets.WithTitle("Vulnerable Code"))
	secure := widgets.NewCodeBlock(p.hl, pattern.SecureCode, pattern.Language,
		widgets.VariantSecure, widgets.WithTitle("Secure Code"))

	data := gin.H{
		"Title":                 pattern.Title + " · " + p.ds.Site().Name,
		"Pattern":               pattern,
		"Explanation":           markup.Render(pattern.Explanation),
		"Vulnerable":            vulnerable,
		"Secure":                secure,
		"VulnerableExplanation": markup.Render(pattern.VulnerableExplanation),
		"SecureExplanation":     markup.Render(pattern.SecureExplanation),
		"AttackScenario":        markup.Render(pattern.AttackScenario),
	}
	if prev != nil {
		data["Prev"] = widgets.NewPatternCard(*prev, 0)
	}
	if next != nil {
		data["Next"] = widgets.NewPatternCard(*next, 0)
	}

	p.render(c, http.StatusOK, "pattern.html", data)
}

// PatternCode — сырой код образца, без обрезки. Запасной путь для копирования.
func (p *Pages) PatternCode(c *gin.Context) {
	id := c.Param("id")

	pattern, ok := p.ds.Find(id)
	if !ok {
		p.patternNotFound(c, id)
		return
	}

	var code string
	switch v, _ := widgets.ParseVariant(c.Param("variant")); v {
	case widgets.VariantVulnerable:
		code = pattern.VulnerableCode
	case widgets.VariantSecure:
		code = pattern.SecureCode
	default:
		p.NotFound(c)
		return
	}

	c.Header("Content-Disposition", "inline")
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(code))
}
