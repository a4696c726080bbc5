package handlers

import (
	"net/http"
	"strconv"

	"solana-patterns/internal/markup"
	"solana-patterns/internal/models"
	"solana-patterns/internal/widgets"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// сколько паттернов показываем в конце Deep Dive
const deepDiveRelated = 3

func (p *Pages) Home(c *gin.Context) {
	site := p.ds.Site()

	// число паттернов считаем, остальные цифры — просто текст из site.yaml
	stats := append([]models.Stat{{
		Value: strconv.Itoa(p.ds.Len()),
		Label: "Security patterns",
	}}, site.Stats...)

	p.render(c, http.StatusOK, "home.html", gin.H{
		"PatternCount": p.ds.Len(),
		"Stats":        stats,
		"Cards":        widgets.NewPatternCards(p.ds.All()),
	})
}

type sectionView struct {
	ID     string
	Title  string
	Groups []markup.Group
}

func (p *Pages) DeepDive(c *gin.Context) {
	site := p.ds.Site()

	sections := make([]sectionView, 0, len(site.DeepDive))
	for _, s := range site.DeepDive {
		sections = append(sections, sectionView{
			ID:     s.ID,
			Title:  s.Title,
			Groups: markup.Render(s.Content),
		})
	}

	p.render(c, http.StatusOK, "deep_dive.html", gin.H{
		"Title":    "Deep Dive · " + site.Name,
		"Sections": sections,
		"Related":  widgets.NewPatternCards(p.ds.Head(deepDiveRelated)),
	})
}

// NotFound — для неизвестных путей
func (p *Pages) NotFound(c *gin.Context) {
	p.log.Debug("route not found", zap.String("path", c.Request.URL.Path))

	p.render(c, http.StatusNotFound, "not_found.html", gin.H{
		"Title":   "Not Found",
		"Heading": "Page Not Found",
		"Message": "The page you are looking for does not exist.",
	})
}
