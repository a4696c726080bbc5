package server

import (
	"html/template"
	"net/http"

	"solana-patterns/internal/config"
	"solana-patterns/internal/content"
	"solana-patterns/internal/handlers"
	"solana-patterns/internal/highlight"
	"solana-patterns/internal/markup"
	"solana-patterns/internal/middleware"
	"solana-patterns/web"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"prose": markup.Render,
	}
}

func NewRouter(cfg *config.Config, ds *content.Dataset, log *zap.Logger) (*gin.Engine, error) {
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(
		middleware.InjectRequestID(),
		middleware.AccessLog(log),
		middleware.Recover(log),
	)

	tmpl, err := web.Templates(templateFuncs())
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	static, err := web.Static()
	if err != nil {
		return nil, err
	}
	r.StaticFS("/static", http.FS(static))

	hl := highlight.New(cfg.HighlightStyle)
	css, err := hl.CSS()
	if err != nil {
		return nil, errors.Wrap(err, "highlight stylesheet")
	}
	r.GET("/assets/highlight.css", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(css))
	})

	pages := handlers.NewPages(ds, hl, log)

	// СТРАНИЦЫ
	site := r.Group("/")
	site.Use(middleware.ETag(ds.Fingerprint()))

	site.GET("/", pages.Home)
	site.GET("/deep-dive", pages.DeepDive)

	// ПАТТЕРНЫ — кэшируем только существующие
	patterns := r.Group("/pattern/:id")
	patterns.Use(middleware.ETag(ds.Fingerprint(), pages.Exists))

	patterns.GET("", pages.ShowPattern)
	patterns.GET("/code/:variant", pages.PatternCode)

	r.NoRoute(pages.NotFound)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r, nil
}
