package web

import (
	"embed"
	"html/template"
	"io/fs"

	"github.com/cockroachdb/errors"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates — все шаблоны одним набором, имена по файлу: "home.html", "pattern.html" ...
func Templates(funcs template.FuncMap) (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}
	return tmpl, nil
}

func Static() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, errors.Wrap(err, "static assets")
	}
	return sub, nil
}
