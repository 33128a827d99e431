package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/investa-app/webclient/internal/web/templates"
	"github.com/investa-app/webclient/pkg/logger"
	"github.com/investa-app/webclient/pkg/money"
)

// Page is the data every template receives via embedding.
type Page struct {
	Title         string
	Authenticated bool
	Error         string
	Notice        string
}

var pageNames = []string{
	"login",
	"register",
	"dashboard",
	"wallets",
	"wallet",
	"companies",
	"company",
	"invest",
	"portfolio",
	"profile",
}

// Renderer executes the embedded templates. Each page is parsed together
// with the shared layout once, at startup.
type Renderer struct {
	pages map[string]*template.Template
	log   *logger.Logger
}

// NewRenderer parses all embedded templates
func NewRenderer(log *logger.Logger) (*Renderer, error) {
	funcs := template.FuncMap{
		"money": func(c money.Centavos) string { return c.Format() },
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).
			ParseFS(templates.FS, "layout.html", name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Renderer{pages: pages, log: log}, nil
}

// HTML renders a page into a buffer first, so a template failure produces a
// clean 500 instead of a half-written response.
func (rd *Renderer) HTML(w http.ResponseWriter, status int, page string, data any) {
	t, ok := rd.pages[page]
	if !ok {
		rd.log.Error("unknown template", "page", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		rd.log.Error("template execution failed", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
