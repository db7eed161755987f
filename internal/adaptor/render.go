package adaptor

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/cnedd11/Crypto-Bank-App/web"

	"go.uber.org/zap"
)

var pageNames = []string{
	"home",
	"login",
	"register",
	"customers",
	"wallets",
	"confirm_delete",
	"unauthorized",
}

// Renderer executes the embedded templates. Each page is parsed once at
// startup together with the shared layout (navbar + footer).
type Renderer struct {
	pages map[string]*template.Template
	log   *zap.Logger
}

func NewRenderer(log *zap.Logger) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))

	for _, name := range pageNames {
		tmpl, err := template.ParseFS(web.Templates,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Renderer{
		pages: pages,
		log:   log.With(zap.String("component", "renderer")),
	}, nil
}

// Render writes one page. The template executes into a buffer first so
// a rendering failure never leaks a half-written body.
func (rn *Renderer) Render(w http.ResponseWriter, status int, page string, data any) {
	tmpl, ok := rn.pages[page]
	if !ok {
		rn.log.Error("Unknown template", zap.String("page", page))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		rn.log.Error("Template execution failed",
			zap.String("page", page),
			zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
