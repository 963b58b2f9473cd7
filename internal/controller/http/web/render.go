package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	pageLogin    = "login"
	pageRegister = "register"
	pageUpload   = "upload"
)

// errWriteResponse means the page was rendered but the client did not receive it.
var errWriteResponse = errors.New("failed to write response")

type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	pages := make(map[string]*template.Template)

	for _, name := range []string{pageLogin, pageRegister, pageUpload} {
		tmpl, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %q page: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &renderer{pages: pages}, nil
}

// render buffers the page, a template error must not leave a half-written response.
func (r *renderer) render(w http.ResponseWriter, status int, page string, data any) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to execute %q page: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %q page: %w", errWriteResponse, page, err)
	}

	return nil
}
