package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"messageboard/dto"
	"messageboard/models"
)

//go:embed templates/*.html
var templates embed.FS

//go:embed public
var public embed.FS

// PageData is what every full page template receives.
type PageData struct {
	User     *models.SessionUser
	Error    string
	Username string
	Messages []dto.MessageDTO
}

// Renderer executes the embedded page and fragment templates.
type Renderer struct {
	pages     map[string]*template.Template
	fragments *template.Template
}

// Page names.
const (
	PageHome     = "home"
	PageRegister = "register"
	PageLogin    = "login"
)

// Fragment names, rendered without the layout.
const (
	FragmentMessage     = "message"
	FragmentMessageEdit = "message_edit"
)

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}

	for _, page := range []string{PageHome, PageRegister, PageLogin} {
		t, err := template.ParseFS(templates,
			"templates/layout.html",
			"templates/message.html",
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", page, err)
		}
		r.pages[page] = t
	}

	fragments, err := template.ParseFS(templates, "templates/message.html", "templates/message_edit.html")
	if err != nil {
		return nil, fmt.Errorf("parse fragments: %w", err)
	}
	r.fragments = fragments

	return r, nil
}

// Page renders a full page inside the layout.
func (r *Renderer) Page(w http.ResponseWriter, status int, name string, data PageData) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return write(w, status, t, "layout", data)
}

// Fragment renders a partial template on its own. A nil message renders as
// an empty body.
func (r *Renderer) Fragment(w http.ResponseWriter, status int, name string, message *dto.MessageDTO) error {
	return write(w, status, r.fragments, name, message)
}

func write(w http.ResponseWriter, status int, t *template.Template, name string, data any) error {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("execute %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// StaticHandler serves the embedded files under public/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(public, "public")
	if err != nil {
		panic(err) // the directory is embedded at build time
	}
	return http.FileServer(http.FS(sub))
}
