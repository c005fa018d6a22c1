package web

import (
	"html/template"
	"io/fs"
	"strings"
	"testing"
)

func TestEmbeddedTemplatesExist(t *testing.T) {
	if _, err := fs.Stat(GetTemplatesFS(), "index.html"); err != nil {
		t.Errorf("required template index.html not found: %v", err)
	}
}

func TestEmbeddedStaticFilesExist(t *testing.T) {
	staticFS := GetStaticFS()

	requiredFiles := []string{
		"css/style.css",
		"js/form.js",
	}

	for _, file := range requiredFiles {
		content, err := fs.ReadFile(staticFS, file)
		if err != nil {
			t.Errorf("required static file %q not found: %v", file, err)
			continue
		}
		if len(content) == 0 {
			t.Errorf("%s is empty", file)
		}
	}
}

func TestIndexTemplateParses(t *testing.T) {
	funcs := template.FuncMap{"timeLabel": func(s string) string { return s }}

	_, err := template.New("index.html").Funcs(funcs).ParseFS(GetTemplatesFS(), "index.html")
	if err != nil {
		t.Fatalf("index.html does not parse: %v", err)
	}
}

func TestIndexTemplateUsesFormFields(t *testing.T) {
	content, err := fs.ReadFile(GetTemplatesFS(), "index.html")
	if err != nil {
		t.Fatalf("failed to read index.html: %v", err)
	}

	for _, field := range []string{
		`name="comp_name"`,
		`name="qr"`,
		`name="no_guides"`,
		`name="check_{{.Name}}"`,
		`name="format_{{.Name}}"`,
		`name="rounds_{{.Name}}"`,
		`name="cards_{{$name}}_r{{.Number}}"`,
		`name="cutoff_{{$name}}_r{{.Number}}"`,
		`name="limit_{{$name}}_r{{.Number}}"`,
		`action="/generate"`,
	} {
		if !strings.Contains(string(content), field) {
			t.Errorf("index.html is missing %s", field)
		}
	}
}
