package handlers

import (
	"fmt"
	"html/template"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
)

// TemplateCache holds parsed templates
type TemplateCache struct {
	cache map[string]*template.Template
	mu    sync.RWMutex
	funcs template.FuncMap
}

func NewTemplateCache() *TemplateCache {
	return &TemplateCache{
		cache: make(map[string]*template.Template),
		funcs: make(template.FuncMap),
	}
}

func (tc *TemplateCache) AddFunc(name string, fn interface{}) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.funcs[name] = fn
}

// Load parses all templates in the templates/ dir
func (tc *TemplateCache) Load(dir string) error {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	// Global template functions
	tc.funcs["price"] = func(v float64) string {
		return fmt.Sprintf("$%.2f", v)
	}
	tc.funcs["mul"] = func(price float64, qty int) float64 {
		return price * float64(qty)
	}
	tc.funcs["stars"] = func(rating int) string {
		out := ""
		for i := 1; i <= 5; i++ {
			if i <= rating {
				out += "★"
			} else {
				out += "☆"
			}
		}
		return out
	}

	// Find all HTML files; underscore-prefixed files are shared partials
	// parsed into every page rather than pages of their own.
	files, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return err
	}
	var pages, partials []string
	for _, file := range files {
		if strings.HasPrefix(filepath.Base(file), "_") {
			partials = append(partials, file)
		} else {
			pages = append(pages, file)
		}
	}
	for _, file := range pages {
		name := filepath.Base(file)
		tmpl, err := template.New(name).Funcs(tc.funcs).ParseFiles(append([]string{file}, partials...)...)
		if err != nil {
			slog.Error("Failed to parse template", "file", file, "error", err)
			return err
		}
		tc.cache[name] = tmpl
		slog.Debug("Cached template", "name", name)
	}
	return nil
}

func (tc *TemplateCache) Get(name string) *template.Template {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	return tc.cache[name]
}
