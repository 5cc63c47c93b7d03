package repository

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"gcc-tools/domain"
)

//go:embed content/*.yaml
var contentFS embed.FS

// ContentRepositoryMemory serves the article, template and navigation
// catalog compiled into the binary. It is read-only after construction.
type ContentRepositoryMemory struct {
	articles   []domain.Article
	bySlug     map[string]int
	templates  []domain.Template
	navigation []domain.NavSection
}

// NewContentRepositoryMemory parses the embedded catalog.
func NewContentRepositoryMemory() (*ContentRepositoryMemory, error) {
	r := &ContentRepositoryMemory{}

	if err := decodeContent("content/articles.yaml", &r.articles); err != nil {
		return nil, err
	}
	if err := decodeContent("content/templates.yaml", &r.templates); err != nil {
		return nil, err
	}
	if err := decodeContent("content/navigation.yaml", &r.navigation); err != nil {
		return nil, err
	}

	r.bySlug = make(map[string]int, len(r.articles))
	for i, a := range r.articles {
		if a.Slug == "" {
			return nil, fmt.Errorf("article %d has no slug", i)
		}
		if _, dup := r.bySlug[a.Slug]; dup {
			return nil, fmt.Errorf("duplicate article slug %q", a.Slug)
		}
		r.bySlug[a.Slug] = i
	}
	return r, nil
}

func decodeContent(name string, out any) error {
	data, err := contentFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func (r *ContentRepositoryMemory) Articles() []domain.Article {
	out := make([]domain.Article, len(r.articles))
	copy(out, r.articles)
	return out
}

func (r *ContentRepositoryMemory) ArticleBySlug(slug string) (domain.Article, bool) {
	i, ok := r.bySlug[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return domain.Article{}, false
	}
	return r.articles[i], true
}

func (r *ContentRepositoryMemory) Templates() []domain.Template {
	out := make([]domain.Template, len(r.templates))
	copy(out, r.templates)
	return out
}

func (r *ContentRepositoryMemory) Navigation() []domain.NavSection {
	out := make([]domain.NavSection, len(r.navigation))
	copy(out, r.navigation)
	return out
}
