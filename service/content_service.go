package service

import (
	"strings"

	"gcc-tools/domain"
	"gcc-tools/repository"
)

type ContentService struct {
	repo repository.ContentRepository
}

func NewContentService(repo repository.ContentRepository) *ContentService {
	return &ContentService{repo: repo}
}

// ListArticles returns article summaries, optionally restricted to one
// category (case-insensitive; "" and "all" mean every category).
func (s *ContentService) ListArticles(category string) []domain.Article {
	out := []domain.Article{}
	for _, a := range s.repo.Articles() {
		if matchesCategory(a.Category, category) {
			out = append(out, a.Summary())
		}
	}
	return out
}

func (s *ContentService) GetArticle(slug string) (domain.Article, error) {
	a, ok := s.repo.ArticleBySlug(slug)
	if !ok {
		return domain.Article{}, domain.ErrArticleNotFound
	}
	return a, nil
}

func (s *ContentService) ListTemplates(category string) []domain.Template {
	out := []domain.Template{}
	for _, t := range s.repo.Templates() {
		if matchesCategory(t.Category, category) {
			out = append(out, t)
		}
	}
	return out
}

func (s *ContentService) Navigation() []domain.NavSection {
	return s.repo.Navigation()
}

func matchesCategory(have, want string) bool {
	want = strings.TrimSpace(want)
	if want == "" || strings.EqualFold(want, "all") {
		return true
	}
	return strings.EqualFold(have, want)
}
