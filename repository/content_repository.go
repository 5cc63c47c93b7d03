package repository

import "gcc-tools/domain"

type ContentRepository interface {
	Articles() []domain.Article
	ArticleBySlug(slug string) (domain.Article, bool)
	Templates() []domain.Template
	Navigation() []domain.NavSection
}
