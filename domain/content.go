package domain

type Article struct {
	Slug        string `yaml:"slug" json:"slug"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Date        string `yaml:"date" json:"date"`
	ReadTime    string `yaml:"read_time" json:"read_time"`
	Category    string `yaml:"category" json:"category"`
	Content     string `yaml:"content" json:"content,omitempty"`
}

// Summary drops the body for listings.
func (a Article) Summary() Article {
	a.Content = ""
	return a
}

type Template struct {
	Slug        string `yaml:"slug" json:"slug"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Category    string `yaml:"category" json:"category"`
	Downloads   int    `yaml:"downloads" json:"downloads"`
}

type NavItem struct {
	Name string `yaml:"name" json:"name"`
	Href string `yaml:"href" json:"href"`
}

type NavSection struct {
	Title string    `yaml:"title" json:"title"`
	Href  string    `yaml:"href,omitempty" json:"href,omitempty"`
	Items []NavItem `yaml:"items,omitempty" json:"items,omitempty"`
}
