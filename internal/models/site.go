package models

// Stat — цифра на главной. Value — просто строка для показа, ничего не считаем.
type Stat struct {
	Value string `yaml:"value" validate:"required"`
	Label string `yaml:"label" validate:"required"`
}

type Link struct {
	Title string `yaml:"title" validate:"required"`
	URL   string `yaml:"url" validate:"required,url"`
}

// Section — раздел страницы Deep Dive
type Section struct {
	ID      string `yaml:"id" validate:"required"`
	Title   string `yaml:"title" validate:"required"`
	Content string `yaml:"content"`
}

// Site — статичные тексты оболочки, главной и Deep Dive
type Site struct {
	Name    string `yaml:"name" validate:"required"`
	Tagline string `yaml:"tagline"`
	Intro   string `yaml:"intro"`

	Stats       []Stat    `yaml:"stats" validate:"dive"`
	FooterLinks []Link    `yaml:"footerLinks" validate:"dive"`
	CTA         Link      `yaml:"cta"`
	DeepDive    []Section `yaml:"deepDive" validate:"dive"`
}

// Clone — копия со своими слайсами, как у SecurityPattern
func (s Site) Clone() Site {
	out := s
	if s.Stats != nil {
		out.Stats = append([]Stat(nil), s.Stats...)
	}
	if s.FooterLinks != nil {
		out.FooterLinks = append([]Link(nil), s.FooterLinks...)
	}
	if s.DeepDive != nil {
		out.DeepDive = append([]Section(nil), s.DeepDive...)
	}
	return out
}
