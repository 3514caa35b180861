package llm

// CategoryDraft is the raw category payload returned by the model. Fields the
// model omitted stay zero-valued; shape enforcement happens downstream.
type CategoryDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Image       string `json:"image"`
}

// AuthorDraft is the raw author payload returned by the model.
type AuthorDraft struct {
	Name       string `json:"name"`
	Profession string `json:"profession"`
	Bio        string `json:"bio"`
	Link       string `json:"link"`
	Image      string `json:"image"`
}

// ArticleDraft is one raw article search result returned by the model.
type ArticleDraft struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Snippet  string        `json:"snippet"`
	Category CategoryDraft `json:"category"`
	Author   AuthorDraft   `json:"author"`
}

// ContentDraft is the raw full-article payload returned by the model.
type ContentDraft struct {
	ID          string        `json:"id"`
	FullText    string        `json:"full_text"`
	Summary     string        `json:"summary"`
	Category    CategoryDraft `json:"category"`
	Author      AuthorDraft   `json:"author"`
	Keywords    []string      `json:"keywords"`
	PublishDate string        `json:"publish_date"`
}

// DepartmentDraft is the raw department payload returned by the model.
type DepartmentDraft struct {
	Name             string   `json:"name"`
	Code             string   `json:"code"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Objectives       []string `json:"objectives"`
	Logo             string   `json:"logo"`
	Language         string   `json:"language"`
}
