package models

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type VerifyResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}

// SaveNewsRequest is the body of the one-shot create/update endpoints and of
// draft seeding. Required-field checks happen in the submission pipeline, not
// at bind time, so an incomplete body still produces a ValidationError that
// names the offending fields.
type SaveNewsRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    Category         `json:"type"`
	Image       string           `json:"image"`
	Sections    []SectionRequest `json:"sections"`
}

type SectionRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Images    []string `json:"images"`
	ListItems []string `json:"listItems"`
}

func (r SectionRequest) ToSection() Section {
	return Section{
		Title:     r.Title,
		Content:   r.Content,
		Images:    r.Images,
		ListItems: r.ListItems,
	}
}

func (r SaveNewsRequest) ToNewsItem() NewsItem {
	item := NewsItem{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Image:       r.Image,
	}
	for _, s := range r.Sections {
		item.Sections = append(item.Sections, s.ToSection())
	}
	return item
}

// UpdateDraftRequest patches draft fields; nil means "leave unchanged".
type UpdateDraftRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *Category `json:"type"`
	Image       *string   `json:"image"`
}

// SubmitFields carries the required-field contract checked before any
// network call. The category rule is enforced uniformly for create and
// update.
type SubmitFields struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	Category    string `validate:"required,oneof=Education Event News Announcement"`
}
