package models

import "strings"

type Category string

const (
	CategoryEducation    Category = "Education"
	CategoryEvent        Category = "Event"
	CategoryNews         Category = "News"
	CategoryAnnouncement Category = "Announcement"
)

// Categories lists every recognized news category, in display order.
var Categories = []Category{
	CategoryEducation,
	CategoryEvent,
	CategoryNews,
	CategoryAnnouncement,
}

// DefaultCategory is what an empty draft starts with.
const DefaultCategory = CategoryEducation

// NewsItem is one news article as exchanged with the remote news API.
// ID is empty for a not-yet-created article. Image is the hero image URL;
// empty string means "no image". Section order is display order.
type NewsItem struct {
	ID          string    `json:"_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"type"`
	Image       string    `json:"image"`
	Sections    []Section `json:"sections"`
}

// Section is one body sub-unit of a news item. Entries in Images and
// ListItems are either permanent http(s) URLs or transient references
// (data URIs) that must be resolved before the item is persisted.
type Section struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Images    []string `json:"images"`
	ListItems []string `json:"listItems"`
}

type SectionKind string

const (
	KindContent SectionKind = "Content"
	KindImages  SectionKind = "Images"
	KindList    SectionKind = "List"
)

// Kind classifies a section from whichever optional fields are populated.
// Images wins over ListItems when both are non-empty; the precedence is
// load-bearing for the editor UI and must not change.
func (s Section) Kind() SectionKind {
	if len(s.Images) > 0 {
		return KindImages
	}
	if len(s.ListItems) > 0 {
		return KindList
	}
	return KindContent
}

// Normalized returns a copy with title/content trimmed and empty references
// pruned from Images and ListItems. Remaining reference order is preserved.
func (s Section) Normalized() Section {
	out := Section{
		Title:   strings.TrimSpace(s.Title),
		Content: strings.TrimSpace(s.Content),
	}
	for _, ref := range s.Images {
		if strings.TrimSpace(ref) != "" {
			out.Images = append(out.Images, ref)
		}
	}
	for _, ref := range s.ListItems {
		if strings.TrimSpace(ref) != "" {
			out.ListItems = append(out.ListItems, ref)
		}
	}
	return out
}

// Clone deep-copies the item so a snapshot cannot alias the draft's slices.
func (n NewsItem) Clone() NewsItem {
	out := n
	if n.Sections != nil {
		out.Sections = make([]Section, len(n.Sections))
		for i, s := range n.Sections {
			out.Sections[i] = s.Clone()
		}
	}
	return out
}

func (s Section) Clone() Section {
	out := s
	if s.Images != nil {
		out.Images = append([]string(nil), s.Images...)
	}
	if s.ListItems != nil {
		out.ListItems = append([]string(nil), s.ListItems...)
	}
	return out
}

// SectionView pairs a section with its classified kind so the editor picks
// the right renderer without re-deriving precedence.
type SectionView struct {
	Section
	Kind SectionKind `json:"kind"`
}

// DraftView is the draft shape returned by the editing endpoints: the item
// plus a kind annotation on every section.
type DraftView struct {
	NewsItem
	Sections []SectionView `json:"sections"`
}

func NewDraftView(item NewsItem) DraftView {
	view := DraftView{
		NewsItem: item,
		Sections: make([]SectionView, len(item.Sections)),
	}
	for i, s := range item.Sections {
		view.Sections[i] = SectionView{Section: s, Kind: s.Kind()}
	}
	return view
}

// DeleteResult mirrors the remote deleteNews payload.
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
