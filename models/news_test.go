package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionKind(t *testing.T) {
	tests := []struct {
		name    string
		section Section
		want    SectionKind
	}{
		{
			name:    "empty section is content",
			section: Section{},
			want:    KindContent,
		},
		{
			name:    "content only",
			section: Section{Content: "some text"},
			want:    KindContent,
		},
		{
			name:    "images only",
			section: Section{Images: []string{"https://cdn.example.com/a.png"}},
			want:    KindImages,
		},
		{
			name:    "list items only",
			section: Section{ListItems: []string{"https://cdn.example.com/b.png"}},
			want:    KindList,
		},
		{
			name: "images win over list items when both populated",
			section: Section{
				Images:    []string{"https://cdn.example.com/a.png"},
				ListItems: []string{"https://cdn.example.com/b.png"},
			},
			want: KindImages,
		},
		{
			name:    "content does not override images",
			section: Section{Content: "text", Images: []string{"x"}},
			want:    KindImages,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.section.Kind())
		})
	}
}

func TestSectionNormalized(t *testing.T) {
	s := Section{
		Title:     "  Heading ",
		Content:   " body \n",
		Images:    []string{"https://a.png", "", "  ", "https://b.png"},
		ListItems: []string{"", "https://c.png"},
	}

	got := s.Normalized()

	assert.Equal(t, "Heading", got.Title)
	assert.Equal(t, "body", got.Content)
	assert.Equal(t, []string{"https://a.png", "https://b.png"}, got.Images)
	assert.Equal(t, []string{"https://c.png"}, got.ListItems)

	// original untouched
	assert.Len(t, s.Images, 4)
}

func TestNewDraftViewAnnotatesSectionKinds(t *testing.T) {
	item := NewsItem{
		Title: "t",
		Sections: []Section{
			{Content: "text"},
			{Images: []string{"https://cdn.example.com/a.png"}},
			{ListItems: []string{"https://cdn.example.com/b.png"}},
		},
	}

	view := NewDraftView(item)

	assert.Equal(t, "t", view.Title)
	assert.Equal(t, []SectionKind{KindContent, KindImages, KindList},
		[]SectionKind{view.Sections[0].Kind, view.Sections[1].Kind, view.Sections[2].Kind})
	assert.Equal(t, "text", view.Sections[0].Content)
}

func TestNewsItemClone(t *testing.T) {
	item := NewsItem{
		Title:    "original",
		Category: CategoryNews,
		Sections: []Section{
			{Title: "s1", Images: []string{"a"}},
		},
	}

	clone := item.Clone()
	clone.Sections[0].Title = "changed"
	clone.Sections[0].Images[0] = "changed"

	assert.Equal(t, "s1", item.Sections[0].Title)
	assert.Equal(t, "a", item.Sections[0].Images[0])
}
