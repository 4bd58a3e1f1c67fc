package extractor

import (
	"reflect"
	"testing"

	"github.com/dtnitsch/word-parser/models"
)

func testDocument() *models.Document {
	return &models.Document{
		Path:  "page.html",
		Title: "Frogs",
		Blocks: []models.TextBlock{
			{Type: "h1", Text: "Frogs"},
			{Type: "p", Text: "Frogs jump a long way"},
			{Type: "li", Text: "Home"},
			{Type: "li", Text: "Tree frogs climb well"},
			{Type: "td", Text: "42 jumps"},
		},
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *Strategy
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"types", "type:p|li", &Strategy{BlockTypes: map[string]struct{}{"p": {}, "li": {}}, KeepTitle: true}, false},
		{"words", "words:>=3", &Strategy{MinWords: 3, BlockTypes: map[string]struct{}{}, KeepTitle: true}, false},
		{"title off", "title:false", &Strategy{BlockTypes: map[string]struct{}{}}, false},
		{"bad part", "type", nil, true},
		{"bad operator", "words:<3", nil, true},
		{"bad number", "words:>=x", nil, true},
		{"unknown key", "conf:>=0.5", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStrategy(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStrategy(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseStrategy(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFilterDocument(t *testing.T) {
	tests := []struct {
		name      string
		filter    string
		wantTypes []string
		wantTitle string
	}{
		{"no filter", "", []string{"h1", "p", "li", "li", "td"}, "Frogs"},
		{"paragraphs and lists", "type:p|li", []string{"p", "li", "li"}, "Frogs"},
		{"long blocks", "words:>=3", []string{"p", "li"}, "Frogs"},
		{"combined without title", "type:li,words:>=2,title:false", []string{"li"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy, err := ParseStrategy(tt.filter)
			if err != nil {
				t.Fatalf("ParseStrategy() error = %v", err)
			}

			got := FilterDocument(testDocument(), strategy)
			var types []string
			for _, b := range got.Blocks {
				types = append(types, b.Type)
			}
			if !reflect.DeepEqual(types, tt.wantTypes) {
				t.Errorf("FilterDocument() block types = %v, want %v", types, tt.wantTypes)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("FilterDocument() title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.Path != "page.html" {
				t.Errorf("FilterDocument() path = %q, want page.html", got.Path)
			}
		})
	}
}
