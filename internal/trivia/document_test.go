package trivia

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Trivia Challenge", "Trivia_Challenge"},
		{"  Friday   Night\tQuiz ", "_Friday_Night_Quiz_"},
		{"Solo", "Solo"},
		{"Quiz\u00a0Night", "Quiz_Night"},
		{"Quiz\u2003Night", "Quiz_Night"},
		{"Quiz\vNight", "Quiz_Night"},
		{"Quiz\u3000Night", "Quiz_Night"},
		{"Quiz\ufeff\u2028 \u2029Night", "Quiz_Night"},
		{"Café\u202fQuiz", "Café_Quiz"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.title); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestFilename(t *testing.T) {
	d := Document{Title: "Pub Quiz 2"}
	if got := d.Filename(); got != "Pub_Quiz_2.json" {
		t.Errorf("Filename() = %q, want %q", got, "Pub_Quiz_2.json")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		wantCat int
	}{
		{name: "valid", input: `{"title":"T","categories":[{"name":"C1","questions":[{"value":100,"question":"Q1","answer":"A1"}]}]}`, wantCat: 1},
		{name: "empty categories accepted", input: `{"title":"T","categories":[]}`, wantCat: 0},
		{name: "missing categories", input: `{"title":"T"}`, wantErr: true},
		{name: "null categories", input: `{"title":"T","categories":null}`, wantErr: true},
		{name: "not json", input: `title: T`, wantErr: true},
		{name: "array at top level", input: `[1,2,3]`, wantErr: true},
		{name: "wrong nested type", input: `{"categories":[{"name":"C","questions":[{"value":"lots"}]}]}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse([]byte(tt.input))
			if tt.wantErr {
				var fe *InvalidFormatError
				if !errors.As(err, &fe) {
					t.Fatalf("err = %v, want *InvalidFormatError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(d.Categories) != tt.wantCat {
				t.Errorf("categories = %d, want %d", len(d.Categories), tt.wantCat)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	orig := Example()
	orig.Categories[0].Questions[0].Image = "https://example.com/sun.png"

	data, err := Encode(orig)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.HasPrefix(string(data), "{\n  \"title\": \"Trivia Challenge\",\n  \"categories\": [") {
		t.Errorf("unexpected layout: %.60q", data)
	}
	if strings.HasSuffix(string(data), "\n") {
		t.Error("export should not end with a newline")
	}
	if !strings.Contains(string(data), `"Space & Astronomy"`) {
		t.Error("ampersand should not be HTML-escaped")
	}

	got, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(got, orig) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, orig)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	orig := Example()
	cp := orig.Clone()
	cp.Title = "Changed"
	cp.Categories[0].Name = "Renamed"
	cp.Categories[0].Questions[0].Question = "Edited"

	if orig.Title != "Trivia Challenge" {
		t.Errorf("title leaked: %q", orig.Title)
	}
	if orig.Categories[0].Name != "Space & Astronomy" {
		t.Errorf("category name leaked: %q", orig.Categories[0].Name)
	}
	if orig.Categories[0].Questions[0].Question == "Edited" {
		t.Error("question text leaked into original")
	}
}

func TestKeysCollapseDuplicates(t *testing.T) {
	d := Document{Categories: []Category{
		{Name: "A", Questions: []Question{{Value: 100}, {Value: 200}}},
		{Name: "A", Questions: []Question{{Value: 100}}},
		{Name: "B", Questions: []Question{{Value: 100}}},
	}}

	if got := d.QuestionCount(); got != 4 {
		t.Errorf("QuestionCount() = %d, want 4", got)
	}
	want := []string{"A-100", "A-200", "B-100"}
	if got := d.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestCell(t *testing.T) {
	d := Example()

	c, q, ok := d.Cell(2, 0)
	if !ok {
		t.Fatal("expected cell (2,0)")
	}
	if c.Name != "World Geography" || q.Answer != "Canberra" {
		t.Errorf("cell = %q/%q, want World Geography/Canberra", c.Name, q.Answer)
	}

	for _, idx := range [][2]int{{-1, 0}, {5, 0}, {0, 5}, {0, -1}} {
		if _, _, ok := d.Cell(idx[0], idx[1]); ok {
			t.Errorf("Cell(%d, %d) ok = true, want false", idx[0], idx[1])
		}
	}
}

func TestExampleShape(t *testing.T) {
	d := Example()
	if len(d.Categories) != 5 {
		t.Fatalf("categories = %d, want 5", len(d.Categories))
	}
	for _, c := range d.Categories {
		if len(c.Questions) != 5 {
			t.Errorf("%s: questions = %d, want 5", c.Name, len(c.Questions))
		}
		for i, q := range c.Questions {
			if q.Value != (i+1)*100 {
				t.Errorf("%s[%d]: value = %d, want %d", c.Name, i, q.Value, (i+1)*100)
			}
		}
	}
}
