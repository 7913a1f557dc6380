// Package trivia defines the game-definition document and the errors shared by
// the builder, setup and play packages. It has zero external dependencies.
package trivia

import (
	"regexp"
	"strconv"
)

// Document is a complete trivia board: a title and its ordered categories.
type Document struct {
	Title      string     `json:"title"`
	Categories []Category `json:"categories"`
}

type Category struct {
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

type Question struct {
	Value    int    `json:"value"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Image    string `json:"image,omitempty"`
}

// Key identifies a question within a play session.
func Key(category string, value int) string {
	return category + "-" + strconv.Itoa(value)
}

// Clone returns a deep copy that shares no slices with d.
func (d Document) Clone() Document {
	out := Document{
		Title:      d.Title,
		Categories: make([]Category, len(d.Categories)),
	}
	for i, c := range d.Categories {
		out.Categories[i] = Category{
			Name:      c.Name,
			Questions: append([]Question(nil), c.Questions...),
		}
		if out.Categories[i].Questions == nil {
			out.Categories[i].Questions = []Question{}
		}
	}
	return out
}

// QuestionCount is the number of question cells on the board.
func (d Document) QuestionCount() int {
	n := 0
	for _, c := range d.Categories {
		n += len(c.Questions)
	}
	return n
}

// Keys returns the distinct answered-state keys of the board in board order.
// Two cells with the same category name and value collapse into one key.
func (d Document) Keys() []string {
	seen := make(map[string]struct{}, d.QuestionCount())
	keys := make([]string, 0, d.QuestionCount())
	for _, c := range d.Categories {
		for _, q := range c.Questions {
			k := Key(c.Name, q.Value)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	return keys
}

// Cell looks up a question by its category and question indices.
func (d Document) Cell(category, question int) (Category, Question, bool) {
	if category < 0 || category >= len(d.Categories) {
		return Category{}, Question{}, false
	}
	c := d.Categories[category]
	if question < 0 || question >= len(c.Questions) {
		return Category{}, Question{}, false
	}
	return c, c.Questions[question], true
}

// whitespace covers Unicode space separators and the BOM as well as ASCII.
var whitespace = regexp.MustCompile(`[\s\x0B\p{Zs}\x{FEFF}\x{2028}\x{2029}]+`)

// Slugify turns a title into a file-name stem by collapsing each run of
// whitespace into a single underscore.
func Slugify(title string) string {
	return whitespace.ReplaceAllString(title, "_")
}

// Filename is the download name for the document.
func (d Document) Filename() string {
	return Slugify(d.Title) + ".json"
}
