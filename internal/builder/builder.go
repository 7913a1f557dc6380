// Package builder edits a board that is owned separately from the one being
// played. Nothing here touches the live document; a finished board leaves the
// builder only through Export or ConfirmLoad.
package builder

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/playperu/triviaboard/internal/trivia"
)

// NewCategoryName is the placeholder given to added categories.
const NewCategoryName = "New Category"

// SeedValues are the point values of a freshly added category.
var SeedValues = []int{100, 200, 300, 400, 500}

// Field is an editable question attribute. Point values are fixed at creation.
type Field string

const (
	FieldQuestion Field = "question"
	FieldAnswer   Field = "answer"
)

const noPending = -1

type Builder struct {
	doc           trivia.Document
	pendingDelete int
	loadPending   bool
	expanded      int
}

// New starts a builder on a private copy of doc.
func New(doc trivia.Document) *Builder {
	return &Builder{
		doc:           doc.Clone(),
		pendingDelete: noPending,
	}
}

// Document returns a copy of the board being edited.
func (b *Builder) Document() trivia.Document {
	return b.doc.Clone()
}

func (b *Builder) UpdateTitle(title string) {
	b.doc.Title = title
}

// AddCategory appends a placeholder category with one empty question per
// seed value.
func (b *Builder) AddCategory() {
	qs := make([]trivia.Question, len(SeedValues))
	for i, v := range SeedValues {
		qs[i] = trivia.Question{Value: v}
	}
	b.doc.Categories = append(b.doc.Categories, trivia.Category{
		Name:      NewCategoryName,
		Questions: qs,
	})
}

func (b *Builder) UpdateCategoryName(category int, name string) error {
	if err := b.checkCategory(category); err != nil {
		return err
	}
	b.doc.Categories[category].Name = name
	return nil
}

func (b *Builder) UpdateQuestionField(category, question int, field Field, value string) error {
	if err := b.checkCategory(category); err != nil {
		return err
	}
	qs := b.doc.Categories[category].Questions
	if question < 0 || question >= len(qs) {
		return trivia.Invalid("question", "index %d out of range", question)
	}
	switch field {
	case FieldQuestion:
		qs[question].Question = value
	case FieldAnswer:
		qs[question].Answer = value
	default:
		return trivia.Invalid("field", "%q is not editable", field)
	}
	return nil
}

func (b *Builder) checkCategory(category int) error {
	if category < 0 || category >= len(b.doc.Categories) {
		return trivia.Invalid("category", "index %d out of range", category)
	}
	return nil
}

// RequestDelete marks a category for deletion pending confirmation.
func (b *Builder) RequestDelete(category int) error {
	if err := b.checkCategory(category); err != nil {
		return err
	}
	b.pendingDelete = category
	return nil
}

// ConfirmDelete removes the pending category and reports whether anything
// was removed. With nothing pending it does nothing.
func (b *Builder) ConfirmDelete() bool {
	i := b.pendingDelete
	b.pendingDelete = noPending
	if i < 0 || i >= len(b.doc.Categories) {
		return false
	}
	b.doc.Categories = append(b.doc.Categories[:i], b.doc.Categories[i+1:]...)
	return true
}

func (b *Builder) CancelDelete() {
	b.pendingDelete = noPending
}

// PendingDelete returns the category awaiting confirmation, if any.
func (b *Builder) PendingDelete() (int, bool) {
	return b.pendingDelete, b.pendingDelete != noPending
}

// Export returns the download name and file contents of the board.
func (b *Builder) Export() (string, []byte, error) {
	data, err := trivia.Encode(b.doc)
	if err != nil {
		return "", nil, err
	}
	return b.doc.Filename(), data, nil
}

// Import replaces the board wholesale with the parsed file. On error the
// current board is kept.
func (b *Builder) Import(data []byte) error {
	doc, err := trivia.Parse(data)
	if err != nil {
		return err
	}
	b.Replace(doc)
	return nil
}

// Replace swaps in a copy of doc and clears any pending confirmation.
func (b *Builder) Replace(doc trivia.Document) {
	b.doc = doc.Clone()
	b.pendingDelete = noPending
}

func (b *Builder) RequestLoad() {
	b.loadPending = true
}

// ConfirmLoad hands out a deep copy of the board for play. ok is false when
// no load was requested.
func (b *Builder) ConfirmLoad() (doc trivia.Document, ok bool) {
	if !b.loadPending {
		return trivia.Document{}, false
	}
	b.loadPending = false
	return b.doc.Clone(), true
}

func (b *Builder) CancelLoad() {
	b.loadPending = false
}

func (b *Builder) LoadPending() bool {
	return b.loadPending
}

// ToggleCategory expands a category in the editor, or collapses it when it is
// already the expanded one.
func (b *Builder) ToggleCategory(category int) error {
	if err := b.checkCategory(category); err != nil {
		return err
	}
	if b.expanded == category {
		b.expanded = -1
		return nil
	}
	b.expanded = category
	return nil
}

// Expanded is the index of the open category, or -1.
func (b *Builder) Expanded() int {
	return b.expanded
}

// DuplicateNames lists category names used more than once, compared
// case-insensitively. Answered-state keys are built from names, so
// duplicates share cells during play.
func (b *Builder) DuplicateNames() []string {
	return DuplicateNames(b.doc)
}

func DuplicateNames(doc trivia.Document) []string {
	fold := cases.Fold()
	seen := make(map[string]int, len(doc.Categories))
	var dups []string
	for _, c := range doc.Categories {
		k := fold.String(strings.TrimSpace(c.Name))
		seen[k]++
		if seen[k] == 2 {
			dups = append(dups, c.Name)
		}
	}
	return dups
}
