package app

import (
	"github.com/playperu/triviaboard/internal/builder"
	"github.com/playperu/triviaboard/internal/trivia"
)

// Command is one user action. Each variant validates itself against the
// current state before changing anything.
type Command interface {
	Type() string
	apply(m *Machine) error
}

type (
	StartSetup  struct{}
	LoadExample struct{}
	LoadGame    struct {
		Document trivia.Document `json:"document"`
	}
	SubmitCount struct {
		Count int `json:"count"`
	}
	SubmitName struct {
		Name string `json:"name"`
	}
	CancelSetup  struct{}
	ReturnToMenu struct{}
	GoToBuilder  struct{}
	SelectTab    struct {
		Tab Tab `json:"tab"`
	}

	OpenQuestion struct {
		Category int `json:"category"`
		Question int `json:"question"`
	}
	RevealAnswer struct{}
	MarkAnswer   struct {
		Correct bool `json:"correct"`
	}

	UpdateTitle struct {
		Title string `json:"title"`
	}
	AddCategory        struct{}
	UpdateCategoryName struct {
		Category int    `json:"category"`
		Name     string `json:"name"`
	}
	UpdateQuestion struct {
		Category int           `json:"category"`
		Question int           `json:"question"`
		Field    builder.Field `json:"field"`
		Value    string        `json:"value"`
	}
	DeleteCategory struct {
		Category int `json:"category"`
	}
	ConfirmDeleteCategory struct{}
	CancelDeleteCategory  struct{}
	ToggleCategory        struct {
		Category int `json:"category"`
	}
	ImportDocument struct {
		Data []byte `json:"-"`
	}
	EditDocument struct {
		Document trivia.Document `json:"document"`
	}
	LoadBuilderToPlay  struct{}
	ConfirmLoadBuilder struct{}
	CancelLoadBuilder  struct{}
)

func (StartSetup) Type() string { return "start_setup" }
func (StartSetup) apply(m *Machine) error {
	return m.startPlayerSetup()
}

func (LoadExample) Type() string { return "load_example" }
func (LoadExample) apply(m *Machine) error {
	m.loadGame(trivia.Example())
	return nil
}

func (LoadGame) Type() string { return "load_game" }
func (c LoadGame) apply(m *Machine) error {
	if c.Document.Categories == nil {
		return &trivia.InvalidFormatError{Reason: "missing categories"}
	}
	m.loadGame(c.Document.Clone())
	return nil
}

func (SubmitCount) Type() string { return "submit_count" }
func (c SubmitCount) apply(m *Machine) error {
	if m.mode != ModePlayerSetup {
		return trivia.Invalid("mode", "player setup is not running")
	}
	if err := m.wizard.SubmitCount(c.Count); err != nil {
		return err
	}
	m.emit(Event{Type: EventNamePrompt, PlayerIndex: intPtr(m.wizard.Index())})
	return nil
}

func (SubmitName) Type() string { return "submit_name" }
func (c SubmitName) apply(m *Machine) error {
	if m.mode != ModePlayerSetup {
		return trivia.Invalid("mode", "player setup is not running")
	}
	names, done, err := m.wizard.SubmitName(c.Name)
	if err != nil {
		return err
	}
	if done {
		m.startGame(names)
		return nil
	}
	m.emit(Event{Type: EventNamePrompt, PlayerIndex: intPtr(m.wizard.Index())})
	return nil
}

func (CancelSetup) Type() string { return "cancel_setup" }
func (CancelSetup) apply(m *Machine) error {
	if m.mode != ModePlayerSetup {
		return trivia.Invalid("mode", "player setup is not open")
	}
	m.wizard.Cancel()
	m.returnToMenu()
	return nil
}

func (ReturnToMenu) Type() string { return "return_to_menu" }
func (ReturnToMenu) apply(m *Machine) error {
	m.returnToMenu()
	return nil
}

func (GoToBuilder) Type() string { return "go_to_builder" }
func (GoToBuilder) apply(m *Machine) error {
	return m.goToBuilder()
}

func (SelectTab) Type() string { return "select_tab" }
func (c SelectTab) apply(m *Machine) error {
	if m.mode != ModeMenu && m.mode != ModeBuilder {
		return trivia.Invalid("mode", "tabs are only shown on the menu and in the builder")
	}
	switch c.Tab {
	case TabPlay:
		if m.mode == ModeBuilder {
			m.returnToMenu()
		}
		m.tab = TabPlay
		return nil
	case TabBuilder:
		return m.goToBuilder()
	}
	return trivia.Invalid("tab", "unknown tab %q", c.Tab)
}

func (OpenQuestion) Type() string { return "open_question" }
func (c OpenQuestion) apply(m *Machine) error {
	if m.mode != ModePlaying || m.engine == nil {
		return trivia.Invalid("mode", "no game in progress")
	}
	cat, q, ok := m.doc.Cell(c.Category, c.Question)
	if !ok {
		return trivia.Invalid("question", "no question at %d/%d", c.Category, c.Question)
	}
	if m.engine.OpenQuestion(cat.Name, q) {
		sel, _ := m.engine.Selected()
		m.emit(Event{
			Type:        EventQuestionOpened,
			Key:         sel.Key,
			PlayerIndex: intPtr(sel.PlayerIndex),
		})
	}
	return nil
}

func (RevealAnswer) Type() string { return "reveal_answer" }
func (RevealAnswer) apply(m *Machine) error {
	if m.engine != nil && m.mode == ModePlaying && m.engine.RevealAnswer() {
		m.emit(Event{Type: EventAnswerRevealed})
	}
	return nil
}

func (MarkAnswer) Type() string { return "mark_answer" }
func (c MarkAnswer) apply(m *Machine) error {
	m.markAnswer(c.Correct)
	return nil
}

func (UpdateTitle) Type() string { return "update_title" }
func (c UpdateTitle) apply(m *Machine) error {
	if err := m.requireBuilder(); err != nil {
		return err
	}
	m.builder.UpdateTitle(c.Title)
	m.builderChanged()
	return nil
}

func (AddCategory) Type() string { return "add_category" }
func (AddCategory) apply(m *Machine) error {
	if err := m.requireBuilder(); err != nil {
		return err
	}
	m.builder.AddCategory()
	m.builderChanged()
	return nil
}

func (UpdateCategoryName) Type() string { return "update_category_name" }
func (c UpdateCategoryName) apply(m *Machine) error {
	if err := m.requireBuilder(); err != nil {
		return err
	}
	if err := m.builder.UpdateCategoryName(c.Category, c.Name); err != nil {
		return err
	}
	m.builderChanged()
	return nil
}

func (UpdateQuestion) Type() string { return "update_question" }
func (c UpdateQuestion) apply(m *Machine) error {
	if err := m.requireBuilder(); err != nil {
		return err
	}
	if err := m.builder.UpdateQuestionField(c.Category, c.Question, c.Field, c.Value); err != nil {
		return err
	}
	m.builderChanged()
	return nil
}

func (DeleteCategory) Type() string { return "delete_category" }
func (c DeleteCategory) apply(m *Machine) error {
	if err := m.requireBuilder(); err != nil {
		return err
	}
	if err := m.builder.RequestDelete(c.Category); err != nil {
		return err
	}
	m.emit(Event{Type: EventDeletePending, Category: intPtr(c.Category)})
	return nil
}

func (ConfirmDeleteCategory) Type() string { return "confirm_delete_category" }
func (ConfirmDeleteCategory) apply(m *Machine) error {
	if m.builder.ConfirmDelete() {
		m.builderChanged()
	}
	return nil
}

func (CancelDeleteCategory) Type() string { return "cancel_delete_category" }
func (CancelDeleteCategory) apply(m *Machine) error {
	m.builder.CancelDelete()
	return nil
}

func (ToggleCategory) Type() string { return "toggle_category" }
func (c ToggleCategory) apply(m *Machine) error {
	if err := m.requireBuilder(); err != nil {
		return err
	}
	return m.builder.ToggleCategory(c.Category)
}

func (ImportDocument) Type() string { return "import_document" }
func (c ImportDocument) apply(m *Machine) error {
	if err := m.requireBuilder(); err != nil {
		return err
	}
	if err := m.builder.Import(c.Data); err != nil {
		return err
	}
	m.emit(Event{Type: EventDocumentImported, Message: "Game imported successfully!"})
	m.builderChanged()
	return nil
}

// EditDocument replaces the builder's board with an already parsed one,
// opening the builder first when called from the menu.
func (EditDocument) Type() string { return "edit_document" }
func (c EditDocument) apply(m *Machine) error {
	if c.Document.Categories == nil {
		return &trivia.InvalidFormatError{Reason: "missing categories"}
	}
	if err := m.goToBuilder(); err != nil {
		return err
	}
	m.builder.Replace(c.Document)
	m.builderChanged()
	return nil
}

func (LoadBuilderToPlay) Type() string { return "load_builder_to_play" }
func (LoadBuilderToPlay) apply(m *Machine) error {
	if err := m.requireBuilder(); err != nil {
		return err
	}
	m.builder.RequestLoad()
	m.emit(Event{Type: EventLoadPending})
	return nil
}

func (ConfirmLoadBuilder) Type() string { return "confirm_load_builder" }
func (ConfirmLoadBuilder) apply(m *Machine) error {
	if doc, ok := m.builder.ConfirmLoad(); ok {
		m.loadGame(doc)
	}
	return nil
}

func (CancelLoadBuilder) Type() string { return "cancel_load_builder" }
func (CancelLoadBuilder) apply(m *Machine) error {
	m.builder.CancelLoad()
	return nil
}
