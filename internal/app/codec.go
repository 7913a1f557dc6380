package app

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownCommand is returned by DecodeCommand for an unrecognized type tag.
var ErrUnknownCommand = errors.New("unknown command")

var commandTypes = map[string]func([]byte) (Command, error){
	StartSetup{}.Type():            decodeAs[StartSetup],
	LoadExample{}.Type():           decodeAs[LoadExample],
	LoadGame{}.Type():              decodeAs[LoadGame],
	SubmitCount{}.Type():           decodeAs[SubmitCount],
	SubmitName{}.Type():            decodeAs[SubmitName],
	CancelSetup{}.Type():           decodeAs[CancelSetup],
	ReturnToMenu{}.Type():          decodeAs[ReturnToMenu],
	GoToBuilder{}.Type():           decodeAs[GoToBuilder],
	SelectTab{}.Type():             decodeAs[SelectTab],
	OpenQuestion{}.Type():          decodeAs[OpenQuestion],
	RevealAnswer{}.Type():          decodeAs[RevealAnswer],
	MarkAnswer{}.Type():            decodeAs[MarkAnswer],
	UpdateTitle{}.Type():           decodeAs[UpdateTitle],
	AddCategory{}.Type():           decodeAs[AddCategory],
	UpdateCategoryName{}.Type():    decodeAs[UpdateCategoryName],
	UpdateQuestion{}.Type():        decodeAs[UpdateQuestion],
	DeleteCategory{}.Type():        decodeAs[DeleteCategory],
	ConfirmDeleteCategory{}.Type(): decodeAs[ConfirmDeleteCategory],
	CancelDeleteCategory{}.Type():  decodeAs[CancelDeleteCategory],
	ToggleCategory{}.Type():        decodeAs[ToggleCategory],
	EditDocument{}.Type():          decodeAs[EditDocument],
	LoadBuilderToPlay{}.Type():     decodeAs[LoadBuilderToPlay],
	ConfirmLoadBuilder{}.Type():    decodeAs[ConfirmLoadBuilder],
	CancelLoadBuilder{}.Type():     decodeAs[CancelLoadBuilder],
}

// DecodeCommand reads a tagged command such as
// {"type":"submit_count","count":3}. For import_document the "document"
// field is passed through unparsed so the import rules apply to it.
func DecodeCommand(data []byte) (Command, error) {
	var env struct {
		Type     string          `json:"type"`
		Document json.RawMessage `json:"document"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding command: %w", err)
	}

	if env.Type == (ImportDocument{}).Type() {
		return ImportDocument{Data: env.Document}, nil
	}

	decode, ok := commandTypes[env.Type]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownCommand, env.Type)
	}
	cmd, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", env.Type, err)
	}
	return cmd, nil
}

func decodeAs[T Command](data []byte) (Command, error) {
	var c T
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return c, nil
}

