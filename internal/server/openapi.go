package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/playperu/triviaboard/internal/trivia"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CommandRequest documents the command envelope. Each command reads only
// the fields it needs.
type CommandRequest struct {
	Type string `json:"type" required:"true" enum:"start_setup,load_example,load_game,submit_count,submit_name,cancel_setup,return_to_menu,go_to_builder,select_tab,open_question,reveal_answer,mark_answer,update_title,add_category,update_category_name,update_question,delete_category,confirm_delete_category,cancel_delete_category,toggle_category,import_document,edit_document,load_builder_to_play,confirm_load_builder,cancel_load_builder"`

	Document *trivia.Document `json:"document,omitempty" description:"load_game, import_document, edit_document"`
	Count    *int             `json:"count,omitempty" minimum:"1" maximum:"6"`
	Name     *string          `json:"name,omitempty" description:"submit_name, update_category_name"`
	Tab      *string          `json:"tab,omitempty" enum:"play,builder"`
	Category *int             `json:"category,omitempty"`
	Question *int             `json:"question,omitempty"`
	Correct  *bool            `json:"correct,omitempty"`
	Title    *string          `json:"title,omitempty"`
	Field    *string          `json:"field,omitempty" enum:"question,answer"`
	Value    *string          `json:"value,omitempty"`
}

type sessionPath struct {
	ID string `path:"id" format:"uuid"`
}

type boardPath struct {
	BoardID string `path:"boardID"`
}

type sessionBoardPath struct {
	ID      string `path:"id" format:"uuid"`
	BoardID string `path:"boardID"`
}

type commandInput struct {
	ID string `path:"id" format:"uuid"`
	CommandRequest
}

type sessionFileInput struct {
	ID string `path:"id" format:"uuid"`
	trivia.Document
}

type createSessionInput struct {
	Board string `query:"board" description:"Saved board to preload instead of the example."`
}

type qrInput struct {
	ID   string `path:"id" format:"uuid"`
	Size int    `query:"size" minimum:"64" maximum:"1024" default:"320"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Triviaboard API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Hosts trivia board sessions: build a board, set up players, play.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/sessions
	createSession, _ := r.NewOperationContext(http.MethodPost, "/api/sessions")
	createSession.SetSummary("Create session")
	createSession.SetDescription("Starts a session at the menu with the example board, or a saved one, loaded for play and editing.")
	createSession.AddReqStructure(createSessionInput{})
	createSession.AddRespStructure(SessionResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	createSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(createSession)

	// GET /api/sessions/{id}
	getSession, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{id}")
	getSession.SetSummary("Get session")
	getSession.SetDescription("Returns the session snapshot. The answer stays hidden until revealed.")
	getSession.AddReqStructure(sessionPath{})
	getSession.AddRespStructure(SessionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getSession)

	// DELETE /api/sessions/{id}
	deleteSession, _ := r.NewOperationContext(http.MethodDelete, "/api/sessions/{id}")
	deleteSession.SetSummary("End session")
	deleteSession.AddReqStructure(sessionPath{})
	deleteSession.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	deleteSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(deleteSession)

	// POST /api/sessions/{id}/commands
	postCommand, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{id}/commands")
	postCommand.SetSummary("Apply command")
	postCommand.SetDescription("Applies one command atomically and returns the new snapshot. A rejected command changes nothing.")
	postCommand.AddReqStructure(commandInput{})
	postCommand.AddRespStructure(SessionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postCommand.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postCommand.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postCommand.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	_ = r.AddOperation(postCommand)

	// GET /api/sessions/{id}/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{id}/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events: a snapshot first, then every session event.")
	getEvents.AddReqStructure(sessionPath{})
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /api/sessions/{id}/ws
	getWS, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{id}/ws")
	getWS.SetSummary("WebSocket channel")
	getWS.SetDescription("Upgrades to a WebSocket. Inbound messages are commands, outbound are events and command replies.")
	getWS.AddReqStructure(sessionPath{})
	getWS.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("text/plain"))
	_ = r.AddOperation(getWS)

	// GET /api/sessions/{id}/qr.png
	getQR, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{id}/qr.png")
	getQR.SetSummary("Share QR code")
	getQR.SetDescription("PNG QR code linking to the session in the front end.")
	getQR.AddReqStructure(qrInput{})
	getQR.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("image/png"))
	_ = r.AddOperation(getQR)

	// GET /api/sessions/{id}/builder/export
	exportBoard, _ := r.NewOperationContext(http.MethodGet, "/api/sessions/{id}/builder/export")
	exportBoard.SetSummary("Export builder board")
	exportBoard.SetDescription("Downloads the board being edited as <title>.json.")
	exportBoard.AddReqStructure(sessionPath{})
	exportBoard.AddRespStructure(trivia.Document{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(exportBoard)

	// POST /api/sessions/{id}/builder/import
	importBoard, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{id}/builder/import")
	importBoard.SetSummary("Import into builder")
	importBoard.SetDescription("Replaces the board being edited. Accepts a JSON body or a multipart file field.")
	importBoard.AddReqStructure(sessionFileInput{})
	importBoard.AddRespStructure(SessionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	importBoard.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	importBoard.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	_ = r.AddOperation(importBoard)

	// POST /api/sessions/{id}/load
	loadBoard, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{id}/load")
	loadBoard.SetSummary("Load game file")
	loadBoard.SetDescription("Makes an uploaded board the live one and starts player setup.")
	loadBoard.AddReqStructure(sessionFileInput{})
	loadBoard.AddRespStructure(SessionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	loadBoard.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	_ = r.AddOperation(loadBoard)

	// POST /api/sessions/{id}/boards/{boardID}/play
	playBoard, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{id}/boards/{boardID}/play")
	playBoard.SetSummary("Play saved board")
	playBoard.SetDescription("Loads a saved board and starts player setup.")
	playBoard.AddReqStructure(sessionBoardPath{})
	playBoard.AddRespStructure(SessionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	playBoard.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(playBoard)

	// POST /api/sessions/{id}/boards/{boardID}/edit
	editBoard, _ := r.NewOperationContext(http.MethodPost, "/api/sessions/{id}/boards/{boardID}/edit")
	editBoard.SetSummary("Edit saved board")
	editBoard.SetDescription("Opens a saved board in the builder.")
	editBoard.AddReqStructure(sessionBoardPath{})
	editBoard.AddRespStructure(SessionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	editBoard.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	editBoard.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(editBoard)

	// GET /api/boards
	listBoards, _ := r.NewOperationContext(http.MethodGet, "/api/boards")
	listBoards.SetSummary("List saved boards")
	listBoards.AddRespStructure([]BoardSummary{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listBoards)

	// POST /api/boards
	saveBoard, _ := r.NewOperationContext(http.MethodPost, "/api/boards")
	saveBoard.SetSummary("Save board")
	saveBoard.SetDescription("Stores a game file. Identical boards share one ID.")
	saveBoard.AddReqStructure(trivia.Document{})
	saveBoard.AddRespStructure(BoardSummary{}, openapi.WithHTTPStatus(http.StatusCreated))
	saveBoard.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnprocessableEntity))
	_ = r.AddOperation(saveBoard)

	// GET /api/boards/{boardID}
	getBoard, _ := r.NewOperationContext(http.MethodGet, "/api/boards/{boardID}")
	getBoard.SetSummary("Download saved board")
	getBoard.AddReqStructure(boardPath{})
	getBoard.AddRespStructure(trivia.Document{}, openapi.WithHTTPStatus(http.StatusOK))
	getBoard.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNotModified))
	getBoard.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getBoard)

	// DELETE /api/boards/{boardID}
	deleteBoard, _ := r.NewOperationContext(http.MethodDelete, "/api/boards/{boardID}")
	deleteBoard.SetSummary("Delete saved board")
	deleteBoard.AddReqStructure(boardPath{})
	deleteBoard.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusNoContent))
	deleteBoard.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(deleteBoard)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
