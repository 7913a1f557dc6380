package server

import (
	"bytes"
	"image/png"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/playperu/triviaboard/internal/app"
	"github.com/playperu/triviaboard/internal/trivia"
)

const smallBoard = `{"title":"Pub Night","categories":[{"name":"Music","questions":[{"value":100,"question":"Q","answer":"A"}]}]}`

func multipartBody(t *testing.T, field, content string) ([]byte, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, "board.json")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	fw.Write([]byte(content))
	mw.Close()
	return buf.Bytes(), mw.FormDataContentType()
}

// downloadName returns the filename carried by the Content-Disposition header.
func downloadName(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	disposition, params, err := mime.ParseMediaType(w.Header().Get("Content-Disposition"))
	if err != nil {
		t.Fatalf("content-disposition %q: %v", w.Header().Get("Content-Disposition"), err)
	}
	if disposition != "attachment" {
		t.Errorf("disposition = %q, want attachment", disposition)
	}
	return params["filename"]
}

func TestExportNonASCIIFilename(t *testing.T) {
	r, _ := testRouter(t)
	id := createSession(t, r).ID
	mustCommand(t, r, id, `{"type":"go_to_builder"}`, `{"type":"update_title","title":"Trivia\u00a0Café"}`)

	w := do(t, r, http.MethodGet, "/api/sessions/"+id+"/builder/export", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	header := w.Header().Get("Content-Disposition")
	for i := 0; i < len(header); i++ {
		if header[i] >= 0x80 {
			t.Fatalf("content-disposition %q carries raw non-ASCII bytes", header)
		}
	}
	if !strings.Contains(header, "filename*=utf-8''Trivia_Caf%C3%A9.json") {
		t.Errorf("content-disposition = %q, want an RFC 2231 filename", header)
	}
	if got := downloadName(t, w); got != "Trivia_Café.json" {
		t.Errorf("download name = %q, want %q", got, "Trivia_Café.json")
	}
}

func TestExportBuilderBoard(t *testing.T) {
	r, _ := testRouter(t)
	id := createSession(t, r).ID

	w := do(t, r, http.MethodGet, "/api/sessions/"+id+"/builder/export", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := downloadName(t, w); got != "Trivia_Challenge.json" {
		t.Errorf("download name = %q, want %q", got, "Trivia_Challenge.json")
	}

	want, _ := trivia.Encode(trivia.Example())
	if !bytes.Equal(w.Body.Bytes(), want) {
		t.Error("export body differs from the encoded example board")
	}
	if !strings.Contains(w.Body.String(), "\n  \"categories\"") {
		t.Error("export should use two-space indentation")
	}

	etag := w.Header().Get("ETag")
	if etag != `"`+BoardID(want)+`"` {
		t.Errorf("etag = %s, want content id", etag)
	}
	w = do(t, r, http.MethodGet, "/api/sessions/"+id+"/builder/export", nil, "If-None-Match", etag)
	if w.Code != http.StatusNotModified {
		t.Errorf("conditional get: status = %d, want %d", w.Code, http.StatusNotModified)
	}
}

func TestImportIntoBuilder(t *testing.T) {
	r, _ := testRouter(t)
	id := createSession(t, r).ID
	mustCommand(t, r, id, `{"type":"go_to_builder"}`)

	body, ctype := multipartBody(t, "file", smallBoard)
	w := do(t, r, http.MethodPost, "/api/sessions/"+id+"/builder/import", body, "Content-Type", ctype)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}
	resp := decode[SessionResponse](t, w)
	if resp.Builder.Document.Title != "Pub Night" {
		t.Errorf("builder title = %q, want Pub Night", resp.Builder.Document.Title)
	}
	if resp.Document.Title != "Trivia Challenge" {
		t.Errorf("live title = %q, import must not touch the live board", resp.Document.Title)
	}
}

func TestImportInvalidFile(t *testing.T) {
	r, _ := testRouter(t)
	id := createSession(t, r).ID
	mustCommand(t, r, id, `{"type":"go_to_builder"}`)

	tests := []struct {
		name string
		body string
	}{
		{"not json", `hello`},
		{"no categories", `{"title":"x"}`},
		{"categories null", `{"title":"x","categories":null}`},
		{"wrong types", `{"title":"x","categories":[{"name":3}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/api/sessions/"+id+"/builder/import", []byte(tt.body))
			if w.Code != http.StatusUnprocessableEntity {
				t.Errorf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
			}
			if resp := decode[ErrorResponse](t, w); !strings.HasPrefix(resp.Error, "invalid game file") {
				t.Errorf("error = %q", resp.Error)
			}
		})
	}

	w := do(t, r, http.MethodGet, "/api/sessions/"+id, nil)
	if got := decode[SessionResponse](t, w).Builder.Document.Title; got != "Trivia Challenge" {
		t.Errorf("builder title = %q, failed imports must leave it alone", got)
	}
}

func TestImportMissingFileField(t *testing.T) {
	r, _ := testRouter(t)
	id := createSession(t, r).ID
	mustCommand(t, r, id, `{"type":"go_to_builder"}`)

	body, ctype := multipartBody(t, "upload", smallBoard)
	w := do(t, r, http.MethodPost, "/api/sessions/"+id+"/builder/import", body, "Content-Type", ctype)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestLoadGameFile(t *testing.T) {
	r, _ := testRouter(t)
	id := createSession(t, r).ID

	w := do(t, r, http.MethodPost, "/api/sessions/"+id+"/load", []byte(smallBoard), "Content-Type", "application/json")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}
	resp := decode[SessionResponse](t, w)
	if resp.Mode != app.ModePlayerSetup || resp.Document.Title != "Pub Night" {
		t.Errorf("mode = %s title = %q, want PLAYER_SETUP with the loaded board", resp.Mode, resp.Document.Title)
	}

	w = do(t, r, http.MethodPost, "/api/sessions/"+id+"/load", []byte(`[]`))
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("invalid load: status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}
}

func TestQRCode(t *testing.T) {
	r, _ := testRouter(t)
	id := createSession(t, r).ID

	w := do(t, r, http.MethodGet, "/api/sessions/"+id+"/qr.png?size=128", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if got := w.Header().Get("Content-Type"); got != "image/png" {
		t.Errorf("content-type = %q, want image/png", got)
	}
	img, err := png.Decode(w.Body)
	if err != nil {
		t.Fatalf("decoding png: %v", err)
	}
	if got := img.Bounds().Dx(); got != 128 {
		t.Errorf("width = %d, want 128", got)
	}

	w = do(t, r, http.MethodGet, "/api/sessions/"+id+"/qr.png?size=5000", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("oversized: status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestReadGameFileTooLarge(t *testing.T) {
	big := bytes.Repeat([]byte("x"), maxBodyBytes+1)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(big))
	w := httptest.NewRecorder()

	if _, ok := readGameFile(w, req); ok {
		t.Fatal("expected oversized body to be rejected")
	}
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want %d", w.Code, http.StatusRequestEntityTooLarge)
	}
}
