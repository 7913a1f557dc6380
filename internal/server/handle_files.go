package server

import (
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/skip2/go-qrcode"

	"github.com/playperu/triviaboard/internal/app"
	"github.com/playperu/triviaboard/internal/trivia"
)

// handleExport downloads the builder's board as <slug>.json.
func handleExport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename, data, err := sessionFrom(r).Machine.ExportBuilder()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "encoding board")
			return
		}
		writeGameFile(w, r, filename, data)
	}
}

func handleImport(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, ok := readGameFile(w, r)
		if !ok {
			return
		}
		dispatch(w, logger, sessionFrom(r), app.ImportDocument{Data: data})
	}
}

// handleLoad starts player setup with an uploaded board.
func handleLoad(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, ok := readGameFile(w, r)
		if !ok {
			return
		}
		doc, err := trivia.Parse(data)
		if err != nil {
			writeDomainError(w, logger, err)
			return
		}
		dispatch(w, logger, sessionFrom(r), app.LoadGame{Document: doc})
	}
}

// handleQR renders a QR code that opens the session in a browser.
func handleQR(publicURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		size := 320
		if s := r.URL.Query().Get("size"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 64 || n > 1024 {
				writeError(w, http.StatusBadRequest, "size must be between 64 and 1024")
				return
			}
			size = n
		}

		url := publicURL + "/?session=" + sessionFrom(r).ID
		png, err := qrcode.Encode(url, qrcode.Medium, size)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "qr generation failed")
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-cache")
		_, _ = w.Write(png)
	}
}

// readGameFile accepts either a raw JSON body or a multipart form with the
// file in its "file" field. It writes the error response itself.
func readGameFile(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large")
			return nil, false
		}
		return data, true
	}

	f, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "file too large")
		return nil, false
	}
	return data, true
}

// writeGameFile sends an exported board as a download. The ETag is the
// board's content ID so an unchanged board answers 304.
func writeGameFile(w http.ResponseWriter, r *http.Request, filename string, data []byte) {
	etag := `"` + BoardID(data) + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
