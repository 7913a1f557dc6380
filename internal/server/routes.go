package server

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Triviaboard API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, deps.Checks))

	r.Post("/api/sessions", handleCreateSession(logger, deps.Sessions, deps.Boards))

	// Everything below resolves {id} through sessionMiddleware.
	r.Route("/api/sessions/{id}", func(r chi.Router) {
		r.Use(sessionMiddleware(deps.Sessions))
		r.Get("/", handleGetSession())
		r.Delete("/", handleDeleteSession(deps.Sessions))
		r.Post("/commands", handleCommand(logger))
		r.Get("/events", handleEvents(deps.Broker))
		r.Get("/ws", handleWS(logger, deps.Broker))
		r.Get("/qr.png", handleQR(deps.PublicURL))

		r.Get("/builder/export", handleExport())
		r.Post("/builder/import", handleImport(logger))
		r.Post("/load", handleLoad(logger))

		r.Post("/boards/{boardID}/play", handlePlayBoard(logger, deps.Boards))
		r.Post("/boards/{boardID}/edit", handleEditBoard(logger, deps.Boards))
	})

	r.Route("/api/boards", func(r chi.Router) {
		r.Get("/", handleListBoards(logger, deps.Boards))
		r.Post("/", handleSaveBoard(logger, deps.Boards))
		r.Get("/{boardID}", handleGetBoard(logger, deps.Boards))
		r.Delete("/{boardID}", handleDeleteBoard(logger, deps.Boards))
	})

	if deps.SPADir != "" {
		if info, err := os.Stat(deps.SPADir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", deps.SPADir)
			r.NotFound(handleSPA(deps.SPADir))
		}
	}
}
