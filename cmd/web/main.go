package main

import (
	"log/slog"
	"os"

	"gstpro/internal/app"
	"gstpro/web"
)

func main() {
	application, err := app.NewApplication(web.Files)
	if err != nil {
		slog.Error("Failed to initialize application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		slog.Error("Application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
