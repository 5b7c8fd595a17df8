// Command snapshot exports the full data directory as one JSON document on
// stdout, or imports one from stdin. It operates on the files directly and
// must not run concurrently with a server writing to the same directory
// outside the file locks.
//
// Usage:
//
//	snapshot export > backup.json
//	snapshot import < backup.json
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/openclaw/lifeos-server/internal/app"
	"github.com/openclaw/lifeos-server/internal/config"
	"github.com/openclaw/lifeos-server/internal/domain"
	"github.com/openclaw/lifeos-server/internal/service/snapshot"
	"github.com/openclaw/lifeos-server/internal/store"
)

func main() {
	if len(os.Args) != 2 || (os.Args[1] != "export" && os.Args[1] != "import") {
		log.Fatal("usage: snapshot export|import")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	st, err := store.Open(cfg.Storage.DataDir, logger)
	if err != nil {
		logger.Error("open store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	svc := snapshot.NewService(logger, st)

	switch os.Args[1] {
	case "export":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(svc.Export(ctx)); err != nil {
			logger.Error("encode snapshot", slog.String("error", err.Error()))
			os.Exit(1)
		}

	case "import":
		var snap domain.Snapshot
		if err := json.NewDecoder(os.Stdin).Decode(&snap); err != nil {
			logger.Error("decode snapshot", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := svc.Import(ctx, &snap); err != nil {
			logger.Error("import snapshot", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
}
