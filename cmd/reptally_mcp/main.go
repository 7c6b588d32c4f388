// Package main runs the reptally MCP server over stdio (for local
// agent tooling). The same MCP server is also mounted on the main
// backend at /mcp over HTTP, so you can use either: stdio (this cmd)
// or the backend URL, but not both at once against the same bolt file,
// since bolt takes an exclusive file lock.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oliverhees/reptally/internal/config"
	"github.com/oliverhees/reptally/internal/replog"
	replogmcp "github.com/oliverhees/reptally/internal/replog/mcp"
	"github.com/oliverhees/reptally/internal/replog/store"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	storagePath := cfg.StoragePath
	if storagePath == "" {
		if storagePath, err = store.DefaultPath(); err != nil {
			log.Fatalf("resolve storage path: %v", err)
		}
	}

	boltStore, err := store.NewBolt(storagePath)
	if err != nil {
		log.Fatalf("open log store: %v", err)
	}
	defer func() {
		_ = boltStore.Close()
	}()

	loc := time.Local
	if cfg.Timezone != "" {
		if loc, err = time.LoadLocation(cfg.Timezone); err != nil {
			log.Fatalf("load timezone: %v", err)
		}
	}

	ctx := context.Background()
	logService, err := replog.NewService(ctx, boltStore, loc)
	if err != nil {
		log.Fatalf("new replog service: %v", err)
	}

	server := replogmcp.NewServer(logService)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
