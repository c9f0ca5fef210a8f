package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hongminglow/shopfront/internal/client/cli"
	"github.com/hongminglow/shopfront/internal/client/localstore"
)

func main() {
	defaultServer := os.Getenv("SHOPFRONT_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:8080"
	}

	serverURL := flag.String("server", defaultServer, "shopfront backend base URL")
	stateDir := flag.String("state", "", "directory for the local session state (default: per-user config dir)")
	flag.Parse()

	dir := *stateDir
	if dir == "" {
		var err error
		dir, err = localstore.DefaultDir()
		if err != nil {
			log.Fatalf("resolve state dir: %v", err)
		}
	}

	app, err := cli.NewApp(*serverURL, dir)
	if err != nil {
		log.Fatalf("init app: %v", err)
	}

	app.Run(context.Background())
}
