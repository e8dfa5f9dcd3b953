package main

import (
	"context"
	"log"
	"os"

	"github.com/me22abd/campusconnect-client/internal/buildinfo"
	"github.com/me22abd/campusconnect-client/internal/client/cli"
	"github.com/me22abd/campusconnect-client/internal/client/config"
)

func main() {

	buildinfo.Print(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
