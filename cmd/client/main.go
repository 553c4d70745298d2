package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/zero-vault/internal/client"
	"github.com/MKhiriev/zero-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// Build information is printed by `zero-vault version`; stdout of the
	// other commands carries only their output.
	app := client.NewApp(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	err := app.Run(ctx, os.Args[1:])
	stop()

	if err != nil {
		os.Exit(1)
	}
}
