package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	firebaseadmin "github.com/admurz/go-firebase-admin"
	"github.com/admurz/go-firebase-admin/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	showVersion := flag.Bool("version", false, "print build information and exit")
	projectID := flag.String("project", "", "Firebase project id (defaults to GOOGLE_CLOUD_PROJECT)")
	timeout := flag.Duration("timeout", 0, "request timeout (defaults to FIREBASE_REQUEST_TIMEOUT or 15s)")
	debug := flag.Bool("debug", false, "enable SDK debug logging")
	flag.Parse()

	if *showVersion {
		printBuildInfo()
		return
	}

	log := logger.NewLogger("rcfetch")

	ctx := context.Background()
	app, err := firebaseadmin.NewApp(ctx, &firebaseadmin.Config{
		ProjectID:      *projectID,
		RequestTimeout: *timeout,
		Debug:          *debug,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error initialising app")
	}

	client, err := app.RemoteConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating remote config client")
	}

	started := time.Now()
	tmpl, err := client.FetchTemplate(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error fetching template")
	}

	out, err := json.MarshalIndent(tmpl, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("error encoding template")
	}

	fmt.Fprintln(os.Stdout, string(out))
	log.Info().
		Str("project_id", app.ProjectID()).
		Str("etag", tmpl.ETag).
		Dur("duration", time.Since(started)).
		Msg("template fetched")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
