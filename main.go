package main

import (
	"context"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ytget/report-summarizer/internal/api"
	"github.com/ytget/report-summarizer/internal/config"
	"github.com/ytget/report-summarizer/internal/logging"
	"github.com/ytget/report-summarizer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppID = "com.ytget.report-summarizer"

func main() {
	if err := newRootCmd(run).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the launcher. start receives the loaded settings.
func newRootCmd(start func(context.Context, *config.Settings) error) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:          "report-summarizer",
		Short:        "Desktop client for the report summarization service",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			return start(cmd.Context(), settings)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
	flags.String("api-url", "", "backend base URL (default "+config.DefaultAPIURL+")")
	flags.String("downloads-dir", "", "directory saved summaries go to (default: ~/Downloads)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: text or json")
	flags.String("language", "", "UI language: system, en, ru or pt")

	return cmd
}

// run opens the main window and blocks until it is closed
func run(ctx context.Context, settings *config.Settings) error {
	log, err := logging.New(settings.GetLogLevel(), settings.GetLogFormat())
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"version": version,
		"api_url": settings.GetAPIURL(),
	}).Info("Report Summarizer starting")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	backend := api.NewClient(settings.GetAPIURL(), api.NewHTTPClient(settings.GetRequestTimeout()), log)

	fyneApp := app.NewWithID(AppID)
	fyneApp.Settings().SetTheme(ui.NewCompactTheme())

	window := fyneApp.NewWindow("")
	window.SetOnClosed(cancel)

	root := ui.NewRootUI(ctx, window, backend, settings, log)
	root.Start()

	window.ShowAndRun()
	log.Info("Report Summarizer stopped")
	return nil
}
