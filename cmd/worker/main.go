package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/alecthomas/kingpin.v2"

	"paper-analyzer/internal/config"
	apperrors "paper-analyzer/pkg/errors"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes one analysis and returns the process exit code
func run(args []string, stderr io.Writer) int {
	app := kingpin.New("paper-worker", "Extract the text of a PDF and store its summary for a session.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	sessionID := app.Flag("session", "Session identifier the summary is stored under.").Required().String()
	pdfPath := app.Flag("file", "Path to the PDF document.").Required().String()

	if _, err := app.Parse(args); err != nil {
		app.Errorf("%s, try --help", err)
		return apperrors.GetExitCode(apperrors.NewInputError("invalid arguments", err))
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(stderr, "Warning: .env file could not be loaded: %v\n", err)
	}

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return apperrors.ExitFailure
	}

	container, err := config.NewContainer(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "failed to initialize: %v\n", err)
		return apperrors.ExitFailure
	}
	defer container.Close()

	if _, err := container.AnalysisService.Analyze(context.Background(), *sessionID, *pdfPath); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return apperrors.GetExitCode(err)
	}
	return apperrors.ExitOK
}
