// Command pwa-icons renders the store's PWA icons and notification badge
// into apps/store/static/icons.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/graodegente/pwa-icons/internal/config"
	"github.com/graodegente/pwa-icons/internal/fontchain"
	"github.com/graodegente/pwa-icons/internal/generate"
	"github.com/graodegente/pwa-icons/internal/icon"
)

var version = ""

func displayVersion() string {
	if version != "" {
		return version
	}
	return "dev"
}

func main() {
	os.Exit(run(os.Stdout, os.Stderr, nil, fontchain.Default()))
}

// run generates the icon set and returns the process exit code. Individual
// file failures are reported but do not change the exit code.
func run(stdout, stderr io.Writer, environ map[string]string, fonts *fontchain.Chain) int {
	if _, err := fontchain.Embedded(); err != nil {
		fmt.Fprintf(stderr, "pwa-icons: font rendering unavailable: %v\n", err)
		return 1
	}
	cfg, err := config.LoadFrom(environ)
	if err != nil {
		fmt.Fprintf(stderr, "pwa-icons: %v\n", err)
		return 1
	}

	logger := log.New(stdout, "", 0)
	logger.Printf("pwa-icons %s: writing to %s", displayVersion(), cfg.OutputDir)
	logFont(logger, fonts)

	d := &generate.Driver{
		Dir:     cfg.OutputDir,
		Targets: generate.Targets(config.IconSizes, config.BadgeSize),
		Encoder: icon.NewRenderer(fonts),
		Logger:  logger,
	}
	report, err := d.Run()
	if err != nil {
		fmt.Fprintf(stderr, "pwa-icons: %v\n", err)
		return 1
	}
	report.WriteSummary(stdout)
	return 0
}

// logFont reports which face the chain settles on, so a fallback to the
// embedded font is visible in the output.
func logFont(logger *log.Logger, fonts *fontchain.Chain) {
	res := fonts.Face(12)
	defer res.Face.Close()
	for _, a := range res.Attempts {
		logger.Printf("font: %s: %v", a.Name, a.Err)
	}
	logger.Printf("font: using %s", res.Source)
}
