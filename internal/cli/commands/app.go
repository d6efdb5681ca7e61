package commands

import "github.com/urfave/cli/v2"

// NewApp assembles the formctl command tree.
func NewApp(version string) *cli.App {
	return &cli.App{
		Name:    "formctl",
		Usage:   "Inspect, preview and validate form schemas offline",
		Version: version,
		Flags:   []cli.Flag{SeedFlag()},
		Commands: []*cli.Command{
			NewListCommand(),
			NewShowCommand(),
			NewPreviewCommand(),
			NewValidateCommand(),
			NewPresetsCommand(),
		},
	}
}
