package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/ringlite/ringlite/internal/cmn/config"
	"github.com/ringlite/ringlite/internal/cmn/logger"
	"github.com/ringlite/ringlite/internal/cmn/logger/tag"
	"github.com/ringlite/ringlite/internal/platform"
	"github.com/spf13/cobra"
)

func Doctor() *cobra.Command {
	return NewCommand(
		&cobra.Command{
			Use:   "doctor [flags]",
			Short: "Show installation diagnostics",
			Long: `Print the resolved paths, the installation id and the platform
capabilities available to this build.
`,
			Args: cobra.NoArgs,
		}, doctorFlags, runDoctor,
	)
}

var doctorFlags = []commandLineFlag{jsonFlag}

type doctorReport struct {
	Version        string                `json:"version"`
	ConfigFile     string                `json:"config_file"`
	DataDir        string                `json:"data_dir"`
	StateFile      string                `json:"state_file"`
	InstallationID string                `json:"installation_id"`
	Platform       platform.Capabilities `json:"platform"`
}

func runDoctor(ctx *Context, _ []string) error {
	asJSON, err := ctx.BoolParam("json")
	if err != nil {
		return err
	}

	id, err := ctx.Store.InstallationID()
	if err != nil {
		logger.Warn(ctx, "Failed to read installation id", tag.Error(err))
	}

	report := doctorReport{
		Version:        config.Version,
		ConfigFile:     ctx.Config.Paths.ConfigFileUsed,
		DataDir:        ctx.Store.Dir(),
		StateFile:      ctx.Store.Path(),
		InstallationID: id,
		Platform:       platform.Detect(),
	}

	if asJSON {
		return writeJSON(ctx.Out(), report)
	}

	configFile := report.ConfigFile
	if configFile == "" {
		configFile = "(none)"
	}

	t := newTable(ctx.Out())
	t.AppendRows([]table.Row{
		{"Version", report.Version},
		{"Config file", configFile},
		{"Data directory", report.DataDir},
		{"State file", report.StateFile},
		{"Installation ID", report.InstallationID},
		{"OS", report.Platform.OS},
		{"Capture exclusion", yesNo(report.Platform.CaptureExclusion)},
		{"Cursor position", yesNo(report.Platform.CursorPosition)},
	})
	t.Render()
	return nil
}
