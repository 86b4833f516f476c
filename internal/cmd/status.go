package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/ringlite/ringlite/internal/entitlement"
	"github.com/spf13/cobra"
)

func Status() *cobra.Command {
	return NewCommand(
		&cobra.Command{
			Use:   "status [flags]",
			Short: "Display the license status",
			Long: `Show whether this installation is licensed and how many of the free
uses have been consumed. The state is read only; nothing is counted.

Example:
  ringlite status
  ringlite status --json
`,
			Args: cobra.NoArgs,
		}, statusFlags, runStatus,
	)
}

var statusFlags = []commandLineFlag{jsonFlag}

func runStatus(ctx *Context, _ []string) error {
	asJSON, err := ctx.BoolParam("json")
	if err != nil {
		return err
	}

	st := ctx.Entitlements.Status(ctx)
	if asJSON {
		return writeJSON(ctx.Out(), st)
	}

	renderStatus(ctx, st)
	return nil
}

func renderStatus(ctx *Context, st entitlement.Status) {
	t := newTable(ctx.Out())
	t.AppendRows([]table.Row{
		{"Licensed", yesNo(st.IsLicensed)},
		{"Uses", fmt.Sprintf("%d / %d", st.UseCount, st.MaxFreeUses)},
		{"Free uses remaining", st.RemainingFreeUses()},
	})
	t.Render()
}
