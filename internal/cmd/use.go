package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func Use() *cobra.Command {
	return NewCommand(
		&cobra.Command{
			Use:   "use [flags]",
			Short: "Record one billable use",
			Long: `Count one use of the application against the free quota. Once the
installation is licensed the counter no longer changes.

Example:
  ringlite use
`,
			Args: cobra.NoArgs,
		}, useFlags, runUse,
	)
}

var useFlags = []commandLineFlag{jsonFlag}

func runUse(ctx *Context, _ []string) error {
	asJSON, err := ctx.BoolParam("json")
	if err != nil {
		return err
	}

	st := ctx.Entitlements.RecordUse(ctx)
	nag := ctx.Entitlements.ShouldNag(ctx)

	if ctx.PersistenceDegraded() {
		_, _ = fmt.Fprintln(ctx.Command.ErrOrStderr(), "Warning: the license state could not be saved")
	}

	if asJSON {
		return writeJSON(ctx.Out(), struct {
			IsLicensed  bool   `json:"is_licensed"`
			UseCount    uint32 `json:"use_count"`
			MaxFreeUses uint32 `json:"max_free_uses"`
			ShouldNag   bool   `json:"should_nag"`
		}{st.IsLicensed, st.UseCount, st.MaxFreeUses, nag})
	}

	out := ctx.Out()
	switch {
	case st.IsLicensed:
		_, _ = fmt.Fprintln(out, "Licensed")
	default:
		_, _ = fmt.Fprintf(out, "Used %d of %d free uses\n", st.UseCount, st.MaxFreeUses)
	}
	if nag {
		_, _ = fmt.Fprintln(out, "The free trial is over. Activate a license with: ringlite activate <key>")
	}
	return nil
}
