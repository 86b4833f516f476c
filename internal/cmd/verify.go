package cmd

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func Verify() *cobra.Command {
	return NewCommand(
		&cobra.Command{
			Use:   "verify [flags] [<license key>]",
			Short: "Check a license key without activating it",
			Long: `Validate a license key against the built-in public key and print its
claims. The license state of this installation is not read or changed.

Example:
  ringlite verify eyJwYXlsb2FkIjoi...
  ringlite verify --key-file ringlite.key --json
`,
			Args: cobra.MaximumNArgs(1),
		}, verifyFlags, runVerify,
	)
}

var verifyFlags = []commandLineFlag{keyFileFlag, jsonFlag}

func runVerify(ctx *Context, args []string) error {
	asJSON, err := ctx.BoolParam("json")
	if err != nil {
		return err
	}
	key, err := licenseKeyInput(ctx, args)
	if err != nil {
		return err
	}

	claims, err := ctx.Verifier.VerifyClaims(key)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	if asJSON {
		return writeJSON(ctx.Out(), claims)
	}

	t := newTable(ctx.Out())
	t.AppendRows([]table.Row{
		{"Email", claims.Email},
		{"Product", claims.Product},
		{"Issued", claims.IssuedAt().UTC().Format(time.RFC3339)},
	})
	t.Render()
	return nil
}
