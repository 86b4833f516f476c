package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func Nag() *cobra.Command {
	return NewCommand(
		&cobra.Command{
			Use:   "nag",
			Short: "Print whether the activation reminder is due",
			Long: `Print "true" when the installation is unlicensed and the free quota
is used up, "false" otherwise.
`,
			Args: cobra.NoArgs,
		}, nil, runNag,
	)
}

func runNag(ctx *Context, _ []string) error {
	_, err := fmt.Fprintln(ctx.Out(), ctx.Entitlements.ShouldNag(ctx))
	return err
}
