package cmd

import (
	"errors"
	"fmt"

	"github.com/ringlite/ringlite/internal/cmn/fileutil"
	"github.com/spf13/cobra"
)

var (
	errKeyRequired  = errors.New("a license key is required: pass it as an argument or with --key-file")
	errKeyAmbiguous = errors.New("pass the license key either as an argument or with --key-file, not both")
)

func Activate() *cobra.Command {
	return NewCommand(
		&cobra.Command{
			Use:   "activate [flags] [<license key>]",
			Short: "Activate a license key",
			Long: `Verify a license key and, if it is valid, mark this installation as
licensed. An invalid key leaves the current state untouched.

Example:
  ringlite activate eyJwYXlsb2FkIjoi...
  ringlite activate --key-file ~/Downloads/ringlite.key
`,
			Args: cobra.MaximumNArgs(1),
		}, activateFlags, runActivate,
	)
}

var activateFlags = []commandLineFlag{keyFileFlag}

func runActivate(ctx *Context, args []string) error {
	key, err := licenseKeyInput(ctx, args)
	if err != nil {
		return err
	}

	email, err := ctx.Entitlements.Activate(ctx, key)
	if err != nil {
		return fmt.Errorf("activation failed: %w", err)
	}

	if ctx.PersistenceDegraded() {
		_, _ = fmt.Fprintln(ctx.Command.ErrOrStderr(), "Warning: the license state could not be saved")
	}
	_, err = fmt.Fprintf(ctx.Out(), "License activated for %s\n", email)
	return err
}

// licenseKeyInput returns the key given as the single argument or read from
// the --key-file flag.
func licenseKeyInput(ctx *Context, args []string) (string, error) {
	keyFile, err := ctx.StringParam("key-file")
	if err != nil {
		return "", err
	}

	switch {
	case len(args) == 1 && keyFile != "":
		return "", errKeyAmbiguous
	case len(args) == 1:
		return args[0], nil
	case keyFile != "":
		path, err := fileutil.ResolvePath(keyFile)
		if err != nil {
			return "", err
		}
		return fileutil.ReadTrimmed(path)
	default:
		return "", errKeyRequired
	}
}
