package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/ringlite/ringlite/internal/cmn/fileutil"
	"github.com/ringlite/ringlite/internal/license"
	"github.com/spf13/cobra"
)

func Issue() *cobra.Command {
	return NewCommand(
		&cobra.Command{
			Use:   "issue [flags]",
			Short: "Sign a license key for a customer",
			Long: `Create a license key for the given email address, signed with the
private key produced by "ringlite keygen".

Example:
  ringlite issue --private-key ./keys/license.pem --email user@example.com
`,
			Args: cobra.NoArgs,
		}, issueFlags, runIssue,
	)
}

var issueFlags = []commandLineFlag{privateKeyFlag, emailFlag}

func runIssue(ctx *Context, _ []string) error {
	keyPath, err := ctx.StringParam("private-key")
	if err != nil {
		return err
	}
	email, err := ctx.StringParam("email")
	if err != nil {
		return err
	}
	if keyPath, err = fileutil.ResolvePath(keyPath); err != nil {
		return err
	}

	data, err := os.ReadFile(keyPath) //nolint:gosec // path comes from the command line
	if err != nil {
		return fmt.Errorf("failed to read private key: %w", err)
	}
	priv, err := license.ParsePrivateKeyPEM(data)
	if err != nil {
		return err
	}
	issuer, err := license.NewIssuer(priv, license.Product)
	if err != nil {
		return err
	}

	key, err := issuer.Issue(email, time.Now())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.Out(), key)
	return err
}
