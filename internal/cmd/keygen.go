package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ringlite/ringlite/internal/cmn/fileutil"
	"github.com/ringlite/ringlite/internal/license"
	"github.com/spf13/cobra"
)

const (
	privateKeyFile = "license.pem"
	publicKeyFile  = "license.pub"
)

func Keygen() *cobra.Command {
	return NewCommand(
		&cobra.Command{
			Use:   "keygen [flags]",
			Short: "Generate a license signing key pair",
			Long: `Generate an Ed25519 key pair for issuing license keys. The private key
is written to license.pem (mode 0600) and the public key, in the form
compiled into the application, to license.pub.

Example:
  ringlite keygen --out ./keys
`,
			Args: cobra.NoArgs,
		}, keygenFlags, runKeygen,
	)
}

var keygenFlags = []commandLineFlag{outDirFlag, forceFlag}

func runKeygen(ctx *Context, _ []string) error {
	outDir, err := ctx.StringParam("out")
	if err != nil {
		return err
	}
	force, err := ctx.BoolParam("force")
	if err != nil {
		return err
	}
	if outDir, err = fileutil.ResolvePath(outDir); err != nil {
		return err
	}

	privPath := filepath.Join(outDir, privateKeyFile)
	pubPath := filepath.Join(outDir, publicKeyFile)
	if !force {
		for _, p := range []string{privPath, pubPath} {
			if fileutil.FileExists(p) {
				return fmt.Errorf("%s already exists (use --force to overwrite)", p)
			}
		}
	}

	pub, priv, err := license.GenerateKeyPair()
	if err != nil {
		return err
	}
	privPEM, err := license.MarshalPrivateKeyPEM(priv)
	if err != nil {
		return err
	}
	pubPEM, err := license.MarshalPublicKeyPEM(pub)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0700); err != nil {
		return fmt.Errorf("failed to create %s: %w", outDir, err)
	}
	if err := os.WriteFile(privPath, privPEM, 0600); err != nil {
		return fmt.Errorf("failed to write private key: %w", err)
	}
	if err := os.WriteFile(pubPath, pubPEM, 0644); err != nil { //nolint:gosec // public key
		return fmt.Errorf("failed to write public key: %w", err)
	}

	_, err = fmt.Fprintf(ctx.Out(), "Private key: %s\nPublic key:  %s\n", privPath, pubPath)
	return err
}
