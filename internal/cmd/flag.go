package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

type commandLineFlag struct {
	name, shorthand, defaultValue, usage string
	required                             bool
	isBool                               bool
}

var (
	configFlag = commandLineFlag{
		name:      "config",
		shorthand: "c",
		usage:     "config file (default is $XDG_CONFIG_HOME/ringlite/config.yaml)",
	}
	dataDirFlag = commandLineFlag{
		name:  "data-dir",
		usage: "directory holding the license state (default is $XDG_DATA_HOME/RingLite)",
	}
	quietFlag = commandLineFlag{
		name:      "quiet",
		shorthand: "q",
		usage:     "suppress log output",
		isBool:    true,
	}
	jsonFlag = commandLineFlag{
		name:   "json",
		usage:  "print the result as JSON",
		isBool: true,
	}
	keyFileFlag = commandLineFlag{
		name:  "key-file",
		usage: "read the license key from a file",
	}
	outDirFlag = commandLineFlag{
		name:      "out",
		shorthand: "o",
		usage:     "directory to write license.pem and license.pub to",
		required:  true,
	}
	forceFlag = commandLineFlag{
		name:   "force",
		usage:  "overwrite existing key files",
		isBool: true,
	}
	privateKeyFlag = commandLineFlag{
		name:     "private-key",
		usage:    "PEM file holding the Ed25519 signing key",
		required: true,
	}
	emailFlag = commandLineFlag{
		name:      "email",
		shorthand: "e",
		usage:     "email address the license is issued to",
		required:  true,
	}
)

// commonFlags are registered on every command.
var commonFlags = []commandLineFlag{configFlag, dataDirFlag, quietFlag}

func initFlags(cmd *cobra.Command, addFlags ...commandLineFlag) {
	flags := append(append([]commandLineFlag{}, commonFlags...), addFlags...)
	for _, flag := range flags {
		if flag.isBool {
			cmd.Flags().BoolP(flag.name, flag.shorthand, flag.defaultValue == "true", flag.usage)
		} else {
			cmd.Flags().StringP(flag.name, flag.shorthand, flag.defaultValue, flag.usage)
		}
		if flag.required {
			if err := cmd.MarkFlagRequired(flag.name); err != nil {
				fmt.Printf("failed to mark flag %s as required: %v\n", flag.name, err)
			}
		}
	}
}
