package main

import (
	"log"
	"os"
	"strings"

	"github.com/MoeraOrg/moera-tools/cmds"
	namecmd "github.com/MoeraOrg/moera-tools/cmds/name"
	"github.com/MoeraOrg/moera-tools/completionhelp"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	"github.com/spf13/cobra"
)

// nameCmd represents the name subcommand
var nameCmd = &cobra.Command{
	Use:   "name",
	Short: "Parent command for managing name records",
	Run: func(cmd *cobra.Command, _ []string) {
		cmds.SubCmdNeeded(cmd)
	},
}

type nameFlagValues struct {
	server    string
	keys      string
	nodeURI   string
	newKeys   string
	validFrom int64
}

var nameFlags = nameFlagValues{}

var nameEnvs = map[string]string{
	"server":   "SERVER",
	"keys":     "KEYS",
	"node-uri": "NODE_URI",
}

var nameUpdateCmd = &cobra.Command{
	Use:   "update <name>",
	Short: "Rebind a registered name to a new node URI",
	Long: `
Rebind a registered name to a new node URI. The update is protected by
optimistic concurrency: when another administrator updates the record
concurrently, the command fails with a conflict. Re-run moname, check the
record and decide again; the tool never retries by itself.

Example
	moctl name update alice \
		--node-uri https://node2.example \
		--keys ~/.moera-keys.json
	`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return cmds.BindEnvs(envPrefix, nameEnvs, "NAME")
	},
	RunE: func(_ *cobra.Command, args []string) (err error) {
		defer err2.Handle(&err)

		c := namecmd.UpdateCmd{
			Server:   namingServer(nameFlags.server),
			Name:     strings.TrimSpace(args[0]),
			NodeURI:  nameFlags.nodeURI,
			KeysFile: keysFile(nameFlags.keys),
		}
		try.To(c.Validate())
		if !rootFlags.dryRun {
			try.To1(c.Exec(os.Stdout))
		}
		return nil
	},
}

var nameRotateCmd = &cobra.Command{
	Use:   "rotate <name>",
	Short: "Rotate the signing key of a name record",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return cmds.BindEnvs(envPrefix, nameEnvs, "NAME")
	},
	RunE: func(_ *cobra.Command, args []string) (err error) {
		defer err2.Handle(&err)

		c := namecmd.RotateCmd{
			Server:      namingServer(nameFlags.server),
			Name:        strings.TrimSpace(args[0]),
			KeysFile:    keysFile(nameFlags.keys),
			NewKeysFile: nameFlags.newKeys,
			ValidFrom:   nameFlags.validFrom,
		}
		try.To(c.Validate())
		if !rootFlags.dryRun {
			try.To1(c.Exec(os.Stdout))
		}
		return nil
	},
}

func init() {
	defer err2.Catch(err2.Err(func(err error) {
		log.Println(err)
	}))

	flags := nameCmd.PersistentFlags()
	flags.StringVar(&nameFlags.server, "server", "",
		cmds.FlagInfo(envPrefix, "naming server URL", nameCmd.Name(), nameEnvs["server"]))
	flags.StringVar(&nameFlags.keys, "keys", "",
		cmds.FlagInfo(envPrefix, "updating keys file", nameCmd.Name(), nameEnvs["keys"]))

	nameUpdateCmd.Flags().StringVar(&nameFlags.nodeURI, "node-uri", "",
		cmds.FlagInfo(envPrefix, "new node URI of the name", nameCmd.Name(), nameEnvs["node-uri"]))
	nameRotateCmd.Flags().StringVar(&nameFlags.newKeys, "new-keys", "",
		"file the new signing keys are written to")
	nameRotateCmd.Flags().Int64Var(&nameFlags.validFrom, "valid-from", 0,
		"Unix time the new signing key becomes effective, 0 is now")

	try.To(nameCmd.RegisterFlagCompletionFunc("keys",
		func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return completionhelp.KeysFileLocations(), cobra.ShellCompDirectiveDefault
		}))

	rootCmd.AddCommand(nameCmd)
	nameCmd.AddCommand(nameUpdateCmd)
	nameCmd.AddCommand(nameRotateCmd)
}
