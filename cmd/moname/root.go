package main

import (
	"log"
	"os"
	"strings"

	"github.com/MoeraOrg/moera-tools/cmds"
	namecmd "github.com/MoeraOrg/moera-tools/cmds/name"
	"github.com/MoeraOrg/moera-tools/config"
	"github.com/MoeraOrg/moera-tools/naming"
	"github.com/MoeraOrg/moera-tools/utils"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	"github.com/spf13/cobra"
)

const envPrefix = "MONAME"

type rootFlagValues struct {
	cfgFile string
	logging string
	dryRun  bool
	dev     bool
}

var (
	rootFlags  = rootFlagValues{}
	resolveCmd = namecmd.ResolveCmd{}
)

var rootEnvs = map[string]string{
	"config":  "CONFIG",
	"logging": "LOGGING",
	"server":  "SERVER",
}

// rootCmd is the whole moname tool: one positional argument, the name to
// resolve.
var rootCmd = &cobra.Command{
	Use:     "moname <name>",
	Short:   "Query Moera naming service",
	Long: `
Query Moera naming service. Prints the node URI the name is bound to, in the
form "name_generation<TAB>nodeUri". Use a _N suffix to query the record at a
past generation.
	`,
	Version:       utils.Version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cmds.ParseLoggingArgs(rootFlags.logging)
		cmds.HandleViperFlags(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer err2.Handle(&err)

		cfg := try.To1(config.Load(rootFlags.cfgFile))
		if resolveCmd.Server == "" {
			resolveCmd.Server = cfg.NamingServer
		}
		if rootFlags.dev {
			resolveCmd.Server = naming.DevServer
		}
		if len(args) > 0 {
			resolveCmd.Name = strings.TrimSpace(args[0])
		} else if !resolveCmd.List {
			return cmds.ErrInvalid
		}

		try.To(resolveCmd.Validate())
		if !rootFlags.dryRun {
			try.To1(resolveCmd.Exec(os.Stdout))
		}
		return nil
	},
}

func init() {
	defer err2.Catch(err2.Err(func(err error) {
		log.Println(err)
	}))

	flags := rootCmd.Flags()
	flags.StringVar(&rootFlags.cfgFile, "config", "",
		cmds.FlagInfo(envPrefix, "configuration file", "", rootEnvs["config"]))
	flags.StringVar(&rootFlags.logging, "logging", "-logtostderr=true -v=0",
		cmds.FlagInfo(envPrefix, "logging startup arguments", "", rootEnvs["logging"]))
	flags.BoolVarP(&rootFlags.dryRun, "dry-run", "n", false,
		"perform a trial run with no network calls made")
	flags.StringVar(&resolveCmd.Server, "server", "",
		cmds.FlagInfo(envPrefix, "naming server URL", "", rootEnvs["server"]))
	flags.BoolVar(&rootFlags.dev, "dev", false, "use the development naming server")
	flags.BoolVarP(&resolveCmd.Similar, "similar", "s", false, "look for a similar name")
	flags.BoolVarP(&resolveCmd.List, "list", "l", false, "list all registered names")
	flags.Int64Var(&resolveCmd.At, "at", 0, "Unix time the listing refers to, 0 is now")
	flags.IntVar(&resolveCmd.Page, "page", 0, "page of the listing")
	flags.IntVar(&resolveCmd.Size, "size", 100, "page size of the listing")

	try.To(cmds.BindEnvs(envPrefix, rootEnvs, ""))
}
