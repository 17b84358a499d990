package main

import (
	"errors"
	"log"

	"github.com/MoeraOrg/moera-tools/cmds"
	"github.com/MoeraOrg/moera-tools/cmds/domain"
	"github.com/MoeraOrg/moera-tools/config"
	"github.com/MoeraOrg/moera-tools/utils"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	"github.com/spf13/cobra"
)

const envPrefix = "MOCTL"

type rootFlagValues struct {
	cfgFile string
	logging string
	dryRun  bool
	host    string
	token   string
	secret  string
}

var (
	rootFlags = rootFlagValues{}

	// cfg is loaded once per invocation before any subcommand runs
	cfg = &config.Config{}
)

var rootEnvs = map[string]string{
	"config":      "CONFIG",
	"logging":     "LOGGING",
	"host":        "HOST",
	"token":       "TOKEN",
	"root-secret": "ROOT_SECRET",
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "moctl",
	Short:   "Moera server management",
	Long: `
Moera server management
	`,
	Version:      utils.Version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		defer err2.Handle(&err)

		cmds.ParseLoggingArgs(rootFlags.logging)
		cmds.HandleViperFlags(cmd)
		cfg = try.To1(config.Load(rootFlags.cfgFile))
		return nil
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmds.SubCmdNeeded(cmd)
	},
}

func hostURL() (string, error) {
	if rootFlags.host != "" {
		return rootFlags.host, nil
	}
	if cfg.Host != "" {
		return cfg.Host, nil
	}
	return "", errors.New("host is not set")
}

// domainBase merges flags and per-host configuration into the base of a
// domain command. Flags win over the configuration file.
func domainBase() (base domain.Cmd, err error) {
	host, err := hostURL()
	if err != nil {
		return domain.Cmd{}, err
	}
	token := rootFlags.token
	if token == "" {
		token = cfg.TokenFor(host)
	}
	secret := rootFlags.secret
	if secret == "" {
		secret = cfg.SecretFor(host)
	}
	return domain.Cmd{Host: host, Token: token, Secret: secret}, nil
}

func namingServer(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.NamingServer
}

func keysFile(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.Keys
}

func init() {
	defer err2.Catch(err2.Err(func(err error) {
		log.Println(err)
	}))

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootFlags.cfgFile, "config", "",
		cmds.FlagInfo(envPrefix, "configuration file", "", rootEnvs["config"]))
	flags.StringVar(&rootFlags.logging, "logging", "-logtostderr=true -v=0",
		cmds.FlagInfo(envPrefix, "logging startup arguments", "", rootEnvs["logging"]))
	flags.BoolVarP(&rootFlags.dryRun, "dry-run", "n", false,
		"perform a trial run with no changes made")
	flags.StringVarP(&rootFlags.host, "host", "H", "",
		cmds.FlagInfo(envPrefix, "host URL", "", rootEnvs["host"]))
	flags.StringVarP(&rootFlags.token, "token", "T", "",
		cmds.FlagInfo(envPrefix, "admin token", "", rootEnvs["token"]))
	flags.StringVarP(&rootFlags.secret, "root-secret", "S", "",
		cmds.FlagInfo(envPrefix, "root admin secret", "", rootEnvs["root-secret"]))

	try.To(cmds.BindEnvs(envPrefix, rootEnvs, ""))
}
