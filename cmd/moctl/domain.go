package main

import (
	"os"

	"github.com/MoeraOrg/moera-tools/cmds"
	"github.com/MoeraOrg/moera-tools/cmds/domain"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	"github.com/spf13/cobra"
)

// domainCmd represents the domain subcommand
var domainCmd = &cobra.Command{
	Use:     "domain",
	Aliases: []string{"dom"},
	Short:   "Parent command for managing domains",
	Run: func(cmd *cobra.Command, _ []string) {
		cmds.SubCmdNeeded(cmd)
	},
}

var domainListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all domains",
	RunE: func(_ *cobra.Command, _ []string) (err error) {
		defer err2.Handle(&err)

		c := domain.ListCmd{Cmd: try.To1(domainBase())}
		try.To(c.Validate())
		if !rootFlags.dryRun {
			try.To1(c.Exec(os.Stdout))
		}
		return nil
	},
}

var domainGetCmd = &cobra.Command{
	Use:   "get [<domain>]",
	Short: "Show domain info",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) (err error) {
		defer err2.Handle(&err)

		c := domain.GetCmd{Cmd: try.To1(domainBase())}
		if len(args) > 0 {
			c.Domain = args[0]
		}
		try.To(c.Validate())
		if !rootFlags.dryRun {
			try.To1(c.Exec(os.Stdout))
		}
		return nil
	},
}

var domainCreateCmd = &cobra.Command{
	Use:   "create <domain>",
	Short: "Create a domain",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) (err error) {
		defer err2.Handle(&err)

		c := domain.CreateCmd{Cmd: try.To1(domainBase()), Domain: args[0]}
		try.To(c.Validate())
		if !rootFlags.dryRun {
			try.To1(c.Exec(os.Stdout))
		}
		return nil
	},
}

var domainDeleteCmd = &cobra.Command{
	Use:   "delete <domain>",
	Short: "Delete a domain",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) (err error) {
		defer err2.Handle(&err)

		c := domain.DeleteCmd{Cmd: try.To1(domainBase()), Domain: args[0]}
		try.To(c.Validate())
		if !rootFlags.dryRun {
			try.To1(c.Exec(os.Stdout))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(domainCmd)
	domainCmd.AddCommand(domainListCmd)
	domainCmd.AddCommand(domainGetCmd)
	domainCmd.AddCommand(domainCreateCmd)
	domainCmd.AddCommand(domainDeleteCmd)
}
