package cmds

import (
	"fmt"
	"log"
	"os"

	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// HandleViperFlags fills command flags from viper-bound environment
// variables, walking up the command tree.
func HandleViperFlags(cmd *cobra.Command) {
	setRequiredStringFlags(cmd)
	if cmd.HasParent() {
		HandleViperFlags(cmd.Parent())
	}
}

func setRequiredStringFlags(cmd *cobra.Command) {
	defer err2.Catch(err2.Err(func(err error) {
		log.Println(err)
	}))

	try.To(viper.BindPFlags(cmd.LocalFlags()))
	if cmd.PreRunE != nil {
		try.To(cmd.PreRunE(cmd, nil))
	}
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if viper.GetString(f.Name) != "" {
			try.To(cmd.LocalFlags().Set(f.Name, viper.GetString(f.Name)))
		}
	})
}

// SubCmdNeeded prints the help and error messages because the cmd is
// abstract.
func SubCmdNeeded(cmd *cobra.Command) {
	fmt.Println("Subcommand needed!")
	_ = cmd.Help()
	os.Exit(1)
}
