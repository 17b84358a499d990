// Package cmds implements the command objects behind the moname and moctl
// CLI tools. Commands validate their arguments without touching the network
// and perform at most one resolve and one update per execution.
package cmds

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lainio/err2/try"
	"github.com/spf13/viper"
)

var ErrInvalid = errors.New("invalid command, check arguments")

// Result is an optional machine-readable command outcome.
type Result interface {
	JSON() ([]byte, error)
}

// Command is a validatable and executable CLI command.
type Command interface {
	Validate() error
	Exec(w io.Writer) (r Result, err error)
}

// ValidateName checks that a node name is usable as a naming service key.
// Normalization (trimming, case) is the caller's job, so anything
// non-normalized is an error here, not something to fix up silently.
func ValidateName(name string) error {
	if name == "" {
		return errors.New("name cannot be empty")
	}
	if name != strings.TrimSpace(name) || strings.ContainsAny(name, " \t") {
		return errors.New("name is not normalized")
	}
	return nil
}

// Fprintln is fmt.Fprintln but it allows writer to be nil. Note! it throws an
// error.
func Fprintln(w io.Writer, a ...interface{}) {
	if w != nil {
		try.To1(fmt.Fprintln(w, a...))
	}
}

// Fprintf is fmt.Fprintf but it allows writer to be nil. Note! it throws an
// error.
func Fprintf(w io.Writer, format string, a ...interface{}) {
	if w != nil {
		try.To1(fmt.Fprintf(w, format, a...))
	}
}

// ParseLoggingArgs feeds glog startup arguments, given as one flag value, to
// the flag package.
func ParseLoggingArgs(s string) {
	args := make([]string, 1, 12)
	args[0] = os.Args[0]
	args = append(args, strings.Split(s, " ")...)
	orgArgs := os.Args
	os.Args = args
	flag.Parse()
	os.Args = orgArgs
}

// BindEnvs calls viper.BindEnv with envMap and cmdName which can be empty if
// flag is general.
func BindEnvs(envPrefix string, envMap map[string]string, cmdName string) error {
	for flagKey, envName := range envMap {
		if err := viper.BindEnv(flagKey, GetEnvName(envPrefix, cmdName, envName)); err != nil {
			return err
		}
	}
	return nil
}

// FlagInfo builds a flag usage string carrying the name of the overriding
// environment variable.
func FlagInfo(envPrefix, info, cmdPrefix, envName string) string {
	return info + ", " + GetEnvName(envPrefix, cmdPrefix, envName)
}

// GetEnvName builds the environment variable name of a flag.
func GetEnvName(envPrefix, cmdName, envName string) string {
	if cmdName == "" {
		return envPrefix + "_" + strings.ToUpper(envName)
	}
	return envPrefix + "_" + strings.ToUpper(cmdName) + "_" + envName
}
