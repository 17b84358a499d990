// Package completionhelp offers value suggestions for shell completion of
// command line flags.
package completionhelp

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// KeysFileLocations returns existing keyset files in the places the tools
// store them by default.
func KeysFileLocations() []string {
	defer err2.Catch(err2.Err(func(err error) {
		_, _ = fmt.Fprintln(os.Stderr, err)
	}))

	home := try.To1(os.UserHomeDir())
	pattern := filepath.Join(home, ".moera", "*-keys.json")

	matches, _ := filepath.Glob(pattern)
	return matches
}
