// Package cli holds small helpers shared by the command entry points.
package cli

import "strings"

// SplitPositional pulls a leading positional argument off args, so commands
// accept both "cmd INPUT -flag value" and "cmd -flag value INPUT". The
// returned remainder is handed to flag parsing; when the leading argument is
// a flag, the positional is expected among the parsed leftovers instead.
func SplitPositional(args []string) (string, []string) {
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		return args[0], args[1:]
	}
	return "", args
}
