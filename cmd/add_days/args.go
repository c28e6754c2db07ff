package main

import (
	"regexp"
	"strings"
)

var negativeInt = regexp.MustCompile(`^-[0-9]+$`)

// flags that consume the following argument as their value
var valueFlags = map[string]bool{
	"--config":   true,
	"--on-error": true,
}

// normalizeArgs moves positional arguments behind a "--" terminator so a
// negative offset such as "-10" is not parsed as a bundle of shorthand
// flags. Flag order is preserved. The result is never nil, since cobra
// falls back to os.Args for nil args.
func normalizeArgs(args []string) []string {
	flags := make([]string, 0, len(args)+1)
	var positional []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case negativeInt.MatchString(a):
			positional = append(positional, a)
		case valueFlags[a] && i+1 < len(args):
			flags = append(flags, a, args[i+1])
			i++
		case strings.HasPrefix(a, "-") && a != "-":
			flags = append(flags, a)
		default:
			positional = append(positional, a)
		}
	}
	if len(positional) == 0 {
		return flags
	}
	return append(append(flags, "--"), positional...)
}
