// Package flagx lets several loaders share os.Args without tripping over
// each other's flags.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// flagName strips one or two leading dashes and any "=value" suffix.
func flagName(arg string) string {
	name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	if i := strings.IndexByte(name, '='); i >= 0 {
		name = name[:i]
	}
	return name
}

func nameSet(flags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(flags))
	for _, f := range flags {
		set[flagName(f)] = struct{}{}
	}
	return set
}

// FilterArgs returns the subset of args that belongs to the flags listed in
// valueFlags and boolFlags, preserving order.
//
// Flags may be written with one or two dashes, and names in the allow lists
// may be given with or without dashes ("-c", "config").
//
// Supported forms:
//
//	-c conf.json        value flag, value in the next argument
//	--config=conf.json  value flag, inline value
//	-debug              bool flag, never consumes the next argument
//	-debug=false        bool flag, inline value
//
// A value flag followed by an argument starting with "-" is kept on its own;
// flag.Parse will then report the missing value.
func FilterArgs(args []string, valueFlags []string, boolFlags ...string) []string {
	values := nameSet(valueFlags)
	bools := nameSet(boolFlags)

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name := flagName(arg)
		_, isValue := values[name]
		_, isBool := bools[name]
		if !isValue && !isBool {
			continue
		}

		filtered = append(filtered, arg)

		if isBool || strings.Contains(arg, "=") {
			continue
		}

		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// JsonConfigFlags returns the config file path given via -c or -config,
// or an empty string when neither is present. The last occurrence wins.
func JsonConfigFlags() string {
	var config string

	args := FilterArgs(os.Args[1:], []string{"c", "config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return config
}
