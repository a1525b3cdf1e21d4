package main

import "strings"

// legacyFlags are the long options older invocations spell with a single
// dash, as in "plotlab -term pgm -mag 2 -inv".
var legacyFlags = map[string]bool{
	"term": true, "mag": true, "inv": true, "width": true, "height": true,
	"levels": true, "out": true, "config": true, "preset": true, "param": true,
	"flush": true, "verbose": true, "theme": true, "data": true,
}

// legacyArgs rewrites single-dash long options to their double-dash form.
// An invocation that starts with an option and names no command runs the
// default demo, so "plotlab -term pgm" keeps working.
func legacyArgs(args []string) []string {
	out := make([]string, 0, len(args)+1)
	for i, a := range args {
		if a == "--" {
			out = append(out, args[i:]...)
			break
		}
		if len(a) > 2 && a[0] == '-' && a[1] != '-' {
			name, _, _ := strings.Cut(a[1:], "=")
			if legacyFlags[name] {
				a = "-" + a
			}
		}
		out = append(out, a)
	}

	if len(out) > 0 && strings.HasPrefix(out[0], "--") && out[0] != "--help" && out[0] != "--" {
		name, _, _ := strings.Cut(out[0][2:], "=")
		if legacyFlags[name] && name != "data" && name != "verbose" && name != "theme" {
			out = append([]string{"run"}, out...)
		}
	}
	return out
}
