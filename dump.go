package argot

import (
	"fmt"
	"sort"
	"strings"
)

// String lists the parser's options, positional arguments, and matched
// command for debugging.
func (p *ArgParser) String() string {
	lines := make([]string, 0, len(p.options)+len(p.arguments)+8)

	lines = append(lines, "Options:")
	if len(p.options) > 0 {
		names := make([]string, 0, len(p.options))
		for name := range p.options {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			opt := p.options[name]
			if opt.mono {
				lines = append(lines, fmt.Sprintf("  %s: %v", name, opt.values[0]))
			} else {
				lines = append(lines, fmt.Sprintf("  %s: %v", name, opt.values))
			}
		}
	} else {
		lines = append(lines, "  [none]")
	}

	lines = append(lines, "\nArguments:")
	if len(p.arguments) > 0 {
		for _, arg := range p.arguments {
			lines = append(lines, fmt.Sprintf("  %s", arg))
		}
	} else {
		lines = append(lines, "  [none]")
	}

	lines = append(lines, "\nCommand:")
	if p.HasCmd() {
		lines = append(lines, fmt.Sprintf("  %s", p.GetCmdName()))
	} else {
		lines = append(lines, "  [none]")
	}

	return strings.Join(lines, "\n")
}
