// A simple application demonstrating the argot library in action. Run it
// with assorted option, command, and positional arguments and it dumps the
// parsed result. Set ARGOT_TRACE=1 to watch the classification loop work.
package main

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/charmbracelet/log"

	argot "github.com/nightconcept/argot-go"
)

var version = semver.MustParse("1.0.0")

const helptext = `Usage: argot-demo [FLAGS] [OPTIONS] [ARGUMENTS]

Demonstrates the argot argument-parsing library.

Flags:
  -b, --bool                A boolean flag.
  --help                    Print this help text and exit.
  --version                 Print the version number and exit.

Options:
  -f, --float <value>       A float option.
  -i, --int <value>         An integer option.
  -s, --string <value>      A string option.
  -t, --tag <values>        A greedy string list option.

Commands:
  boo                       A command with options of its own. Run
                            'argot-demo help boo' for details.`

const booHelptext = `Usage: argot-demo boo [FLAGS] [OPTIONS] [ARGUMENTS]

Demonstrates command registration and dispatch.

Flags:
  -b, --bool                A boolean flag.
  --help                    Print this help text and exit.

Options:
  -s, --string <value>      A string option.`

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "argot-demo"})

	parser := argot.NewParser(helptext, "v"+version.String())
	parser.AddFlag("bool b")
	parser.AddStr("string s", "default")
	parser.AddInt("int i", 0)
	parser.AddFloat("float f", 0.0)
	parser.AddStrList("tag t", true)

	booParser := parser.AddCmd("boo", func(cmdParser *argot.ArgParser) {
		logger.Info("boo command found",
			"bool", cmdParser.GetFlag("bool"),
			"string", cmdParser.GetStr("string"),
			"args", cmdParser.GetArgs())
	}, booHelptext)
	booParser.AddFlag("bool b")
	booParser.AddStr("string s", "default")

	if os.Getenv("ARGOT_TRACE") != "" {
		logger.SetLevel(log.DebugLevel)
		parser.SetTraceLogger(logger)
	}

	parser.MustParse()
	fmt.Println(parser)
}
