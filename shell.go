package argot

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
)

var errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()

// MustParseArgs parses a slice of string arguments and applies the
// traditional command-line contract at the process rim: a user-input error
// prints a one-line message to stderr and exits with a non-zero status,
// while help and version requests print their payload to stdout and exit
// successfully. Applications that need to inspect failures should call
// ParseArgs instead.
func (p *ArgParser) MustParseArgs(args []string) {
	err := p.ParseArgs(args)
	if err == nil {
		return
	}

	var help *HelpRequest
	if errors.As(err, &help) {
		fmt.Println(help.Text)
		os.Exit(0)
	}

	var version *VersionRequest
	if errors.As(err, &version) {
		fmt.Println(version.Version)
		os.Exit(0)
	}

	fmt.Fprintf(os.Stderr, "%s %s.\n", errorLabel("Error:"), err)
	os.Exit(1)
}

// MustParse is MustParseArgs applied to the application's own command line.
func (p *ArgParser) MustParse() {
	p.MustParseArgs(os.Args[1:])
}

// Help prints the parser's help text and exits.
func (p *ArgParser) Help() {
	fmt.Println(p.helptext)
	os.Exit(0)
}
