package argot

import (
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// Callback is the function type invoked when a registered command is found.
// It receives the command's own parser instance, fully populated.
type Callback func(*ArgParser)

// ArgParser is the workhorse of the library. An ArgParser instance is
// responsible for registering options and parsing the input array of raw
// arguments. Note that every registered command recursively receives an
// ArgParser instance of its own. In theory commands can be stacked to any
// depth, although in practice even two levels is confusing for users and
// best avoided.
type ArgParser struct {

	// Help text for the application or command. Supplying help text
	// activates the automatic --help option.
	helptext string

	// Application version string. Supplying a version activates the
	// automatic --version option.
	version string

	// Option instances indexed by name and single-character alias. Aliases
	// of one declaration all point at the same instance.
	options map[string]*option

	// Command sub-parser instances indexed by command name.
	commands map[string]*ArgParser

	// Command callbacks indexed by command name.
	callbacks map[string]Callback

	// Positional arguments parsed from the input stream.
	arguments []string

	// Command name and sub-parser, if a command was found while parsing.
	cmdName   string
	cmdParser *ArgParser

	// When true, re-registering an existing alias panics instead of
	// silently overwriting the previous binding.
	strict bool

	// Optional classification trace, nil by default.
	tracer *log.Logger
}

// NewParser initializes a new ArgParser instance. Supplying help text
// activates the automatic --help option; supplying a version string
// activates the automatic --version option. Either may be empty.
func NewParser(helptext string, version string) *ArgParser {
	return &ArgParser{
		helptext:  strings.TrimSpace(helptext),
		version:   strings.TrimSpace(version),
		options:   make(map[string]*option),
		commands:  make(map[string]*ArgParser),
		callbacks: make(map[string]Callback),
	}
}

// StrictRegistration controls what happens when a declaration reuses an
// already-bound alias: silent last-wins overwrite (the default) or a panic
// identifying the clash as a library contract violation.
func (p *ArgParser) StrictRegistration(strict bool) {
	p.strict = strict
}

// SetTraceLogger attaches a logger that receives one debug record per token
// describing how the classification loop handled it. Pass nil to disable.
func (p *ArgParser) SetTraceLogger(logger *log.Logger) {
	p.tracer = logger
}

func (p *ArgParser) trace(msg string, keyvals ...any) {
	if p.tracer != nil {
		p.tracer.Debug(msg, keyvals...)
	}
}

// bind registers an option instance under every whitespace-separated alias
// in name.
func (p *ArgParser) bind(name string, opt *option) {
	for _, alias := range strings.Fields(name) {
		if p.strict {
			if _, exists := p.options[alias]; exists {
				apiPanic("alias '%s' is already registered", alias)
			}
		}
		p.options[alias] = opt
	}
}

func (p *ArgParser) addMono(kind Kind, name string, def any) {
	p.bind(name, &option{kind: kind, mono: true, values: []any{def}})
}

func (p *ArgParser) addPoly(kind Kind, name string, greedy bool) {
	p.bind(name, &option{kind: kind, greedy: greedy})
}

// AddFlag registers a boolean option, defaulting to false. The name argument
// may contain multiple whitespace-separated aliases, e.g. "verbose v".
func (p *ArgParser) AddFlag(name string) {
	p.addMono(Bool, name, false)
}

// AddStr registers a string option with a default value.
func (p *ArgParser) AddStr(name string, def string) {
	p.addMono(Str, name, def)
}

// AddInt registers an integer option with a default value.
func (p *ArgParser) AddInt(name string, def int) {
	p.addMono(Int, name, def)
}

// AddFloat registers a float option with a default value.
func (p *ArgParser) AddFloat(name string, def float64) {
	p.addMono(Float, name, def)
}

// AddFlagList registers a boolean list option. Each occurrence appends true.
func (p *ArgParser) AddFlagList(name string) {
	p.addPoly(Bool, name, false)
}

// AddStrList registers a string list option. A greedy list option consumes
// every value-shaped token that follows a single occurrence, not just one.
func (p *ArgParser) AddStrList(name string, greedy bool) {
	p.addPoly(Str, name, greedy)
}

// AddIntList registers an integer list option.
func (p *ArgParser) AddIntList(name string, greedy bool) {
	p.addPoly(Int, name, greedy)
}

// AddFloatList registers a float list option.
func (p *ArgParser) AddFloatList(name string, greedy bool) {
	p.addPoly(Float, name, greedy)
}

// AddCmd registers a command, its callback, and its help text. The name
// argument may contain multiple whitespace-separated aliases. The returned
// parser instance is used to register the command's own options.
func (p *ArgParser) AddCmd(name string, callback Callback, helptext string) *ArgParser {
	cmdParser := NewParser(helptext, "")
	for _, alias := range strings.Fields(name) {
		p.commands[alias] = cmdParser
		p.callbacks[alias] = callback
	}
	return cmdParser
}

// Parse parses the application's command line arguments. User-input failures
// are returned as a *ParseError; requests for help or version text are
// returned as *HelpRequest and *VersionRequest so the caller can print the
// payload and exit successfully.
func (p *ArgParser) Parse() error {
	return p.ParseArgs(os.Args[1:])
}

// ParseArgs parses a slice of string arguments.
func (p *ArgParser) ParseArgs(args []string) error {

	// Switch to turn off option parsing if we encounter a '--' argument.
	// Everything following the '--' is treated as a positional argument.
	parsing := true

	stream := newArgStream(args)

	for stream.hasNext() {
		arg := stream.next()

		// If option parsing has been turned off, simply add the argument to
		// the list of positionals.
		if !parsing {
			p.trace("positional (options off)", "token", arg)
			p.arguments = append(p.arguments, arg)
			continue
		}

		switch {

		// Turn off option parsing. The '--' token itself is discarded.
		case arg == "--":
			p.trace("option parsing off", "token", arg)
			parsing = false

		case strings.HasPrefix(arg, "--"):
			p.trace("long-form option", "token", arg)
			if err := p.parseLongForm(arg[2:], stream); err != nil {
				return err
			}

		case strings.HasPrefix(arg, "-"):
			// A single dash, or a dash followed by a digit, is a positional
			// argument: stdin markers and negative numbers are not options.
			if arg == "-" || dashDigit(arg) {
				p.trace("positional", "token", arg)
				p.arguments = append(p.arguments, arg)
			} else {
				p.trace("short-form option", "token", arg)
				if err := p.parseShortForm(arg[1:], stream); err != nil {
					return err
				}
			}

		default:
			// A registered command takes the entire remainder of the stream.
			// The command's callback only runs if the nested parse succeeds.
			if cmdParser, found := p.commands[arg]; found {
				p.trace("command", "token", arg)
				if err := cmdParser.ParseArgs(stream.remainder()); err != nil {
					return err
				}
				p.callbacks[arg](cmdParser)
				p.cmdName = arg
				p.cmdParser = cmdParser
				return nil
			}

			// The automatic 'help' command:
			//     $ app help cmd
			// is equivalent to:
			//     $ app cmd --help
			if arg == "help" && len(p.commands) > 0 {
				p.trace("help command", "token", arg)
				return p.parseHelpCommand(stream)
			}

			p.trace("positional", "token", arg)
			p.arguments = append(p.arguments, arg)
		}
	}
	return nil
}

// parseHelpCommand handles the automatic 'help <command>' command.
func (p *ArgParser) parseHelpCommand(stream *argStream) error {
	if !stream.hasNext() {
		return parseErrorf(ErrMissingHelpTarget, "the help command requires an argument")
	}
	name := stream.next()
	cmdParser, found := p.commands[name]
	if !found {
		return parseErrorf(ErrUnknownCommand, "'%s' is not a recognised command", name)
	}
	return &HelpRequest{Text: cmdParser.helptext}
}

// parseLongForm handles a long-form option, i.e. an argument beginning with
// a double dash. The leading dashes have already been stripped.
func (p *ArgParser) parseLongForm(arg string, stream *argStream) error {

	// Do we have an option of the form --name=value?
	if strings.Contains(arg, "=") {
		return p.parseNameEqualsValue("--", arg)
	}

	// Is the argument a registered option name?
	if opt, found := p.options[arg]; found {
		return p.parseNamedOption("--", arg, opt, stream)
	}

	// Is the argument the automatic --help option?
	if arg == "help" && p.helptext != "" {
		return &HelpRequest{Text: p.helptext}
	}

	// Is the argument the automatic --version option?
	if arg == "version" && p.version != "" {
		return &VersionRequest{Version: p.version}
	}

	return parseErrorf(ErrUnknownOption, "--%s is not a recognised option", arg)
}

// parseShortForm handles a short-form option, i.e. an argument beginning
// with a single dash. The dash has already been stripped. Each character is
// handled individually to support condensed options:
//
//	-abc foo bar
//
// is equivalent to:
//
//	-a foo -b bar -c
func (p *ArgParser) parseShortForm(arg string, stream *argStream) error {

	// Do we have an option of the form -n=value?
	if strings.Contains(arg, "=") {
		return p.parseNameEqualsValue("-", arg)
	}

	for _, char := range arg {
		alias := string(char)
		opt, found := p.options[alias]
		if !found {
			return parseErrorf(ErrUnknownOption, "-%s is not a recognised option", alias)
		}
		if err := p.parseNamedOption("-", alias, opt, stream); err != nil {
			return err
		}
	}
	return nil
}

// parseNamedOption applies a single occurrence of a registered option:
// boolean options are set by presence, all other kinds claim the next
// value-shaped token from the stream, and greedy list options keep claiming
// tokens until the next one no longer looks like a value.
func (p *ArgParser) parseNamedOption(prefix string, name string, opt *option, stream *argStream) error {

	// A mono-valued option can only be set once.
	if opt.mono && opt.found {
		return parseErrorf(ErrDuplicateOption, "option %s%s can be set only once", prefix, name)
	}
	opt.found = true

	if opt.kind == Bool {
		opt.set(true)
		return nil
	}

	if !stream.hasNext() || !looksLikeValue(stream.peek()) {
		return parseErrorf(ErrMissingArgument, "missing argument for the %s%s option", prefix, name)
	}

	value, err := coerce(opt.kind, stream.next())
	if err != nil {
		return err
	}
	opt.set(value)

	if opt.greedy {
		for stream.hasNext() && looksLikeValue(stream.peek()) {
			value, err := coerce(opt.kind, stream.next())
			if err != nil {
				return err
			}
			opt.set(value)
		}
	}
	return nil
}

// parseNameEqualsValue handles an option of the form --name=value or
// -n=value. The prefix is used only in error messages.
func (p *ArgParser) parseNameEqualsValue(prefix string, arg string) error {
	name, value, _ := strings.Cut(arg, "=")

	opt, found := p.options[name]
	if !found {
		return parseErrorf(ErrUnknownOption, "%s%s is not a recognised option", prefix, name)
	}

	if opt.mono && opt.found {
		return parseErrorf(ErrDuplicateOption, "option %s%s can be set only once", prefix, name)
	}
	opt.found = true

	if opt.kind == Bool {
		return parseErrorf(ErrTypeMismatch, "invalid format for boolean flag %s%s", prefix, name)
	}

	if value == "" {
		return parseErrorf(ErrEmptyValue, "missing argument for the %s%s option", prefix, name)
	}

	coerced, err := coerce(opt.kind, value)
	if err != nil {
		return err
	}
	opt.set(coerced)
	return nil
}

// looksLikeValue reports whether a token should be consumed as an option's
// value rather than treated as the start of another option. A bare dash and
// any dash-digit token (a negative number) count as values.
func looksLikeValue(token string) bool {
	if strings.HasPrefix(token, "-") {
		return token == "-" || dashDigit(token)
	}
	return true
}

// dashDigit reports whether a dash-prefixed token continues with a digit.
func dashDigit(token string) bool {
	r, _ := utf8.DecodeRuneInString(token[1:])
	return unicode.IsDigit(r)
}
