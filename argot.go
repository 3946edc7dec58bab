// Package argot is a minimalist argument-parsing library for building
// command-line interfaces.
//
// An ArgParser is constructed empty, has options and commands registered on
// it, and then walks a raw argument vector in a single pass, classifying each
// token as an option, an option value, a command, or a positional argument.
// Parsing never terminates the process: user-input failures surface as typed
// errors from ParseArgs, and the MustParse helpers restore the traditional
// print-and-exit behaviour at the rim for applications that want it.
package argot

// Version is the library version number.
const Version = "1.0.0"
