package argot_test

import (
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	argot "github.com/nightconcept/argot-go"
)

// The scenarios in testdata/cases.toml describe a set of option
// declarations, an argument vector, and the expected parse outcome. Each one
// runs as its own subtest.

type scriptFile struct {
	Cases []scriptCase `toml:"case"`
}

type scriptCase struct {
	Name     string      `toml:"name"`
	Argv     []string    `toml:"argv"`
	Flags    []flagDecl  `toml:"flag"`
	Strs     []strDecl   `toml:"str"`
	Ints     []intDecl   `toml:"int"`
	Floats   []floatDecl `toml:"float"`
	StrLists []listDecl  `toml:"str_list"`
	IntLists []listDecl  `toml:"int_list"`
	Expect   expectation `toml:"expect"`
}

type flagDecl struct {
	Name string `toml:"name"`
}

type strDecl struct {
	Name    string `toml:"name"`
	Default string `toml:"default"`
}

type intDecl struct {
	Name    string `toml:"name"`
	Default int64  `toml:"default"`
}

type floatDecl struct {
	Name    string  `toml:"name"`
	Default float64 `toml:"default"`
}

type listDecl struct {
	Name   string `toml:"name"`
	Greedy bool   `toml:"greedy"`
}

type expectation struct {
	Error    string              `toml:"error"`
	Args     []string            `toml:"args"`
	Flags    map[string]bool     `toml:"flags"`
	Strs     map[string]string   `toml:"strs"`
	Ints     map[string]int64    `toml:"ints"`
	Floats   map[string]float64  `toml:"floats"`
	StrLists map[string][]string `toml:"str_lists"`
	IntLists map[string][]int64  `toml:"int_lists"`
}

var sentinelsByName = map[string]error{
	"unknown_option":          argot.ErrUnknownOption,
	"duplicate_option":        argot.ErrDuplicateOption,
	"missing_argument":        argot.ErrMissingArgument,
	"invalid_numeric_literal": argot.ErrInvalidNumericLiteral,
	"empty_value":             argot.ErrEmptyValue,
	"type_mismatch":           argot.ErrTypeMismatch,
	"unknown_command":         argot.ErrUnknownCommand,
	"missing_help_target":     argot.ErrMissingHelpTarget,
}

func buildParser(tc scriptCase) *argot.ArgParser {
	parser := argot.NewParser("", "")
	for _, decl := range tc.Flags {
		parser.AddFlag(decl.Name)
	}
	for _, decl := range tc.Strs {
		parser.AddStr(decl.Name, decl.Default)
	}
	for _, decl := range tc.Ints {
		parser.AddInt(decl.Name, int(decl.Default))
	}
	for _, decl := range tc.Floats {
		parser.AddFloat(decl.Name, decl.Default)
	}
	for _, decl := range tc.StrLists {
		parser.AddStrList(decl.Name, decl.Greedy)
	}
	for _, decl := range tc.IntLists {
		parser.AddIntList(decl.Name, decl.Greedy)
	}
	return parser
}

func TestScriptedScenarios(t *testing.T) {
	t.Parallel()

	var file scriptFile
	_, err := toml.DecodeFile(filepath.Join("testdata", "cases.toml"), &file)
	require.NoError(t, err, "loading scenario fixtures")
	require.NotEmpty(t, file.Cases)

	for _, tc := range file.Cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			parser := buildParser(tc)
			err := parser.ParseArgs(tc.Argv)

			if tc.Expect.Error != "" {
				sentinel, known := sentinelsByName[tc.Expect.Error]
				require.True(t, known, "unknown error name %q in fixture", tc.Expect.Error)
				require.Error(t, err)
				assert.ErrorIs(t, err, sentinel)
				return
			}
			require.NoError(t, err)

			for name, want := range tc.Expect.Flags {
				assert.Equal(t, want, parser.GetFlag(name), "flag %q", name)
			}
			for name, want := range tc.Expect.Strs {
				assert.Equal(t, want, parser.GetStr(name), "string option %q", name)
			}
			for name, want := range tc.Expect.Ints {
				assert.Equal(t, int(want), parser.GetInt(name), "integer option %q", name)
			}
			for name, want := range tc.Expect.Floats {
				assert.Equal(t, want, parser.GetFloat(name), "float option %q", name)
			}
			for name, want := range tc.Expect.StrLists {
				assert.Equal(t, want, parser.GetStrList(name), "string list %q", name)
			}
			for name, want := range tc.Expect.IntLists {
				got := parser.GetIntList(name)
				wantInts := make([]int, len(want))
				for i, v := range want {
					wantInts[i] = int(v)
				}
				assert.Equal(t, wantInts, got, "integer list %q", name)
			}
			if tc.Expect.Args != nil {
				got := append([]string{}, parser.GetArgs()...)
				assert.Equal(t, tc.Expect.Args, got, "positional arguments")
			}
		})
	}
}
