package argot

import (
	"fmt"
	"strconv"
)

// Kind classifies the value type of a registered option. We use 'flag' as a
// synonym for boolean options, i.e. options that are either present (true) or
// absent (false). All other kinds require an argument.
type Kind int

const (
	Bool Kind = iota
	Str
	Int
	Float
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "boolean"
	case Str:
		return "string"
	case Int:
		return "integer"
	case Float:
		return "float"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// option stores the declared shape of one registered option along with its
// accumulated values. Every alias of a declaration shares a single option
// instance, so a value set through one alias is visible through all of them.
//
// A mono-valued option holds exactly one value, seeded with its default. A
// poly-valued option assembles a list of values, one per occurrence, or many
// per occurrence if the option is greedy.
type option struct {
	kind   Kind
	mono   bool
	greedy bool
	found  bool
	values []any
}

// set replaces a mono option's value or appends to a poly option's list.
func (opt *option) set(value any) {
	if opt.mono {
		opt.values[0] = value
	} else {
		opt.values = append(opt.values, value)
	}
}

func (opt *option) clear() {
	opt.values = opt.values[:0]
}

// coerce converts a raw token into the value representation for the given
// kind. Coercing to Str is the identity. Bool is deliberately absent: boolean
// options are set by presence alone and never consume a value token.
func coerce(kind Kind, token string) (any, error) {
	switch kind {
	case Str:
		return token, nil
	case Int:
		// Base 0 so hex and octal literals are accepted.
		n, err := strconv.ParseInt(token, 0, strconv.IntSize)
		if err != nil {
			return nil, parseErrorf(ErrInvalidNumericLiteral, "cannot parse '%s' as an integer", token)
		}
		return int(n), nil
	case Float:
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, parseErrorf(ErrInvalidNumericLiteral, "cannot parse '%s' as a float", token)
		}
		return f, nil
	}
	panic(&APIError{msg: fmt.Sprintf("cannot coerce a value for a %v option", kind)})
}
