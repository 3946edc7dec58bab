package argot

// lookup fetches the option registered under the given alias, panicking
// with an *APIError if the alias was never registered. Misaddressing the
// registry is a programmer error, not a user-input error.
func (p *ArgParser) lookup(name string) *option {
	opt, found := p.options[name]
	if !found {
		apiPanic("'%s' is not a registered option", name)
	}
	return opt
}

func (p *ArgParser) monoValue(name string, kind Kind) any {
	opt := p.lookup(name)
	if !opt.mono || opt.kind != kind {
		apiPanic("'%s' is not a mono-valued %v option", name, kind)
	}
	return opt.values[0]
}

func (p *ArgParser) polyValues(name string, kind Kind) []any {
	opt := p.lookup(name)
	if opt.mono || opt.kind != kind {
		apiPanic("'%s' is not a %v list option", name, kind)
	}
	return opt.values
}

// GetFlag returns true if the named boolean option was found while parsing.
func (p *ArgParser) GetFlag(name string) bool {
	return p.monoValue(name, Bool).(bool)
}

// GetStr returns the value of the named string option.
func (p *ArgParser) GetStr(name string) string {
	return p.monoValue(name, Str).(string)
}

// GetInt returns the value of the named integer option.
func (p *ArgParser) GetInt(name string) int {
	return p.monoValue(name, Int).(int)
}

// GetFloat returns the value of the named float option.
func (p *ArgParser) GetFloat(name string) float64 {
	return p.monoValue(name, Float).(float64)
}

// GetFlagList returns the values of the named boolean list option.
func (p *ArgParser) GetFlagList(name string) []bool {
	values := p.polyValues(name, Bool)
	list := make([]bool, len(values))
	for i, value := range values {
		list[i] = value.(bool)
	}
	return list
}

// GetStrList returns the values of the named string list option.
func (p *ArgParser) GetStrList(name string) []string {
	values := p.polyValues(name, Str)
	list := make([]string, len(values))
	for i, value := range values {
		list[i] = value.(string)
	}
	return list
}

// GetIntList returns the values of the named integer list option.
func (p *ArgParser) GetIntList(name string) []int {
	values := p.polyValues(name, Int)
	list := make([]int, len(values))
	for i, value := range values {
		list[i] = value.(int)
	}
	return list
}

// GetFloatList returns the values of the named float list option.
func (p *ArgParser) GetFloatList(name string) []float64 {
	values := p.polyValues(name, Float)
	list := make([]float64, len(values))
	for i, value := range values {
		list[i] = value.(float64)
	}
	return list
}

// LenList returns the length of the named option's list of values.
func (p *ArgParser) LenList(name string) int {
	return len(p.lookup(name).values)
}

// ClearList clears the named list option's values.
func (p *ArgParser) ClearList(name string) {
	opt := p.lookup(name)
	if opt.mono {
		apiPanic("'%s' is not a list option", name)
	}
	opt.clear()
}

func (p *ArgParser) setValue(name string, kind Kind, value any) {
	opt := p.lookup(name)
	if opt.kind != kind {
		apiPanic("'%s' is not a %v option", name, kind)
	}
	opt.set(value)
}

// SetFlag sets the named boolean option to true. (Appends to list options.)
func (p *ArgParser) SetFlag(name string) {
	p.setValue(name, Bool, true)
}

// UnsetFlag resets the named boolean option to false. (Clears list options.)
func (p *ArgParser) UnsetFlag(name string) {
	opt := p.lookup(name)
	if opt.kind != Bool {
		apiPanic("'%s' is not a %v option", name, Bool)
	}
	if opt.mono {
		opt.values[0] = false
	} else {
		opt.clear()
	}
}

// SetStr sets the value of the named string option. (Appends to list
// options.)
func (p *ArgParser) SetStr(name string, value string) {
	p.setValue(name, Str, value)
}

// SetInt sets the value of the named integer option. (Appends to list
// options.)
func (p *ArgParser) SetInt(name string, value int) {
	p.setValue(name, Int, value)
}

// SetFloat sets the value of the named float option. (Appends to list
// options.)
func (p *ArgParser) SetFloat(name string, value float64) {
	p.setValue(name, Float, value)
}

// Value is a convenience accessor mirroring the named getters: it returns
// the single value of a mono option or the value slice of a list option,
// panicking with an *APIError if the alias is unregistered.
func (p *ArgParser) Value(name string) any {
	opt := p.lookup(name)
	if opt.mono {
		return opt.values[0]
	}
	return opt.values
}

// HasArgs reports whether at least one positional argument was found.
func (p *ArgParser) HasArgs() bool {
	return len(p.arguments) > 0
}

// LenArgs returns the number of positional arguments.
func (p *ArgParser) LenArgs() int {
	return len(p.arguments)
}

// GetArg returns the positional argument at the specified index, panicking
// with an *APIError if the index is out of bounds.
func (p *ArgParser) GetArg(index int) string {
	if index < 0 || index >= len(p.arguments) {
		apiPanic("argument index [%d] is out of bounds", index)
	}
	return p.arguments[index]
}

// GetArgs returns the positional arguments as a slice of strings.
func (p *ArgParser) GetArgs() []string {
	return p.arguments
}

// GetArgsAsInts attempts to parse the positional arguments as integers. The
// first malformed argument fails the whole batch.
func (p *ArgParser) GetArgsAsInts() ([]int, error) {
	list := make([]int, 0, len(p.arguments))
	for _, arg := range p.arguments {
		value, err := coerce(Int, arg)
		if err != nil {
			return nil, err
		}
		list = append(list, value.(int))
	}
	return list, nil
}

// GetArgsAsFloats attempts to parse the positional arguments as floats. The
// first malformed argument fails the whole batch.
func (p *ArgParser) GetArgsAsFloats() ([]float64, error) {
	list := make([]float64, 0, len(p.arguments))
	for _, arg := range p.arguments {
		value, err := coerce(Float, arg)
		if err != nil {
			return nil, err
		}
		list = append(list, value.(float64))
	}
	return list, nil
}

// HasCmd reports whether the parser found a registered command.
func (p *ArgParser) HasCmd() bool {
	return p.cmdName != ""
}

// GetCmdName returns the command name, if a command was found.
func (p *ArgParser) GetCmdName() string {
	return p.cmdName
}

// GetCmdParser returns the command's parser instance, if a command was
// found.
func (p *ArgParser) GetCmdParser() *ArgParser {
	return p.cmdParser
}
