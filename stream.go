package argot

// argStream makes a slice of string arguments available as a stream. The
// underlying slice is never modified; only the cursor position advances.
type argStream struct {
	args  []string
	index int
}

func newArgStream(args []string) *argStream {
	return &argStream{args: args}
}

// hasNext reports whether the stream contains at least one more argument.
func (stream *argStream) hasNext() bool {
	return stream.index < len(stream.args)
}

// next consumes and returns the next argument from the stream.
func (stream *argStream) next() string {
	stream.index++
	return stream.args[stream.index-1]
}

// peek returns the next argument from the stream without consuming it.
func (stream *argStream) peek() string {
	return stream.args[stream.index]
}

// remainder consumes the rest of the stream and returns it as a slice.
func (stream *argStream) remainder() []string {
	rest := stream.args[stream.index:]
	stream.index = len(stream.args)
	return rest
}
