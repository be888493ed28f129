package parsec_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdparsec/pkg/parsec"
)

func TestSequence_ManyAndSome(t *testing.T) {
	t.Parallel()

	values, rest, ok := parsec.Many(parsec.Digit()).Evaluate("abc")
	require.True(t, ok)
	assert.Empty(t, values)
	assert.Equal(t, "abc", rest.String())

	_, rest, ok = parsec.Some(parsec.Digit()).Evaluate("abc")
	assert.False(t, ok)
	assert.Equal(t, "abc", rest.String())

	values, rest, ok = parsec.Some(parsec.Digit()).Evaluate("123abc")
	require.True(t, ok)
	assert.Len(t, values, 3)
	assert.Equal(t, "abc", rest.String())
}

func TestSequence_UntilProbeIsNotConsumed(t *testing.T) {
	t.Parallel()

	p := parsec.Chars(parsec.ManyUntil(parsec.Pop(), parsec.Literal("**")))
	value, rest, ok := p.Evaluate("bold** text")
	require.True(t, ok)
	assert.Equal(t, "bold", value.String())
	assert.Equal(t, "** text", rest.String())
}

func TestManyTill_RequiresTerminator(t *testing.T) {
	t.Parallel()

	p := parsec.ManyTill(parsec.Pop(), parsec.Literal("`"))

	value, rest, ok := p.Evaluate("code` tail")
	require.True(t, ok)
	assert.Len(t, value.First, 4)
	assert.Equal(t, "`", value.Second.String())
	assert.Equal(t, " tail", rest.String())

	_, rest, ok = p.Evaluate("no closing")
	assert.False(t, ok)
	assert.Equal(t, "no closing", rest.String())
}

func TestManyUnless_TerminatorOptional(t *testing.T) {
	t.Parallel()

	p := parsec.ManyUnless(parsec.NoneOf("|"), parsec.Literal("|").Spaced())

	value, rest, ok := p.Evaluate("cell | next")
	require.True(t, ok)
	assert.Len(t, value.First, 4)
	assert.True(t, value.Second.Valid)
	assert.Equal(t, "next", rest.String())

	value, rest, ok = p.Evaluate("last")
	require.True(t, ok)
	assert.False(t, value.Second.Valid)
	assert.True(t, rest.IsEmpty())
}

func TestSequence_StallIsBounded(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.New(&buf)

	p := parsec.Many(parsec.Pure(1))
	out := p.Run(parsec.NewState(parsec.FromString("abc")).WithLogger(logger))

	require.True(t, out.OK)
	assert.Len(t, out.Value, parsec.MaxStalledIterations)
	assert.Equal(t, "abc", out.Next.Text().String())
	assert.Contains(t, buf.String(), "repetition stopped without progress")
}

func TestFlip(t *testing.T) {
	t.Parallel()

	probe := parsec.Flip(parsec.Literal("\n\n"))

	flow, rest, ok := probe.Evaluate("\n\nx")
	require.True(t, ok)
	assert.Equal(t, parsec.Terminate, flow)
	assert.Equal(t, "\n\nx", rest.String())

	flow, _, ok = probe.Evaluate("x")
	require.True(t, ok)
	assert.Equal(t, parsec.Noop, flow)
}

func TestSomeTill(t *testing.T) {
	t.Parallel()

	p := parsec.SomeTill(parsec.Pop(), parsec.Literal("`"))

	tests := []struct {
		name     string
		input    string
		wantOK   bool
		wantLen  int
		wantRest string
	}{
		{name: "terminator present", input: "ab` tail", wantOK: true, wantLen: 2, wantRest: " tail"},
		{name: "terminator absent", input: "abc", wantOK: false, wantRest: "abc"},
		{name: "zero elements", input: "` tail", wantOK: false, wantRest: "` tail"},
		{name: "empty input", input: "", wantOK: false, wantRest: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			value, rest, ok := p.Evaluate(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRest, rest.String())
			if tt.wantOK {
				assert.Len(t, value.First, tt.wantLen)
				assert.Equal(t, "`", value.Second.String())
			}
		})
	}
}

func TestSomeUnless(t *testing.T) {
	t.Parallel()

	p := parsec.SomeUnless(parsec.Pop(), parsec.Literal("|"))

	tests := []struct {
		name     string
		input    string
		wantOK   bool
		wantLen  int
		wantEnd  bool
		wantRest string
	}{
		{name: "terminator present", input: "ab|c", wantOK: true, wantLen: 2, wantEnd: true, wantRest: "c"},
		{name: "terminator absent keeps the elements", input: "abc", wantOK: true, wantLen: 3, wantRest: ""},
		{name: "zero elements", input: "|c", wantOK: false, wantRest: "|c"},
		{name: "empty input", input: "", wantOK: false, wantRest: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			value, rest, ok := p.Evaluate(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRest, rest.String())
			if tt.wantOK {
				assert.Len(t, value.First, tt.wantLen)
				assert.Equal(t, tt.wantEnd, value.Second.Valid)
			}
		})
	}
}

func TestNoopFlow(t *testing.T) {
	t.Parallel()

	flow, rest, ok := parsec.NoopFlow().Evaluate("x")
	require.True(t, ok)
	assert.Equal(t, parsec.Noop, flow)
	assert.Equal(t, "x", rest.String())

	values, rest, ok := parsec.Sequence(parsec.Pop(), parsec.SequenceSettings{}.WithUntil(parsec.NoopFlow())).Evaluate("abc")
	require.True(t, ok)
	assert.Len(t, values, 3)
	assert.True(t, rest.IsEmpty())
}

func TestSequenceSettings(t *testing.T) {
	t.Parallel()

	comma := parsec.Flip(parsec.Literal(","))

	tests := []struct {
		name     string
		settings parsec.SequenceSettings
		input    string
		wantOK   bool
		wantLen  int
		wantRest string
	}{
		{name: "zero value needs an element", settings: parsec.SequenceSettings{}, input: "x", wantOK: false, wantRest: "x"},
		{name: "allow empty", settings: parsec.SequenceSettings{}.WithAllowEmpty(true), input: "x", wantOK: true, wantRest: "x"},
		{name: "allow empty reset", settings: parsec.SequenceSettings{AllowEmpty: true}.WithAllowEmpty(false), input: "x", wantRest: "x"},
		{name: "until stops the run", settings: parsec.SequenceSettings{}.WithUntil(comma), input: "12,3", wantOK: true, wantLen: 2, wantRest: ",3"},
		{name: "until before first element", settings: parsec.SequenceSettings{}.WithUntil(comma), input: ",3", wantOK: false, wantRest: ",3"},
		{name: "both", settings: parsec.SequenceSettings{}.WithAllowEmpty(true).WithUntil(comma), input: ",3", wantOK: true, wantRest: ",3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			values, rest, ok := parsec.Sequence(parsec.Digit(), tt.settings).Evaluate(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Len(t, values, tt.wantLen)
			assert.Equal(t, tt.wantRest, rest.String())
		})
	}
}
