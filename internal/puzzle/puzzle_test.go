package puzzle

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// withRegistry swaps in an empty registry for the duration of the test.
func withRegistry(t *testing.T) {
	t.Helper()
	mu.Lock()
	saved := days
	days = map[int]Day{}
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		days = saved
		mu.Unlock()
	})
}

func echo(_ context.Context, data []byte, _ Options) (Answer, error) {
	return Answer{Part1: string(data)}, nil
}

func TestRegisterAndLookup(t *testing.T) {
	withRegistry(t)
	Register(Day{Number: 12, Title: "twelve", Solve: echo})
	Register(Day{Number: 3, Title: "three", Solve: echo})

	d, ok := Lookup(3)
	require.True(t, ok)
	assert.Equal(t, "three", d.Title)

	_, ok = Lookup(4)
	assert.False(t, ok)

	all := All()
	require.Len(t, all, 2)
	assert.Equal(t, 3, all[0].Number)
	assert.Equal(t, 12, all[1].Number)
}

func TestRegisterPanics(t *testing.T) {
	withRegistry(t)
	Register(Day{Number: 1, Solve: echo})

	assert.Panics(t, func() { Register(Day{Number: 1, Solve: echo}) })
	assert.Panics(t, func() { Register(Day{Number: 0, Solve: echo}) })
	assert.Panics(t, func() { Register(Day{Number: 26, Solve: echo}) })
	assert.Panics(t, func() { Register(Day{Number: 2}) })
}

func TestRunLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	d := Day{Number: 3, Title: "Lobby", Solve: echo}

	ans, err := Run(context.Background(), d, []byte("42"), Options{Logger: zap.New(core)})
	require.NoError(t, err)
	assert.Equal(t, Answer{Part1: "42"}, ans)

	solved := logs.FilterMessage("solved").All()
	require.Len(t, solved, 1)
	fields := solved[0].ContextMap()
	assert.Equal(t, int64(3), fields["day"])
	assert.Equal(t, "Lobby", fields["title"])
	assert.Equal(t, 1, logs.FilterMessage("solving").Len())
}

func TestRunDefaultsWorkers(t *testing.T) {
	var got int
	d := Day{Number: 1, Solve: func(_ context.Context, _ []byte, opts Options) (Answer, error) {
		got = opts.Workers
		return Answer{}, nil
	}}
	_, err := Run(context.Background(), d, nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestRunWrapsError(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	boom := errors.New("boom")
	d := Day{Number: 7, Solve: func(context.Context, []byte, Options) (Answer, error) {
		return Answer{}, boom
	}}

	_, err := Run(context.Background(), d, nil, Options{Logger: zap.New(core)})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "day 7")
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestAnswerWriteTo(t *testing.T) {
	var buf bytes.Buffer
	_, err := Answer{Part1: "17301", Part2: "172162399742349"}.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 17301\nPart 2: 172162399742349\n", buf.String())

	buf.Reset()
	n, err := Answer{Part1: "595"}.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 595\n", buf.String())
	assert.Equal(t, int64(buf.Len()), n)
}
