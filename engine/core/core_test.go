package core

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	t.Cleanup(func() {
		SetLogOutput(os.Stderr)
		require.NoError(t, SetLogLevel(LogLevelInfo))
	})

	require.NoError(t, SetLogLevel(LogLevelWarn))
	LogInfo("hidden %d", 1)
	LogWarn("shown %d", 2)
	require.NotContains(t, buf.String(), "hidden 1")
	require.Contains(t, buf.String(), "shown 2")

	require.NoError(t, SetLogLevel("DEBUG"))
	LogDebug("debugging %s", "now")
	require.Contains(t, buf.String(), "debugging now")

	LogWith("structured", "collider", "crate")
	require.Contains(t, buf.String(), "collider=crate")

	require.Error(t, SetLogLevel("chatty"))
	require.Error(t, ValidateLogLevel("chatty"))
	require.NoError(t, ValidateLogLevel(LogLevelError))
}

func TestQueryMetrics(t *testing.T) {
	m := NewQueryMetrics()
	require.Equal(t, 0.0, m.AverageMS())

	m.Record(2*time.Millisecond, true)
	m.Record(4*time.Millisecond, false)
	require.InDelta(t, 3.0, m.AverageMS(), 1e-9)

	queries, hits := m.Counts()
	require.Equal(t, int64(2), queries)
	require.Equal(t, int64(1), hits)

	t.Run("only the last samples count", func(t *testing.T) {
		m := NewQueryMetrics()
		for i := 0; i < int(AVG_COUNT); i++ {
			m.Record(100*time.Millisecond, false)
		}
		for i := 0; i < int(AVG_COUNT); i++ {
			m.Record(time.Millisecond, true)
		}
		require.InDelta(t, 1.0, m.AverageMS(), 1e-9)
	})

	t.Run("concurrent records", func(t *testing.T) {
		m := NewQueryMetrics()
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					m.Record(time.Millisecond, j%2 == 0)
				}
			}()
		}
		wg.Wait()
		queries, hits := m.Counts()
		require.Equal(t, int64(800), queries)
		require.Equal(t, int64(400), hits)
	})
}

func TestClock(t *testing.T) {
	c := NewClock()
	c.Update()
	require.Zero(t, c.Elapsed())

	c.Start()
	time.Sleep(2 * time.Millisecond)
	c.Stop()
	stopped := c.Elapsed()
	require.GreaterOrEqual(t, stopped, 2*time.Millisecond)

	time.Sleep(time.Millisecond)
	c.Update()
	require.Equal(t, stopped, c.Elapsed())
}

func TestEventBus(t *testing.T) {
	bus := NewEventBus()
	listener := "testbed"

	var got EventContext
	onLoaded := func(code SystemEventCode, sender interface{}, inst interface{}, data EventContext) bool {
		got = data
		return true
	}

	require.True(t, bus.Register(EVENT_CODE_SCENE_LOADED, listener, onLoaded))
	require.False(t, bus.Register(EVENT_CODE_SCENE_LOADED, listener, onLoaded))

	ctx := EventContext{}
	ctx.Data.C[0] = "scene.toml"
	ctx.Data.U64[0] = 4
	require.True(t, bus.Fire(EVENT_CODE_SCENE_LOADED, nil, ctx))
	assert.Equal(t, "scene.toml", got.Data.C[0])
	assert.Equal(t, uint64(4), got.Data.U64[0])

	require.False(t, bus.Fire(EVENT_CODE_RAY_HIT, nil, ctx))

	require.True(t, bus.Unregister(EVENT_CODE_SCENE_LOADED, listener))
	require.False(t, bus.Unregister(EVENT_CODE_SCENE_LOADED, listener))
	require.False(t, bus.Fire(EVENT_CODE_SCENE_LOADED, nil, ctx))

	t.Run("unhandled events reach every listener", func(t *testing.T) {
		bus := NewEventBus()
		calls := 0
		pass := func(SystemEventCode, interface{}, interface{}, EventContext) bool {
			calls++
			return false
		}
		require.True(t, bus.Register(EVENT_CODE_RAY_MISS, 1, pass))
		require.True(t, bus.Register(EVENT_CODE_RAY_MISS, 2, pass))
		require.False(t, bus.Fire(EVENT_CODE_RAY_MISS, nil, EventContext{}))
		require.Equal(t, 2, calls)

		bus.Reset()
		require.False(t, bus.Fire(EVENT_CODE_RAY_MISS, nil, EventContext{}))
		require.Equal(t, 2, calls)
	})
}

func TestErrorsWrap(t *testing.T) {
	err := fmt.Errorf("loading crate: %w", ErrInvalidMesh)
	require.True(t, errors.Is(err, ErrInvalidMesh))
	require.False(t, errors.Is(err, ErrUnknownCollider))
}
