package systems

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJobSystemErrors(t *testing.T) {
	_, err := NewJobSystem(0, 1)
	require.ErrorIs(t, err, ErrNoWorkers)

	_, err = NewJobSystem(1, -1)
	require.ErrorIs(t, err, ErrNegativeChannelSize)
}

func TestJobSystem(t *testing.T) {
	js, err := NewJobSystem(4, 8)
	require.NoError(t, err)
	require.Equal(t, 4, js.Workers())

	const jobs = 50
	results := make([]int, jobs)
	var failures atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < jobs; i++ {
		wg.Add(1)
		idx := i
		require.NoError(t, js.Submit(JobTask{
			InputParams: idx,
			OnStart: func(input interface{}) (interface{}, error) {
				n := input.(int)
				if n%10 == 9 {
					return nil, errors.New("nine")
				}
				return n * n, nil
			},
			OnComplete: func(result interface{}) {
				results[idx] = result.(int)
			},
			OnFailure: func(err error) {
				failures.Add(1)
				results[idx] = -1
			},
			OnCompletionCallback: wg.Done,
		}))
	}
	wg.Wait()

	assert.Equal(t, int32(5), failures.Load())
	assert.Equal(t, 16, results[4])
	assert.Equal(t, -1, results[19])
	assert.Equal(t, 48*48, results[48])

	require.NoError(t, js.Shutdown())
	require.NoError(t, js.Shutdown())
	require.ErrorIs(t, js.Submit(JobTask{OnStart: func(interface{}) (interface{}, error) { return nil, nil }}), ErrJobSystemShutdown)
}

func TestJobSystemRejectsEmptyJob(t *testing.T) {
	js, err := NewJobSystem(1, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = js.Shutdown() })
	require.Error(t, js.Submit(JobTask{}))
}
