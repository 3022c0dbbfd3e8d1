package systems

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/geometria/engine/core"
)

/** Entry point of a job. The returned value is handed to OnComplete. */
type JobStart func(input interface{}) (interface{}, error)

/** @brief Describes a job to be run. */
type JobTask struct {
	/** @brief Data passed to OnStart. */
	InputParams interface{}
	/** @brief Invoked when the job starts. Required. */
	OnStart JobStart
	/** @brief Invoked with the result when OnStart succeeds. Optional. */
	OnComplete func(result interface{})
	/** @brief Invoked with the error when OnStart fails. Optional. */
	OnFailure func(err error)
	/** @brief Invoked after OnComplete or OnFailure, whatever the outcome. Optional. */
	OnCompletionCallback func()
}

type JobSystem struct {
	numWorkers int
	jobQueue   chan JobTask
	wg         sync.WaitGroup

	mu       sync.RWMutex
	shutdown bool
}

var ErrNoWorkers = fmt.Errorf("attempting to create worker pool with less than 1 worker")
var ErrNegativeChannelSize = fmt.Errorf("attempting to create worker pool with a negative channel size")
var ErrJobSystemShutdown = fmt.Errorf("job system is shut down")

func NewJobSystem(numWorkers int, channelSize int) (*JobSystem, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}
	if channelSize < 0 {
		return nil, ErrNegativeChannelSize
	}

	js := &JobSystem{
		numWorkers: numWorkers,
		jobQueue:   make(chan JobTask, channelSize),
	}

	js.start()

	return js, nil
}

func (js *JobSystem) start() {
	for i := 0; i < js.numWorkers; i++ {
		js.wg.Add(1)
		go func() {
			defer js.wg.Done()
			for job := range js.jobQueue {
				js.run(job)
			}
		}()
	}
}

func (js *JobSystem) run(job JobTask) {
	if job.OnCompletionCallback != nil {
		defer job.OnCompletionCallback()
	}

	// Run the job and handle potential errors
	result, err := job.OnStart(job.InputParams)
	if err != nil {
		core.LogError("job failed: %s", err.Error())
		if job.OnFailure != nil {
			job.OnFailure(err)
		}
		return
	}
	if job.OnComplete != nil {
		job.OnComplete(result)
	}
}

func (js *JobSystem) Workers() int {
	return js.numWorkers
}

/**
 * @brief Shuts the job system down. Queued jobs are drained first.
 */
func (js *JobSystem) Shutdown() error {
	js.mu.Lock()
	if js.shutdown {
		js.mu.Unlock()
		return nil
	}
	js.shutdown = true
	close(js.jobQueue)
	js.mu.Unlock()

	js.wg.Wait()
	return nil
}

/**
 * @brief Submits the provided job to be queued for execution. Blocks while
 * the queue is full.
 * @param jt The description of the job to be executed.
 */
func (js *JobSystem) Submit(jt JobTask) error {
	if jt.OnStart == nil {
		return fmt.Errorf("job has no entry point")
	}

	js.mu.RLock()
	defer js.mu.RUnlock()
	if js.shutdown {
		return ErrJobSystemShutdown
	}
	js.jobQueue <- jt
	return nil
}
