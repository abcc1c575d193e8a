package batch

import (
	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"
)

const taskChanSize = 100

// Pool runs a fixed number of Job workers under a shared tomb.Tomb, the
// same supervision shape the teacher used for its connection workers,
// generalized from `any` tasks to Jobs and Results.
type Pool struct {
	n       int
	tasks   chan Job
	results chan Result
}

// NewPool builds a pool sized to run at most size files concurrently.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{
		n:       size,
		tasks:   make(chan Job, taskChanSize),
		results: make(chan Result, taskChanSize),
	}
}

// Submit runs every job in jobs across the pool's workers and returns
// their Results once all have completed. The tomb supervises worker
// goroutines; a job's own errors surface in its Result rather than
// killing the tomb, so one malformed file does not abort the batch.
func (p *Pool) Submit(jobs []Job) []Result {
	var t tomb.Tomb
	results := make([]Result, len(jobs))

	t.Go(func() error {
		for _, job := range jobs {
			select {
			case <-t.Dying():
				return nil
			case p.tasks <- job:
			}
		}
		close(p.tasks)
		return nil
	})

	active := p.n
	if active > len(jobs) {
		active = len(jobs)
	}
	if active == 0 {
		return results
	}

	for w := 0; w < active; w++ {
		t.Go(func() error {
			log.Debug().Msg("batch worker starting")
			for job := range p.tasks {
				p.results <- Run(job)
			}
			return nil
		})
	}

	for i := range results {
		results[i] = <-p.results
	}

	_ = t.Wait()
	return results
}
