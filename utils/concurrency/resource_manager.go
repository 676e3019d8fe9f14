// Package concurrency implements a simple channel based resource manager for concurrent operations.
package concurrency

import (
	"sync"
)

// ResourceManager is a struct storing a channel of some given resource (e.g. a
// transform together with its scratch buffers) meant to be used concurrently
// and a channel for errors.
type ResourceManager[T any] struct {
	wg        sync.WaitGroup
	Resources chan T
	Errors    chan error
}

// NewResourceManager instantiates a new [ResourceManager].
// At most len(resources) tasks run at the same time.
func NewResourceManager[T any](resources []T) *ResourceManager[T] {
	Resources := make(chan T, len(resources))
	for i := range resources {
		Resources <- resources[i]
	}
	return &ResourceManager[T]{
		Resources: Resources,
		Errors:    make(chan error, 1),
	}
}

// Task is an abstract template for a function taking as input
// a resource of any kind that can be used concurrently.
type Task[T any] func(resource T) (err error)

// Run runs a [Task] concurrently.
// If an error has already been recorded, the task is skipped.
// Only the first error returned by a [Task] is recorded.
func (r *ResourceManager[T]) Run(f Task[T]) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		resource := <-r.Resources
		defer func() { r.Resources <- resource }()
		if len(r.Errors) != 0 {
			return
		}
		if err := f(resource); err != nil {
			select {
			case r.Errors <- err:
			default:
			}
		}
	}()
}

// Wait waits until all concurrent [Task] have finished and returns
// the first encountered error, if any.
func (r *ResourceManager[T]) Wait() (err error) {
	r.wg.Wait()
	select {
	case err = <-r.Errors:
	default:
	}
	return
}
