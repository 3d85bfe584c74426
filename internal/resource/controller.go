// Package resource mediates one entity type's list, fetch, create,
// update and delete operations, tracking the request lifecycle so the
// presentation layer can render loading, error and success states
// without duplicating that logic per resource.
package resource

import (
	"context"
	"errors"
	"sync"

	"github.com/voyagedesk/voyagedesk/internal/apiclient"
)

// State is a snapshot of one controller's request lifecycle. Success and
// Err are never both set; Loading excludes a freshly set terminal state.
type State[T any] struct {
	Loading bool
	Err     *apiclient.APIError
	Success bool
	Data    T
}

// Query tracks a fetch-style operation. Failures clear the data back to
// the zero value, so a list query surfaces an empty list alongside its
// error. Concurrent fetches on one Query are not deduplicated; the last
// response to resolve wins.
type Query[T any] struct {
	mu       sync.Mutex
	state    State[T]
	validate func(T) error
	onChange func(State[T])
}

// QueryOption configures a Query.
type QueryOption[T any] func(*Query[T])

// WithValidate installs a shape check applied to successful responses. A
// failure is surfaced as an error even though the HTTP call succeeded.
func WithValidate[T any](fn func(T) error) QueryOption[T] {
	return func(q *Query[T]) {
		q.validate = fn
	}
}

// WithQueryListener installs a callback observing every state change.
func WithQueryListener[T any](fn func(State[T])) QueryOption[T] {
	return func(q *Query[T]) {
		q.onChange = fn
	}
}

func NewQuery[T any](opts ...QueryOption[T]) *Query[T] {
	q := &Query[T]{}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Fetch runs op through the query's state machine and returns its result
// alongside storing it. Re-fetching is simply calling Fetch again; there
// is no automatic polling.
func (q *Query[T]) Fetch(ctx context.Context, op func(context.Context) (T, error)) (T, error) {
	q.transition(func(s *State[T]) {
		s.Loading = true
		s.Err = nil
	})

	data, err := op(ctx)
	if err == nil && q.validate != nil {
		err = q.validate(data)
	}
	if err != nil {
		apiErr := normalize(err)
		q.transition(func(s *State[T]) {
			var zero T
			s.Loading = false
			s.Err = apiErr
			s.Data = zero
		})
		var zero T
		return zero, apiErr
	}

	q.transition(func(s *State[T]) {
		s.Loading = false
		s.Err = nil
		s.Data = data
	})
	return data, nil
}

// State returns a snapshot of the current lifecycle state.
func (q *Query[T]) State() State[T] {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// Reset returns the query to its initial quiescent state. Idempotent.
func (q *Query[T]) Reset() {
	q.transition(func(s *State[T]) {
		*s = State[T]{}
	})
}

func (q *Query[T]) transition(mutate func(*State[T])) {
	q.mu.Lock()
	mutate(&q.state)
	snapshot := q.state
	onChange := q.onChange
	q.mu.Unlock()
	if onChange != nil {
		onChange(snapshot)
	}
}

// Mutation tracks a create/update/delete operation. On failure the
// normalized error is both stored for display and returned, so a caller
// can branch synchronously (for example to keep a dialog open).
type Mutation[T any] struct {
	mu       sync.Mutex
	state    State[T]
	onChange func(State[T])
}

// MutationOption configures a Mutation.
type MutationOption[T any] func(*Mutation[T])

// WithMutationListener installs a callback observing every state change.
func WithMutationListener[T any](fn func(State[T])) MutationOption[T] {
	return func(m *Mutation[T]) {
		m.onChange = fn
	}
}

func NewMutation[T any](opts ...MutationOption[T]) *Mutation[T] {
	m := &Mutation[T]{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run executes op through the mutation's state machine.
func (m *Mutation[T]) Run(ctx context.Context, op func(context.Context) (T, error)) (T, error) {
	m.transition(func(s *State[T]) {
		s.Loading = true
		s.Err = nil
		s.Success = false
	})

	result, err := op(ctx)
	if err != nil {
		apiErr := normalize(err)
		m.transition(func(s *State[T]) {
			var zero T
			s.Loading = false
			s.Err = apiErr
			s.Success = false
			s.Data = zero
		})
		var zero T
		return zero, apiErr
	}

	m.transition(func(s *State[T]) {
		s.Loading = false
		s.Err = nil
		s.Success = true
		s.Data = result
	})
	return result, nil
}

// State returns a snapshot of the current lifecycle state.
func (m *Mutation[T]) State() State[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Reset returns the mutation to its initial quiescent state. Callers
// must reset when switching the target entity so a stale error or
// success flag from the previous one is not shown. Idempotent.
func (m *Mutation[T]) Reset() {
	m.transition(func(s *State[T]) {
		*s = State[T]{}
	})
}

func (m *Mutation[T]) transition(mutate func(*State[T])) {
	m.mu.Lock()
	mutate(&m.state)
	snapshot := m.state
	onChange := m.onChange
	m.mu.Unlock()
	if onChange != nil {
		onChange(snapshot)
	}
}

// normalize coerces any failure into the uniform APIError shape. Errors
// from the HTTP adapter pass through untouched.
func normalize(err error) *apiclient.APIError {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &apiclient.APIError{Message: err.Error()}
}
