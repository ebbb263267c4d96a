// Package workers runs indexed jobs on a bounded number of goroutines.
//
// It is used by the CLI to validate a batch of payloads concurrently while
// keeping the number of in-flight requests to the server under control.
package workers

import "context"

// Job processes the item at index i. A non-nil error cancels the remaining
// jobs of the same run.
type Job func(ctx context.Context, i int) error

// Runner executes jobs over a range of indexes.
type Runner interface {
	Run(ctx context.Context, n int, job Job) error
}
