// Package workers runs the long-lived activities of the chat client as one
// unit: the console input reader and the command dispatcher.
package workers

import "context"

// Worker is a long-lived activity. Run blocks until the work is finished
// or ctx is done.
//
// Example implementation:
//
//	type Ticker struct{}
//
//	func (t *Ticker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
