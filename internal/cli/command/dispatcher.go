// Package command holds what every gittr subcommand shares.
package command

import "context"

// Dispatcher is the part of the application the subcommands drive.
type Dispatcher interface {
	Commit(ctx context.Context) error
	Reconfig(ctx context.Context) error
	ShowConfig(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, copyToClipboard bool) error
	Update(ctx context.Context) error
	Version(ctx context.Context) error
}

// DispatcherProvider builds the dispatcher on first use, so commands that
// never need it (help, completion) do not touch the preference file.
type DispatcherProvider func(ctx context.Context) (Dispatcher, error)
