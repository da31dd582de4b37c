package commands

import (
	"errors"
	"time"

	"bakery/internal/pkg/guard"
)

var ErrRunExportCommandIsNotConstructed = errors.New(
	"RunExportCommand must be created via NewRunExportCommand constructor",
)

// RunExportCommand starts one export run. A dry run writes the batch for
// inspection but changes no order and writes no log.
type RunExportCommand struct {
	since  *time.Time
	dryRun bool

	guard guard.ConstructorGuard
}

// NewRunExportCommand limits the run to orders placed at or after since when since is set.
func NewRunExportCommand(since *time.Time, dryRun bool) RunExportCommand {
	return RunExportCommand{
		since:  since,
		dryRun: dryRun,
		guard:  guard.NewConstructorGuard(),
	}
}

func (c RunExportCommand) Validate() error {
	return c.guard.Validate(ErrRunExportCommandIsNotConstructed)
}

func (c RunExportCommand) Since() *time.Time { return c.since }
func (c RunExportCommand) DryRun() bool { return c.dryRun }
