package commands

import (
	"errors"

	"orderboard/internal/pkg/guard"
)

var ErrClearQueueCommandIsNotConstructed = errors.New(
	"ClearQueueCommand must be created via NewClearQueueCommand constructor",
)

// ClearQueueCommand triggers bulk confirmation of every pending order.
// This is the end-of-rush control on the dashboard: one press drains the
// pending column in a single transaction.
type ClearQueueCommand struct {
	guard guard.ConstructorGuard
}

// NewClearQueueCommand creates a command to bulk-confirm the pending queue.
// This is a parameterless command.
func NewClearQueueCommand() ClearQueueCommand {
	command := ClearQueueCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrClearQueueCommandIsNotConstructed if validation fails.
func (c *ClearQueueCommand) Validate() error {
	return c.guard.Validate(ErrClearQueueCommandIsNotConstructed)
}
