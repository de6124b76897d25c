package commands

import (
	"errors"
	"time"

	"orderboard/internal/pkg/guard"
)

var (
	ErrPurgeServedOrdersCommandIsNotConstructed = errors.New(
		"PurgeServedOrdersCommand must be created via NewPurgeServedOrdersCommand constructor",
	)
	ErrRetentionIsInvalid = errors.New("retention must be greater than 0")
)

// PurgeServedOrdersCommand triggers removal of served orders that have aged
// past the retention window. Served rows are kept around for same-day
// reporting and exports; this command is how they eventually leave.
type PurgeServedOrdersCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeServedOrdersCommand creates a command to purge aged served orders.
// Validates that the retention window is positive.
func NewPurgeServedOrdersCommand(retention time.Duration) (PurgeServedOrdersCommand, error) {
	purgeCommand := PurgeServedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := purgeCommand.setRetention(retention); err != nil {
		return PurgeServedOrdersCommand{}, err
	}

	return purgeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeServedOrdersCommandIsNotConstructed if validation fails.
func (c PurgeServedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeServedOrdersCommandIsNotConstructed)
}

// Retention returns how long served orders are kept after their last update.
func (c PurgeServedOrdersCommand) Retention() time.Duration {
	return c.retention
}

func (c *PurgeServedOrdersCommand) setRetention(retention time.Duration) error {
	if retention <= 0 {
		return ErrRetentionIsInvalid
	}

	c.retention = retention
	return nil
}
