package commands

import (
	"errors"
	"time"

	"restaurant/internal/pkg/guard"
)

var (
	ErrPurgeAbandonedCartsCommandIsNotConstructed = errors.New(
		"PurgeAbandonedCartsCommand must be created via NewPurgeAbandonedCartsCommand constructor",
	)
	ErrIdleForIsInvalid = errors.New("idle duration must be greater than 0")
)

// PurgeAbandonedCartsCommand represents a request to drop cart lines that
// have not been touched for a given duration. Issued by the cart janitor
// job, not by the API.
type PurgeAbandonedCartsCommand struct { //nolint:recvcheck //using for validation
	idleFor time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeAbandonedCartsCommand creates a command to purge idle cart lines.
func NewPurgeAbandonedCartsCommand(idleFor time.Duration) (PurgeAbandonedCartsCommand, error) {
	purgeCommand := PurgeAbandonedCartsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := purgeCommand.setIdleFor(idleFor); err != nil {
		return PurgeAbandonedCartsCommand{}, err
	}

	return purgeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeAbandonedCartsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeAbandonedCartsCommandIsNotConstructed)
}

// IdleFor returns how long a cart line must have been untouched before
// it is purged.
func (c PurgeAbandonedCartsCommand) IdleFor() time.Duration {
	return c.idleFor
}

func (c *PurgeAbandonedCartsCommand) setIdleFor(idleFor time.Duration) error {
	if idleFor <= 0 {
		return ErrIdleForIsInvalid
	}

	c.idleFor = idleFor
	return nil
}
