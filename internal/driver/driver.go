package driver

import (
	"context"
	"time"
)

const (
	DefaultTickLength = time.Second * 5
)

// Manager is periodic background work.
type Manager interface {
	Tick(context.Context) error
}

// Driver ticks its managers until the context ends or one of them fails.
type Driver struct {
	tickLength time.Duration
	managers   []Manager
}

func NewDriver(managers []Manager, opts ...DriverOpt) *Driver {
	d := &Driver{
		tickLength: DefaultTickLength,
		managers:   managers,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *Driver) Start(ctx context.Context) error {
	// Run once up front so startup work does not wait a full tick.
	if err := d.Tick(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			err := d.Tick(ctx)
			if err != nil {
				return err
			}
		}
	}
}

func (d *Driver) Tick(ctx context.Context) error {
	for _, m := range d.managers {
		if err := m.Tick(ctx); err != nil {
			return err
		}
	}
	return nil
}
