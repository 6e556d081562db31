package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/union-domain/internal/driver"
	"github.com/pixil98/union-domain/internal/hub"
)

type HubConfig struct {
	// URL is registered with automatically at startup. Empty leaves
	// registration to POST /newhub.
	URL           string `json:"url" env:"DOMAIN_HUB_URL"`
	Timeout       string `json:"timeout" env:"DOMAIN_HUB_TIMEOUT"`
	RetryInterval string `json:"retry_interval" env:"DOMAIN_HUB_RETRY_INTERVAL"`
}

func (c *HubConfig) validate() error {
	el := errors.NewErrorList()

	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			el.Add(fmt.Errorf("hub: parsing timeout: %w", err))
		} else if d <= 0 {
			el.Add(fmt.Errorf("hub: timeout must be positive"))
		}
	}

	if c.RetryInterval != "" {
		d, err := time.ParseDuration(c.RetryInterval)
		if err != nil {
			el.Add(fmt.Errorf("hub: parsing retry_interval: %w", err))
		} else if d < time.Second {
			el.Add(fmt.Errorf("hub: retry_interval must be at least 1 second"))
		}
	}

	return el.Err()
}

func (c *HubConfig) buildClient() (*hub.Client, error) {
	var opts []hub.ClientOpt
	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parsing timeout: %w", err)
		}
		opts = append(opts, hub.WithTimeout(d))
	}

	return hub.NewClient(opts...), nil
}

func (c *HubConfig) buildDriver(managers ...driver.Manager) (*driver.Driver, error) {
	var opts []driver.DriverOpt
	if c.RetryInterval != "" {
		d, err := time.ParseDuration(c.RetryInterval)
		if err != nil {
			return nil, fmt.Errorf("parsing retry_interval: %w", err)
		}
		opts = append(opts, driver.WithTickLength(d))
	}

	return driver.NewDriver(managers, opts...), nil
}
