package command

import (
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v11"
	"github.com/pixil98/go-errors"
	"github.com/pixil98/union-domain/internal/server"
)

const (
	defaultName        = "Illini Union"
	defaultDescription = "The Illini Union, at the heart of campus. Grab a coffee, if you can find your way to one."
)

type Config struct {
	Domain  DomainConfig  `json:"domain"`
	HTTP    HTTPConfig    `json:"http"`
	Hub     HubConfig     `json:"hub"`
	Assets  AssetsConfig  `json:"assets"`
	Nats    NatsConfig    `json:"nats"`
	Logging LoggingConfig `json:"logging"`
	Display DisplayConfig `json:"display"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	el.Add(c.Domain.validate())
	el.Add(c.HTTP.validate())
	el.Add(c.Hub.validate())
	el.Add(c.Assets.validate())
	el.Add(c.Nats.validate())
	el.Add(c.Logging.validate())
	el.Add(c.Display.validate())

	return el.Err()
}

// applyEnv overlays DOMAIN_* environment variables on the loaded file config.
// Unset variables leave the file value alone.
func (c *Config) applyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	return nil
}

type DomainConfig struct {
	PublicURL   string `json:"public_url" env:"DOMAIN_PUBLIC_URL"`
	Name        string `json:"name" env:"DOMAIN_NAME"`
	Description string `json:"description" env:"DOMAIN_DESCRIPTION"`
}

func (c *DomainConfig) validate() error {
	el := errors.NewErrorList()

	if c.PublicURL == "" {
		el.Add(fmt.Errorf("domain: public_url is required"))
	} else if u, err := url.Parse(c.PublicURL); err != nil || u.Scheme == "" || u.Host == "" {
		el.Add(fmt.Errorf("domain: public_url %q must be an absolute url", c.PublicURL))
	}

	return el.Err()
}

func (c *DomainConfig) info() server.DomainInfo {
	info := server.DomainInfo{
		URL:         c.PublicURL,
		Name:        c.Name,
		Description: c.Description,
	}
	if info.Name == "" {
		info.Name = defaultName
	}
	if info.Description == "" {
		info.Description = defaultDescription
	}
	return info
}

type HTTPConfig struct {
	Host string `json:"host" env:"DOMAIN_HTTP_HOST"`
	Port int    `json:"port" env:"DOMAIN_HTTP_PORT"`
}

func (c *HTTPConfig) validate() error {
	el := errors.NewErrorList()

	if c.Port <= 0 || c.Port > 65535 {
		el.Add(fmt.Errorf("http: port must be between 1 and 65535"))
	}

	return el.Err()
}

type DisplayConfig struct {
	WrapWidth int `json:"wrap_width" env:"DOMAIN_WRAP_WIDTH"`
}

func (c *DisplayConfig) validate() error {
	if c.WrapWidth < 0 {
		return fmt.Errorf("display: wrap_width must not be negative")
	}
	return nil
}
