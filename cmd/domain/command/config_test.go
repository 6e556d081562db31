package command

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func validConfig() *Config {
	return &Config{
		Domain: DomainConfig{PublicURL: "http://localhost:8080"},
		HTTP:   HTTPConfig{Port: 8080},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := map[string]struct {
		mutate func(c *Config)
		expErr string
	}{
		"valid": {
			mutate: func(c *Config) {},
		},
		"full": {
			mutate: func(c *Config) {
				c.Hub = HubConfig{URL: "http://hub:9000", Timeout: "2s", RetryInterval: "10s"}
				c.Nats = NatsConfig{Enabled: true, Port: -1, StartTimeout: "5s"}
				c.Logging = LoggingConfig{Level: "debug", Format: "json"}
				c.Display.WrapWidth = 72
			},
		},
		"missing public url": {
			mutate: func(c *Config) { c.Domain.PublicURL = "" },
			expErr: "public_url is required",
		},
		"relative public url": {
			mutate: func(c *Config) { c.Domain.PublicURL = "localhost" },
			expErr: "must be an absolute url",
		},
		"missing port": {
			mutate: func(c *Config) { c.HTTP.Port = 0 },
			expErr: "port must be between 1 and 65535",
		},
		"bad hub timeout": {
			mutate: func(c *Config) { c.Hub.Timeout = "soon" },
			expErr: "parsing timeout",
		},
		"short retry interval": {
			mutate: func(c *Config) { c.Hub.RetryInterval = "10ms" },
			expErr: "retry_interval must be at least 1 second",
		},
		"missing assets dir": {
			mutate: func(c *Config) { c.Assets.Path = "/does/not/exist" },
			expErr: "invalid path",
		},
		"bad nats timeout": {
			mutate: func(c *Config) { c.Nats.StartTimeout = "later" },
			expErr: "parsing start_timeout",
		},
		"bad log level": {
			mutate: func(c *Config) { c.Logging.Level = "loud" },
			expErr: "parsing level",
		},
		"bad log format": {
			mutate: func(c *Config) { c.Logging.Format = "xml" },
			expErr: "unknown format",
		},
		"negative wrap": {
			mutate: func(c *Config) { c.Display.WrapWidth = -1 },
			expErr: "wrap_width must not be negative",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			err := c.Validate()
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestConfig_ValidateAggregates(t *testing.T) {
	c := &Config{Display: DisplayConfig{WrapWidth: -1}}

	err := c.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"public_url", "port", "wrap_width"} {
		testutil.AssertEqual(t, want, strings.Contains(err.Error(), want), true)
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Setenv("DOMAIN_PUBLIC_URL", "http://union.example:9000")
	t.Setenv("DOMAIN_HTTP_PORT", "9000")
	t.Setenv("DOMAIN_HUB_URL", "http://hub.example")
	t.Setenv("DOMAIN_NATS_ENABLED", "true")

	c := validConfig()
	c.Domain.Name = "From File"

	if err := c.applyEnv(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "public url", c.Domain.PublicURL, "http://union.example:9000")
	testutil.AssertEqual(t, "port", c.HTTP.Port, 9000)
	testutil.AssertEqual(t, "hub url", c.Hub.URL, "http://hub.example")
	testutil.AssertEqual(t, "nats", c.Nats.Enabled, true)
	testutil.AssertEqual(t, "name kept", c.Domain.Name, "From File")
}

func TestConfig_ApplyEnvBadValue(t *testing.T) {
	t.Setenv("DOMAIN_HTTP_PORT", "eighty")

	err := validConfig().applyEnv()
	testutil.AssertErrorContains(t, err, "parsing environment")
}

func TestDomainConfig_Info(t *testing.T) {
	c := DomainConfig{PublicURL: "http://x"}
	info := c.info()
	testutil.AssertEqual(t, "default name", info.Name, defaultName)
	testutil.AssertEqual(t, "default description", info.Description, defaultDescription)

	c.Name = "Union"
	testutil.AssertEqual(t, "name", c.info().Name, "Union")
}

func TestLoggingConfig_BuildLogger(t *testing.T) {
	tests := map[string]struct {
		cfg      LoggingConfig
		expDebug bool
		expJSON  bool
	}{
		"defaults": {},
		"debug text": {
			cfg:      LoggingConfig{Level: "debug"},
			expDebug: true,
		},
		"json": {
			cfg:     LoggingConfig{Format: "JSON"},
			expJSON: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := tt.cfg.buildLogger(&buf)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			logger.Debug("quiet")
			logger.Info("hello", "k", "v")

			out := buf.String()
			testutil.AssertEqual(t, "debug logged", strings.Contains(out, "quiet"), tt.expDebug)
			testutil.AssertEqual(t, "json", strings.HasPrefix(out, "{"), tt.expJSON)
			testutil.AssertEqual(t, "info logged", strings.Contains(out, "hello"), true)
		})
	}
}

func TestLoggingConfig_Writer(t *testing.T) {
	c := LoggingConfig{}
	testutil.AssertEqual(t, "stderr", c.writer() == os.Stderr, true)

	c.File = filepath.Join(t.TempDir(), "domain.log")
	logger, err := c.buildLogger(c.writer())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("rotated")

	data, err := os.ReadFile(c.File)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	testutil.AssertEqual(t, "written", strings.Contains(string(data), "rotated"), true)
}

func TestAssetsConfig_Load(t *testing.T) {
	c := AssetsConfig{}
	graph, catalog, err := c.load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "rooms", len(graph.RoomIds()), 6)
	testutil.AssertEqual(t, "items", catalog.Len(), 6)

	c.Path = t.TempDir()
	_, _, err = c.load()
	testutil.AssertErrorContains(t, err, "loading assets")
}

func TestBuildWorkers(t *testing.T) {
	c := validConfig()
	c.Nats = NatsConfig{Enabled: true, Port: -1}

	workers, err := BuildWorkers(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range []string{"http", "driver", "nats"} {
		_, ok := workers[name]
		testutil.AssertEqual(t, name, ok, true)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	_, err = BuildWorkers("nope")
	testutil.AssertErrorContains(t, err, "unable to cast config")
}
