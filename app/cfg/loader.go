package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Fetch configuration
	Timeout   int    `long:"timeout" env:"TIMEOUT" default:"10" description:"HTTP fetch timeout in seconds"`
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"feedsift/1.0" description:"User agent string for HTTP requests"`

	// Processing configuration
	Engine      string `long:"parser" env:"PARSER" default:"native" choice:"native" choice:"gofeed" description:"Feed parsing engine"`
	Concurrency int    `long:"concurrency" env:"CONCURRENCY" default:"4" description:"Number of feeds processed in parallel"`

	// Output configuration
	WrapWidth int `long:"wrap-width" env:"WRAP_WIDTH" default:"80" description:"Column width for wrapped descriptions"`

	// Input sources
	FeedsFile   string `long:"feeds-file" env:"FEEDS_FILE" description:"YAML file with feed subscriptions"`
	Interactive bool   `long:"input" description:"Prompt for URLs on stdin instead of using arguments"`

	// Serve mode
	Serve bool   `long:"serve" env:"SERVE" description:"Run the HTTP API instead of the one-shot reader"`
	Port  string `long:"port" env:"PORT" default:"8080" description:"HTTP server port (serve mode)"`

	// Application metadata
	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`

	Args struct {
		URLs []string `positional-arg-name:"URL" description:"Feed URLs to process"`
	} `positional-args:"yes"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Timeout:     raw.Timeout,
		UserAgent:   raw.UserAgent,
		Engine:      raw.Engine,
		Concurrency: raw.Concurrency,
		WrapWidth:   raw.WrapWidth,
		FeedsFile:   raw.FeedsFile,
		Interactive: raw.Interactive,
		URLs:        raw.Args.URLs,
		Serve:       raw.Serve,
		Port:        raw.Port,
		Debug:       raw.Debug,
		Version:     GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
