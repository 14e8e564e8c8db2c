package cfg

type Cfg struct {
	// Fetch configuration
	Timeout   int
	UserAgent string

	// Processing configuration
	Engine      string
	Concurrency int

	// Output configuration
	WrapWidth int

	// Input sources
	FeedsFile   string
	Interactive bool
	URLs        []string

	// Serve mode
	Serve bool
	Port  string

	// Application metadata
	Debug   bool
	Version string
}
