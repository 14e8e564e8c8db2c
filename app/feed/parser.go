package feed

// Parser produces a NormalizedFeed from raw feed bytes. Both engines honor
// the same contract: the result is a pure function of the input, failures
// are typed *ParseError values, and a parse never yields partial data.
type Parser interface {
	Run(data []byte) (*NormalizedFeed, error)
}

// Engine selects the parsing implementation.
type Engine string

const (
	// EngineNative is the built-in namespace-aware XML normalizer.
	EngineNative Engine = "native"
	// EngineGofeed delegates format handling to mmcdole/gofeed.
	EngineGofeed Engine = "gofeed"
)

func NewParser(engine Engine) Parser {
	if engine == EngineGofeed {
		return NewGofeedParser()
	}
	return NewXMLParser()
}
