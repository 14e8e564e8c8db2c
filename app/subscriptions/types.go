package subscriptions

// Subscription is one feed entry in a feeds file.
type Subscription struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Disabled bool   `yaml:"disabled"`
}

type feedsFile struct {
	Feeds []Subscription `yaml:"feeds"`
}
