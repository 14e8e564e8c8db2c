package subscriptions

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadValidFile(t *testing.T) {
	tempDir := t.TempDir()

	content := `
feeds:
  - name: "Example"
    url: "https://example.com/feed.xml"
  - name: "Disabled"
    url: "https://example.com/other.xml"
    disabled: true
  - url: "https://example.com/unnamed.xml"
`

	path := filepath.Join(tempDir, "feeds.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	subs, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(subs) != 2 {
		t.Fatalf("Expected 2 enabled subscriptions, got %d", len(subs))
	}
	if subs[0].Name != "Example" {
		t.Errorf("Expected name 'Example', got '%s'", subs[0].Name)
	}

	urls := URLs(subs)
	if len(urls) != 2 || urls[0] != "https://example.com/feed.xml" || urls[1] != "https://example.com/unnamed.xml" {
		t.Errorf("Unexpected URL list: %v", urls)
	}
}

func TestLoadMissingURL(t *testing.T) {
	tempDir := t.TempDir()

	content := `
feeds:
  - name: "No URL"
`

	path := filepath.Join(tempDir, "feeds.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for subscription without url")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("Expected error for missing feeds file")
	}
}
