package sources

import (
	"encoding/json"
	"fmt"
	"os"
)

// BoardConfig describes a selector-driven job board in a boards file.
// Browser selects headless rendering for JavaScript-heavy boards.
type BoardConfig struct {
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Browser   bool      `json:"browser,omitempty"`
	Selectors Selectors `json:"selectors"`
}

// Source constructs the board the config describes.
func (c BoardConfig) Source() (Source, error) {
	if c.Name == "" || c.URL == "" {
		return nil, fmt.Errorf("board config: name and url are required")
	}
	if c.Selectors.Job == "" || c.Selectors.Title == "" {
		return nil, fmt.Errorf("board %s: selectors.job and selectors.title are required", c.Name)
	}
	if c.Browser {
		return NewBrowserBoard(c.Name, c.URL, c.Selectors), nil
	}
	return NewHTMLBoard(c.Name, c.URL, c.Selectors), nil
}

// LoadBoards parses a JSON file holding an array of board definitions.
func LoadBoards(path string) ([]BoardConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read boards file %s: %w", path, err)
	}

	var boards []BoardConfig
	if err := json.Unmarshal(data, &boards); err != nil {
		return nil, fmt.Errorf("failed to parse boards JSON: %w", err)
	}
	return boards, nil
}
