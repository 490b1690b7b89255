package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// PropertySource is the document served by the config service for one
// application/profile pair.
type PropertySource struct {
	Name     string         `json:"name"`
	Profiles []string       `json:"profiles"`
	Source   map[string]any `json:"source"`
}

// FetchRemoteConfig loads the properties of an application profile from the
// config service.
func FetchRemoteConfig(baseURL, application, profile string) (map[string]any, error) {
	endpoint := fmt.Sprintf("%s/%s/%s", strings.TrimRight(baseURL, "/"),
		url.PathEscape(application), url.PathEscape(profile))

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch remote config %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch remote config %s: unexpected status %d", endpoint, resp.StatusCode)
	}

	var envelope struct {
		Data PropertySource `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode remote config: %w", err)
	}

	return envelope.Data.Source, nil
}
