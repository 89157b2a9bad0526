// Package configload loads [crosspath.Config] values from YAML files.
//
// This package is an external collaborator of the core: it only constructs a
// configuration and hands it to [crosspath]. Missing fields fall back to the
// defaults.
package configload

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MacroPower/crosspath/pkg/crosspath"
)

// Read decodes a YAML configuration document. Fields absent from the
// document keep their [crosspath.DefaultConfig] values, and the result is
// validated before it is returned.
func Read(r io.Reader) (crosspath.Config, error) {
	cfg := crosspath.DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// An empty document selects the defaults.
			return cfg, nil
		}

		return crosspath.Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return crosspath.Config{}, err
	}

	return cfg, nil
}

// Load reads a configuration from a local YAML file.
func Load(path string) (crosspath.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return crosspath.Config{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("failed to close config file", "path", path, "err", err)
		}
	}()

	cfg, err := Read(f)
	if err != nil {
		return crosspath.Config{}, fmt.Errorf("failed to load %s: %w", path, err)
	}

	return cfg, nil
}

// LoadRemote issues a GET request and decodes the response body as a YAML
// configuration. The caller is responsible for deciding whether remote
// configuration is acceptable.
func LoadRemote(url string) (crosspath.Config, error) {
	resp, err := http.Get(url)
	if err != nil {
		return crosspath.Config{}, fmt.Errorf("failed to fetch config: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return crosspath.Config{}, fmt.Errorf("failed to fetch config: %s", resp.Status)
	}

	cfg, err := Read(resp.Body)
	if err != nil {
		return crosspath.Config{}, fmt.Errorf("failed to load %s: %w", url, err)
	}

	return cfg, nil
}
