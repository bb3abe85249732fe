package ingest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/rshade/footprint/internal/emissions"
	"github.com/rshade/footprint/internal/logging"
)

// observationsKey optionally wraps the activity map.
const observationsKey = "observations"

// maxFileSize bounds observation files.
const maxFileSize = 1 << 20

// StdinPath selects standard input in LoadObservations.
const StdinPath = "-"

// LoadObservations reads observations from path, or from stdin when path
// is "-". Files ending in .json are decoded as JSON, anything else as YAML.
func LoadObservations(ctx context.Context, path string, stdin io.Reader) (emissions.Observations, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Str("operation", "load_observations").
		Str("path", path).
		Msg("loading observations")

	var (
		data []byte
		err  error
	)
	if path == StdinPath {
		data, err = io.ReadAll(io.LimitReader(stdin, maxFileSize+1))
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		log.Error().Ctx(ctx).Str("component", "ingest").Err(err).Str("path", path).Msg("failed to read observations")
		return nil, fmt.Errorf("reading observations: %w", err)
	}
	if len(data) > maxFileSize {
		return nil, fmt.Errorf("%w: larger than %d bytes", ErrInvalidObservations, maxFileSize)
	}

	var obs emissions.Observations
	if strings.EqualFold(filepath.Ext(path), ".json") {
		obs, err = ParseJSONObservations(data)
	} else {
		obs, err = ParseYAMLObservations(data)
	}
	if err != nil {
		return nil, err
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "ingest").
		Int("observation_count", len(obs)).
		Msg("observations loaded")
	return obs, nil
}

// ParseYAMLObservations decodes a YAML mapping of activity to quantity,
// either at the top level or under an "observations" key. Scalars are kept
// as written; an empty document yields no observations.
func ParseYAMLObservations(data []byte) (emissions.Observations, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidObservations, err)
	}
	if len(doc.Content) == 0 {
		return emissions.Observations{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected a mapping at line %d", ErrInvalidObservations, root.Line)
	}
	if inner := mappingValue(root, observationsKey); inner != nil {
		if inner.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: %q must be a mapping (line %d)", ErrInvalidObservations, observationsKey, inner.Line)
		}
		root = inner
	}

	obs := make(emissions.Observations, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: %q must be a single quantity (line %d)", ErrInvalidObservations, key.Value, value.Line)
		}
		if value.ShortTag() == "!!null" {
			obs[key.Value] = ""
			continue
		}
		obs[key.Value] = value.Value
	}
	return obs, nil
}

func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// ParseJSONObservations decodes a JSON object of activity to quantity,
// either at the top level or under an "observations" key. Numbers keep
// their literal text; null becomes an empty quantity.
func ParseJSONObservations(data []byte) (emissions.Observations, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidObservations, err)
	}
	if inner, ok := top[observationsKey]; ok {
		top = nil
		if err := json.Unmarshal(inner, &top); err != nil {
			return nil, fmt.Errorf("%w: %q must be an object: %w", ErrInvalidObservations, observationsKey, err)
		}
	}

	obs := make(emissions.Observations, len(top))
	for key, raw := range top {
		value, err := jsonScalar(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidObservations, key, err)
		}
		obs[key] = value
	}
	return obs, nil
}

func jsonScalar(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) == 0, bytes.Equal(trimmed, []byte("null")):
		return "", nil
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	case trimmed[0] == '{', trimmed[0] == '[':
		return "", errors.New("must be a single quantity")
	default:
		return string(trimmed), nil
	}
}
