package persistence

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Codec turns a snapshot into bytes and back. The set of formats is closed;
// callers pick one explicitly (JSON or YAML) instead of routing through a
// string-keyed registry.
type Codec interface {
	Name() string
	Encode(snap *Snapshot) ([]byte, error)
	Decode(data []byte) (*Snapshot, error)
}

var (
	JSON Codec = jsonCodec{}
	YAML Codec = yamlCodec{}
)

// CodecFor resolves a configured format name to one of the known codecs.
func CodecFor(name string) (Codec, error) {
	switch name {
	case JSON.Name():
		return JSON, nil
	case YAML.Name():
		return YAML, nil
	default:
		return nil, fmt.Errorf("unknown snapshot format %q", name)
	}
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Encode(snap *Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

func (jsonCodec) Decode(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode json snapshot: %w", err)
	}
	return &snap, nil
}

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Encode(snap *Snapshot) ([]byte, error) {
	return yaml.Marshal(snap)
}

func (yamlCodec) Decode(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode yaml snapshot: %w", err)
	}
	return &snap, nil
}

// SaveFile writes a snapshot to a file in the given format.
func SaveFile(path string, codec Codec, snap *Snapshot) error {
	data, err := codec.Encode(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot file: %w", err)
	}
	return nil
}

// LoadFile reads a snapshot from a file in the given format.
func LoadFile(path string, codec Codec) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	return codec.Decode(data)
}
