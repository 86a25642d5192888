package file

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"vocabook/internal/domain"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Codec converts a dictionary to and from its on-disk representation
type Codec interface {
	Encode(entries []domain.Entry) ([]byte, error)
	Decode(data []byte) ([]domain.Entry, error)
	Format() string
}

// CodecFor picks a codec from the file extension; unknown extensions use JSON
func CodecFor(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlCodec{}
	case ".msgpack", ".mpk":
		return msgpackCodec{}
	default:
		return jsonCodec{}
	}
}

type jsonCodec struct{}

func (jsonCodec) Format() string { return "json" }

func (jsonCodec) Encode(entries []domain.Entry) ([]byte, error) {
	return json.MarshalIndent(nonNil(entries), "", "  ")
}

func (jsonCodec) Decode(data []byte) ([]domain.Entry, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedData, err)
	}
	return toEntries(v)
}

type yamlCodec struct{}

func (yamlCodec) Format() string { return "yaml" }

func (yamlCodec) Encode(entries []domain.Entry) ([]byte, error) {
	return yaml.Marshal(nonNil(entries))
}

func (yamlCodec) Decode(data []byte) ([]domain.Entry, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedData, err)
	}
	return toEntries(v)
}

type msgpackCodec struct{}

func (msgpackCodec) Format() string { return "msgpack" }

func (msgpackCodec) Encode(entries []domain.Entry) ([]byte, error) {
	return msgpack.Marshal(nonNil(entries))
}

func (msgpackCodec) Decode(data []byte) ([]domain.Entry, error) {
	var v any
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedData, err)
	}
	return toEntries(v)
}

// toEntries validates a generically decoded document: a sequence whose
// elements carry exactly the string keys "word" and "translation".
func toEntries(v any) ([]domain.Entry, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a sequence of records, got %T", domain.ErrMalformedData, v)
	}

	entries := make([]domain.Entry, 0, len(items))
	for i, item := range items {
		record, ok := item.(map[string]any)
		if !ok || len(record) != 2 {
			return nil, fmt.Errorf("%w: record %d is not a {word, translation} object", domain.ErrMalformedData, i)
		}

		word, okWord := record["word"].(string)
		translation, okTranslation := record["translation"].(string)
		if !okWord || !okTranslation {
			return nil, fmt.Errorf("%w: record %d needs text fields word and translation", domain.ErrMalformedData, i)
		}

		entries = append(entries, domain.Entry{Word: word, Translation: translation})
	}

	return entries, nil
}

func nonNil(entries []domain.Entry) []domain.Entry {
	if entries == nil {
		return []domain.Entry{}
	}
	return entries
}
