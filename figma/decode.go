package figma

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/cespare/xxhash/v2"
)

var (
	ErrMissingDocument = errors.New("response has no document")
	ErrMissingNodes    = errors.New("response has no nodes")
	ErrUnknownResponse = errors.New("neither a file nor a file nodes response")
)

// Fingerprint hashes the raw bytes of an export so reloads of identical
// content can be skipped.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}

func DecodeFile(data []byte) (*FileResponse, error) {
	resp := &FileResponse{}
	if err := json.Unmarshal(data, resp); err != nil {
		return nil, fmt.Errorf("failed to decode file response: %w", err)
	}
	if resp.Document == nil {
		return nil, ErrMissingDocument
	}
	return resp, nil
}

func DecodeFileNodes(data []byte) (*FileNodesResponse, error) {
	resp := &FileNodesResponse{}
	if err := json.Unmarshal(data, resp); err != nil {
		return nil, fmt.Errorf("failed to decode file nodes response: %w", err)
	}
	if resp.Nodes == nil {
		return nil, ErrMissingNodes
	}
	return resp, nil
}

// Source is an export read from disk. Exactly one of File and Nodes is set.
type Source struct {
	Path        string
	Data        []byte
	Fingerprint uint64

	File  *FileResponse
	Nodes *FileNodesResponse
}

func (s *Source) Name() string {
	if s.File != nil {
		return s.File.Name
	}
	return s.Nodes.Name
}

// Root returns the document of a file response or the main node of a file
// nodes response.
func (s *Source) Root() *Node {
	if s.File != nil {
		return s.File.Document
	}
	return FindMainNode(s.Nodes)
}

// FindByID looks up a node in the export. File nodes responses are searched
// in the order of their sorted ids.
func (s *Source) FindByID(id string) *Node {
	if s.File != nil {
		return FindByID(s.File.Document, id)
	}
	for _, key := range slices.Sorted(maps.Keys(s.Nodes.Nodes)) {
		if n := FindByID(s.Nodes.Nodes[key].Document, id); n != nil {
			return n
		}
	}
	return nil
}

// Parse detects the response kind by its top-level keys and decodes it.
func Parse(data []byte) (*Source, error) {
	var probe struct {
		Document json.RawMessage `json:"document"`
		Nodes    json.RawMessage `json:"nodes"`
	}
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&probe); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	src := &Source{Data: data, Fingerprint: Fingerprint(data)}
	var err error
	switch {
	case probe.Document != nil:
		src.File, err = DecodeFile(data)
	case probe.Nodes != nil:
		src.Nodes, err = DecodeFileNodes(data)
	default:
		err = ErrUnknownResponse
	}
	if err != nil {
		return nil, err
	}
	return src, nil
}

// LoadFile reads and decodes the export at path.
func LoadFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	src, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	src.Path = path
	tracer().Infof("loaded %s (%d bytes, fingerprint %x)", path, len(data), src.Fingerprint)
	return src, nil
}
