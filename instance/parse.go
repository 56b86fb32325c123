package instance

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes exactly one instance from r.
func Parse(r io.Reader) (*Instance, error) {
	all, err := ParseAll(r)
	if err != nil {
		return nil, err
	}
	if len(all) != 1 {
		return nil, fmt.Errorf("%w: want one document, got %d", ErrInvalidInstance, len(all))
	}

	return all[0], nil
}

// ParseAll decodes every document of a YAML stream and validates each.
// Unknown fields are errors.
func ParseAll(r io.Reader) ([]*Instance, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var out []*Instance
	for i := 1; ; i++ {
		in := new(Instance)
		err := dec.Decode(in)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: document %d: %w", ErrInvalidInstance, i, err)
		}
		if err = in.Validate(); err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		out = append(out, in)
	}

	return out, nil
}

// Load reads every instance stored in the file at path. Instances without a
// name are named after the file, suffixed with their position when the file
// holds more than one.
func Load(path string) ([]*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: load %s: %w", path, err)
	}
	defer f.Close()

	all, err := ParseAll(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for i, in := range all {
		if in.Name != "" {
			continue
		}
		in.Name = path
		if len(all) > 1 {
			in.Name = fmt.Sprintf("%s#%d", path, i+1)
		}
	}

	return all, nil
}

// Encode writes instances to w as a YAML stream, one document each.
func Encode(w io.Writer, all ...*Instance) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, in := range all {
		if err := enc.Encode(in); err != nil {
			return fmt.Errorf("instance: encode %q: %w", in.Name, err)
		}
	}

	return enc.Close()
}

// Validate checks the shape of both descriptions without building oracles.
func (in *Instance) Validate() error {
	if err := in.M1.validate(); err != nil {
		return fmt.Errorf("m1: %w", err)
	}
	if err := in.M2.validate(); err != nil {
		return fmt.Errorf("m2: %w", err)
	}
	if in.Expected != nil && *in.Expected < 0 {
		return fmt.Errorf("%w: negative expected size %d", ErrInvalidInstance, *in.Expected)
	}

	return nil
}

func (m Matroid) validate() error {
	switch m.Kind {
	case KindGraphic:
		if len(m.Sets) > 0 {
			return fmt.Errorf("%w: graphic matroid with sets", ErrInvalidInstance)
		}
		for i, e := range m.Edges {
			if len(e) != 2 {
				return fmt.Errorf("%w: edge %d has %d endpoints", ErrInvalidInstance, i, len(e))
			}
		}
	case KindTransversal:
		if m.Vertices != 0 || len(m.Edges) > 0 {
			return fmt.Errorf("%w: transversal matroid with vertices or edges", ErrInvalidInstance)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, m.Kind)
	}

	return nil
}
