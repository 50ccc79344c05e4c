package dataset

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/busroute/builder"
	"github.com/katalvlaran/busroute/core"
)

// MaxFileSize bounds how many bytes Load reads.
const MaxFileSize = 1 << 20

var (
	// ErrUnknownDataset is returned by Builtin for a name that is not embedded.
	ErrUnknownDataset = errors.New("dataset: unknown built-in dataset")

	// ErrInvalidDataset wraps every decoding and validation failure.
	ErrInvalidDataset = errors.New("dataset: invalid dataset")
)

//go:embed data/*.yaml
var builtins embed.FS

var validate = validator.New()

// Dataset is one stop/line/walk set plus an optional default query.
type Dataset struct {
	Name  string     `yaml:"name"`
	Stops []StopSpec `yaml:"stops" validate:"required,min=1,unique=ID,dive"`
	Walks []WalkSpec `yaml:"walks" validate:"dive"`
	Query Query      `yaml:"query"`
}

// StopSpec is a stop as written in YAML.
type StopSpec struct {
	ID    core.StopID `yaml:"id" validate:"gt=0"`
	Lines []core.Line `yaml:"lines" validate:"dive,gt=0"`
}

// WalkSpec is an undirected walking connection.
type WalkSpec struct {
	From core.StopID `yaml:"from" validate:"gt=0"`
	To   core.StopID `yaml:"to" validate:"gt=0,nefield=From"`
}

// Query is the default origin and destination. Zero values mean unset.
type Query struct {
	From core.StopID `yaml:"from" validate:"omitempty,gt=0"`
	To   core.StopID `yaml:"to" validate:"omitempty,gt=0"`
}

// IsSet reports whether both ends of the query are given.
func (q Query) IsSet() bool { return q.From != 0 && q.To != 0 }

// Load decodes and validates one YAML dataset from r.
func Load(r io.Reader) (*Dataset, error) {
	raw, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}
	if len(raw) > MaxFileSize {
		return nil, fmt.Errorf("%w: larger than %d bytes", ErrInvalidDataset, MaxFileSize)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var d Dataset
	if err = dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDataset)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}
	if err = d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// LoadFile opens path and calls Load. A missing name defaults to the file
// name without extension.
func LoadFile(p string) (*Dataset, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	if d.Name == "" {
		d.Name = strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
	}

	return d, nil
}

// Builtin returns a fresh copy of the embedded dataset called name.
func Builtin(name string) (*Dataset, error) {
	raw, err := builtins.ReadFile("data/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownDataset, name, strings.Join(Names(), ", "))
	}

	return Load(bytes.NewReader(raw))
}

// Names lists the built-in datasets in lexical order.
func Names() []string {
	entries, _ := builtins.ReadDir("data")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)

	return names
}

// Resolve treats ref as a built-in name first and as a file path otherwise.
func Resolve(ref string) (*Dataset, error) {
	for _, name := range Names() {
		if name == ref {
			return Builtin(ref)
		}
	}
	if _, err := os.Stat(ref); err != nil {
		return nil, fmt.Errorf("%w: %q is neither a built-in name nor a readable file", ErrUnknownDataset, ref)
	}

	return LoadFile(ref)
}

// Validate checks struct rules and cross references.
func (d *Dataset) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDataset, describe(err))
	}
	declared := make(map[core.StopID]bool, len(d.Stops))
	for _, s := range d.Stops {
		declared[s.ID] = true
	}
	for i, w := range d.Walks {
		for _, id := range []core.StopID{w.From, w.To} {
			if !declared[id] {
				return fmt.Errorf("%w: walks[%d] names undeclared stop %d", ErrInvalidDataset, i, id)
			}
		}
	}
	for _, id := range []core.StopID{d.Query.From, d.Query.To} {
		if id != 0 && !declared[id] {
			return fmt.Errorf("%w: query names undeclared stop %d", ErrInvalidDataset, id)
		}
	}

	return nil
}

// describe renders the first validator failure as "field: reason".
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	e := verrs[0]
	field := strings.TrimPrefix(e.Namespace(), "Dataset.")
	switch e.Tag() {
	case "required":
		return field + ": field is required"
	case "min":
		return fmt.Sprintf("%s: must have at least %s entries", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s: must be greater than %s", field, e.Param())
	case "unique":
		return fmt.Sprintf("%s: duplicate %s", field, e.Param())
	case "nefield":
		return field + ": walk connects a stop to itself"
	default:
		return fmt.Sprintf("%s: validation failed (%s)", field, e.Tag())
	}
}

// CoreStops converts the stop specs to core values, in file order.
func (d *Dataset) CoreStops() []core.Stop {
	out := make([]core.Stop, len(d.Stops))
	for i, s := range d.Stops {
		out[i] = core.Stop{ID: s.ID, Lines: append([]core.Line(nil), s.Lines...)}
	}

	return out
}

// CoreWalks converts the walk specs to core values, in file order.
func (d *Dataset) CoreWalks() []core.Walk {
	out := make([]core.Walk, len(d.Walks))
	for i, w := range d.Walks {
		out[i] = core.Walk{From: w.From, To: w.To}
	}

	return out
}

// Network builds the frozen network for d.
func (d *Dataset) Network(opts ...builder.Option) (*core.Network, error) {
	return builder.Build(d.CoreStops(), d.CoreWalks(), opts...)
}
