package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/forkknife/internal/menu"
)

//go:embed schema.cue
var schemaCUE string

//go:embed default.yaml
var defaultYAML []byte

// DefaultCurrency prefixes prices in text output when a catalogue sets none.
const DefaultCurrency = "R"

// Catalogue is a named list of seed dishes, in listing order.
type Catalogue struct {
	Name     string
	Currency string
	Dishes   []menu.Candidate
}

// StoreOptions returns the options that seed a store with c.
func (c *Catalogue) StoreOptions() []menu.StoreOption {
	return []menu.StoreOption{menu.WithSeed(c.Dishes...)}
}

// Default returns the built-in three-dish catalogue.
func Default() *Catalogue {
	c, err := ParseYAML("default.yaml", defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalogue is invalid: %v", err))
	}
	return c
}

// Load reads a catalogue file, choosing the format by extension.
func Load(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeRead, Path: path, Message: "failed to read catalogue", Err: err}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(path, data)
	case ".cue":
		return ParseCUE(path, data)
	default:
		return nil, &LoadError{
			Code:    ErrCodeFormat,
			Path:    path,
			Message: fmt.Sprintf("unsupported catalogue extension %q (want .yaml, .yml or .cue)", filepath.Ext(path)),
		}
	}
}

// yamlFile mirrors the YAML layout. Unknown fields are rejected.
type yamlFile struct {
	Name     string      `yaml:"name"`
	Currency string      `yaml:"currency"`
	Dishes   []yamlEntry `yaml:"dishes"`
}

type yamlEntry struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Course      string     `yaml:"course,omitempty"`
	Price       ScalarText `yaml:"price"`
}

// ScalarText captures a YAML scalar's source text whatever its tag,
// so prices are never routed through float64 and `remove: 1` reads as "1".
type ScalarText string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *ScalarText) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", node.Line)
	}
	*s = ScalarText(node.Value)
	return nil
}

// ParseYAML decodes a YAML catalogue. name is used in error messages.
func ParseYAML(name string, data []byte) (*Catalogue, error) {
	var f yamlFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Path: name, Message: fmt.Sprintf("failed to parse YAML: %v", err), Err: err}
	}

	// Check shape against the same schema CUE catalogues use.
	dishes := make([]any, len(f.Dishes))
	for i, e := range f.Dishes {
		d := map[string]any{
			"name":        e.Name,
			"description": e.Description,
			"price":       string(e.Price),
		}
		if e.Course != "" {
			d["course"] = e.Course
		}
		dishes[i] = d
	}
	doc := map[string]any{"dishes": dishes}
	if f.Name != "" {
		doc["name"] = f.Name
	}
	if f.Currency != "" {
		doc["currency"] = f.Currency
	}

	ctx := cuecontext.New()
	if err := checkSchema(ctx, name, ctx.Encode(doc)); err != nil {
		return nil, err
	}

	c := &Catalogue{Name: f.Name, Currency: f.Currency}
	for _, e := range f.Dishes {
		c.Dishes = append(c.Dishes, menu.Candidate{
			Name:        e.Name,
			Description: e.Description,
			Course:      e.Course,
			Price:       string(e.Price),
		})
	}
	return finish(name, c)
}

// ParseCUE compiles and decodes a CUE catalogue. name is used as the
// CUE filename so positions in errors point at the file.
func ParseCUE(name string, data []byte) (*Catalogue, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(name))
	if err := v.Err(); err != nil {
		le := schemaError(name, err)
		le.Code = ErrCodeParse
		return nil, le
	}
	if err := checkSchema(ctx, name, v); err != nil {
		return nil, err
	}

	c := &Catalogue{
		Name:     lookupString(v, "name"),
		Currency: lookupString(v, "currency"),
	}

	iter, err := v.LookupPath(cue.ParsePath("dishes")).List()
	if err != nil {
		return nil, schemaError(name, err)
	}
	for iter.Next() {
		dv := iter.Value()
		c.Dishes = append(c.Dishes, menu.Candidate{
			Name:        lookupString(dv, "name"),
			Description: lookupString(dv, "description"),
			Course:      lookupString(dv, "course"),
			Price:       scalarString(dv.LookupPath(cue.ParsePath("price"))),
		})
	}
	return finish(name, c)
}

// checkSchema unifies v with #Catalogue and requires a concrete result.
func checkSchema(ctx *cue.Context, name string, v cue.Value) error {
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return schemaError("schema.cue", err)
	}
	unified := schema.LookupPath(cue.ParsePath("#Catalogue")).Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return schemaError(name, err)
	}
	return nil
}

// finish validates every dish and fills defaults.
func finish(name string, c *Catalogue) (*Catalogue, error) {
	for i, d := range c.Dishes {
		if _, err := d.Validate(); err != nil {
			return nil, &LoadError{
				Code:    ErrCodeInvalidDish,
				Path:    name,
				Message: fmt.Sprintf("dishes[%d]: %v", i, err),
				Err:     err,
			}
		}
	}
	if c.Currency == "" {
		c.Currency = DefaultCurrency
	}
	return c, nil
}

func lookupString(v cue.Value, field string) string {
	s, err := v.LookupPath(cue.ParsePath(field)).String()
	if err != nil {
		return ""
	}
	return s
}

// scalarString renders a concrete string or number as text.
func scalarString(v cue.Value) string {
	if s, err := v.String(); err == nil {
		return s
	}
	b, err := v.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(b)
}
