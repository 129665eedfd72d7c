package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

var fileExtensions = []string{".json", ".yaml", ".yml"}

// legacyFileNames are the data file names of catalogs whose id is spelled in ASCII
var legacyFileNames = map[string]string{
	"praest": "præst",
}

// fileEnvelope is the object form of a catalog file. A file may also be a bare
// list of records.
type fileEnvelope struct {
	Class     string                   `json:"class" yaml:"class"`
	Name      string                   `json:"name" yaml:"name"`
	Stat      *entities.StatFormula    `json:"stat,omitempty" yaml:"stat,omitempty"`
	Abilities []entities.AbilityRecord `json:"abilities" yaml:"abilities"`
}

type fileSource struct {
	dir   string
	files map[string]string
}

// FileConfig configures the file catalog source
type FileConfig struct {
	// Dir holds one file per catalog, <id>.json, <id>.yaml or <id>.yml
	Dir string
	// Files overrides the file name of specific catalog ids
	Files map[string]string
}

// Validate validates the FileConfig
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Dir", cfg.Dir, vb)
	return vb.Build()
}

// NewFile creates a source reading catalogs from a directory
func NewFile(cfg *FileConfig) (Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	files := make(map[string]string, len(cfg.Files))
	for k, v := range cfg.Files {
		files[k] = v
	}

	return &fileSource{
		dir:   cfg.Dir,
		files: files,
	}, nil
}

func (f *fileSource) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.CatalogID == "" {
		return nil, errors.InvalidArgument("catalog ID cannot be empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Canceled("load canceled")
	}

	path, err := f.resolve(input.CatalogID)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "reading catalog file",
		"catalog_id", input.CatalogID,
		"path", path)

	data, err := os.ReadFile(path) // #nosec G304 -- path is built from the configured catalog dir
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog file %s", path)
	}

	c, err := Decode(input.CatalogID, filepath.Ext(path), data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode catalog file %s", path)
	}

	return &LoadOutput{Catalog: c}, nil
}

func (f *fileSource) resolve(catalogID string) (string, error) {
	if name, ok := f.files[catalogID]; ok {
		if filepath.IsAbs(name) {
			return name, nil
		}
		return filepath.Join(f.dir, name), nil
	}

	bases := []string{catalogID}
	if legacy, ok := legacyFileNames[catalogID]; ok {
		bases = append(bases, legacy)
	}

	for _, base := range bases {
		for _, ext := range fileExtensions {
			path := filepath.Join(f.dir, base+ext)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
	}

	return "", errors.NotFoundf("no catalog file for %s in %s", catalogID, f.dir).
		WithMeta("catalog_id", catalogID)
}

// Decode parses catalog data. ext selects JSON or YAML.
// Returns errors.ParseError for malformed data or duplicate ids
func Decode(catalogID, ext string, data []byte) (*Catalog, error) {
	var (
		env fileEnvelope
		err error
	)

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		env, err = decodeYAML(data)
	default:
		env, err = decodeJSON(data)
	}
	if err != nil {
		return nil, err
	}

	class := entities.ClassForCatalog(catalogID)
	if env.Class != "" {
		class, err = entities.ParseClassTag(env.Class)
		if err != nil {
			return nil, errors.WrapParseError(err, "invalid catalog class")
		}
	}

	return New(&Config{
		ID:      catalogID,
		Name:    env.Name,
		Class:   class,
		Records: env.Abilities,
		Stat:    env.Stat,
	})
}

func decodeJSON(data []byte) (fileEnvelope, error) {
	var env fileEnvelope

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return env, errors.ParseErrorf("catalog file is empty")
	}

	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &env.Abilities); err != nil {
			return env, errors.WrapParseError(err, "invalid catalog records")
		}
		return env, nil
	}

	if err := json.Unmarshal(trimmed, &env); err != nil {
		return env, errors.WrapParseError(err, "invalid catalog envelope")
	}
	return env, nil
}

func decodeYAML(data []byte) (fileEnvelope, error) {
	var env fileEnvelope

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return env, errors.WrapParseError(err, "invalid catalog yaml")
	}

	node := &doc
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return env, errors.ParseErrorf("catalog file is empty")
		}
		node = node.Content[0]
	}

	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&env.Abilities); err != nil {
			return env, errors.WrapParseError(err, "invalid catalog records")
		}
	case yaml.MappingNode:
		if err := node.Decode(&env); err != nil {
			return env, errors.WrapParseError(err, "invalid catalog envelope")
		}
	default:
		return env, errors.ParseErrorf("catalog must be a list or a mapping")
	}
	return env, nil
}
