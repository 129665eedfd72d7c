package character

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
)

const fileExt = ".json"

type fileRepository struct {
	dir   string
	clock clock.Clock
}

// FileConfig contains configuration for the JSON file character repository.
// Each character is stored as <Dir>/<id>.json in the classic save format.
type FileConfig struct {
	Dir   string
	Clock clock.Clock
}

// Validate validates the FileConfig.
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Dir", cfg.Dir, vb)
	return vb.Build()
}

// NewFile creates a new file-backed character repository. The directory is
// created if missing.
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
		return nil, errors.Wrapf(err, "failed to create data dir %s", cfg.Dir)
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &fileRepository{dir: cfg.Dir, clock: c}, nil
}

func (r *fileRepository) path(id string) (string, error) {
	if id == "" {
		return "", errors.InvalidArgument(errCharacterIDEmpty)
	}
	if strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", errors.InvalidArgumentf("invalid character ID %q", id)
	}
	return filepath.Join(r.dir, id+fileExt), nil
}

func (r *fileRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	path, err := r.path(input.ID)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID).
				WithMeta("character_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to read character")
	}

	char, err := Decode(data, input.ID)
	if err != nil {
		slog.WarnContext(ctx, "corrupt character file",
			"character_id", input.ID,
			"path", path,
			"error", err.Error())
		return nil, err
	}

	return &GetOutput{Character: char}, nil
}

func (r *fileRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	path, err := r.path(input.Character.ID)
	if err != nil {
		return nil, err
	}

	char := input.Character
	if char.UpdatedAt.IsZero() {
		char.UpdatedAt = r.clock.Now()
	}

	data, err := Encode(char)
	if err != nil {
		return nil, err
	}

	// write then rename so a crash never leaves a half written save
	tmp, err := os.CreateTemp(r.dir, char.ID+".*.tmp")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save character")
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return nil, errors.Wrapf(err, "failed to save character")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return nil, errors.Wrapf(err, "failed to save character")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return nil, errors.Wrapf(err, "failed to save character")
	}

	slog.DebugContext(ctx, "saved character",
		"character_id", char.ID,
		"path", path)

	return &SaveOutput{Character: char}, nil
}

func (r *fileRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	path, err := r.path(input.ID)
	if err != nil {
		return nil, err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID).
				WithMeta("character_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *fileRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", r.dir)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != fileExt {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), fileExt))
	}
	sort.Strings(ids)

	out := &ListOutput{}
	for _, id := range ids {
		got, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get character %s", id)
		}
		out.Characters = append(out.Characters, got.Character)
	}

	return out, nil
}
