package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"finmate/statements/internal/logging"
	"finmate/statements/internal/textcluster"
)

// ModelStore is the durable-storage capability for the trained fallback
// model. There is one global model, keyed by nothing.
type ModelStore interface {
	// Load returns the persisted model, or found=false when none exists.
	Load() (model *textcluster.Model, found bool, err error)
	// Save persists the model, replacing any previous one.
	Save(model *textcluster.Model) error
	// Reset removes the persisted model so the next classification retrains.
	Reset() error
}

// FileModelStore persists the model as JSON at a fixed path. Save writes to a
// temp file in the same directory and renames it into place, so concurrent
// first-time trainers race safely: last writer wins, readers never observe a
// partial file.
type FileModelStore struct {
	Path   string
	logger logging.Logger
}

// NewFileModelStore creates a store writing to the given path.
func NewFileModelStore(path string, logger logging.Logger) *FileModelStore {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &FileModelStore{Path: path, logger: logger}
}

// Load reads and validates the persisted model.
func (s *FileModelStore) Load() (*textcluster.Model, bool, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading model file: %w", err)
	}

	var model textcluster.Model
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, false, fmt.Errorf("decoding model file '%s': %w", s.Path, err)
	}

	s.logger.Debug("Loaded classification model",
		logging.Field{Key: logging.FieldModel, Value: s.Path})
	return &model, true, nil
}

// Save atomically replaces the persisted model.
func (s *FileModelStore) Save(model *textcluster.Model) error {
	data, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("encoding model: %w", err)
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating model directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".model-*.json")
	if err != nil {
		return fmt.Errorf("creating temp model file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing temp model file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing temp model file: %w", err)
	}

	if err := os.Rename(tmpName, s.Path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing model file: %w", err)
	}

	s.logger.Info("Saved classification model",
		logging.Field{Key: logging.FieldModel, Value: s.Path})
	return nil
}

// Reset deletes the persisted model if present.
func (s *FileModelStore) Reset() error {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing model file: %w", err)
	}
	return nil
}

// MemoryModelStore keeps the model in process memory. Used in tests and by
// callers that want classification without touching disk.
type MemoryModelStore struct {
	Model   *textcluster.Model
	LoadErr error
	SaveErr error
}

func (s *MemoryModelStore) Load() (*textcluster.Model, bool, error) {
	if s.LoadErr != nil {
		return nil, false, s.LoadErr
	}
	return s.Model, s.Model != nil, nil
}

func (s *MemoryModelStore) Save(model *textcluster.Model) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Model = model
	return nil
}

func (s *MemoryModelStore) Reset() error {
	s.Model = nil
	return nil
}
