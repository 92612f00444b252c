package docstore

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/docstow/pkg/errors"
	"github.com/arthur-debert/docstow/pkg/filesystem"
	"github.com/arthur-debert/docstow/pkg/logging"
	"github.com/arthur-debert/docstow/pkg/paths"
	"github.com/arthur-debert/docstow/pkg/types"
)

// FileMode is the permission used for files written by the store
const FileMode = 0o644

// Store provides read/write/list/exists operations against the
// per-user Documents directory. The zero value is not usable; use New.
type Store struct {
	fs      types.FS
	resolve paths.Resolver
	logger  zerolog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithFS sets the file-system implementation (default: the OS)
func WithFS(fsys types.FS) Option {
	return func(s *Store) {
		s.fs = fsys
	}
}

// WithResolver sets the documents-root resolver (default: the host
// path-search service via pkg/paths)
func WithResolver(r paths.Resolver) Option {
	return func(s *Store) {
		s.resolve = r
	}
}

// New creates a Store. With no options it operates on the host
// file system and resolves the documents root from the environment
// on every call.
func New(opts ...Option) *Store {
	s := &Store{
		fs:      filesystem.NewOS(),
		resolve: paths.New().DocumentsDir,
		logger:  logging.GetLogger("docstore"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List enumerates the immediate children of the documents root.
// It fails with ErrDocumentsFolderNotFound when the root cannot be
// resolved; enumeration failures are wrapped as ErrFailed.
func (s *Store) List() ([]fs.DirEntry, error) {
	root, err := s.resolve()
	if err != nil {
		return nil, err
	}
	return s.ListDir(root)
}

// ListDir enumerates the immediate children of an arbitrary
// directory. The listing is shallow; failures are wrapped as
// ErrFailed.
func (s *Store) ListDir(dir string) ([]fs.DirEntry, error) {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFailed, "failed to list %s", dir)
	}
	s.logger.Debug().Str("dir", dir).Int("entries", len(entries)).Msg("Listed directory")
	return entries, nil
}

// Exists reports whether a named file exists under the documents
// root. It never returns an error: any failure, including an
// unresolvable root, degrades to false.
func (s *Store) Exists(name string) bool {
	root, err := s.resolve()
	if err != nil {
		return false
	}
	_, err = s.fs.Stat(filepath.Join(root, name))
	return err == nil
}

// WriteText encodes text as UTF-8 and writes it to the named file
// under the documents root, replacing any existing file atomically.
func (s *Store) WriteText(text, name string) error {
	root, err := s.resolve()
	if err != nil {
		return err
	}
	if err := s.writeFile(root, name, []byte(text)); err != nil {
		return err
	}
	s.logger.Debug().Str("file", name).Int("bytes", len(text)).Msg("Wrote text file")
	return nil
}

// Read returns the raw bytes of the named file under the documents
// root. A missing file is a wrapped ErrFailed, not an empty result.
func (s *Store) Read(name string) ([]byte, error) {
	root, err := s.resolve()
	if err != nil {
		return nil, err
	}
	return s.ReadPath(filepath.Join(root, name))
}

// ReadPath returns the raw bytes of an explicit file path, without
// resolving the documents root.
func (s *Store) ReadPath(path string) ([]byte, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFailed, "failed to read %s", path)
	}
	return data, nil
}

// Save serializes a value to canonical JSON and writes it to the
// named file under the documents root. The serialized form is
// pretty-printed, has its object keys sorted at every nesting level,
// and never escapes the solidus, so persisted files are deterministic
// and diff-friendly.
//
// If the serialized bytes are not valid UTF-8 (defensive; well-formed
// JSON always is), Save fails with ErrUnableToPersist.
func (s *Store) Save(v interface{}, name string) error {
	root, err := s.resolve()
	if err != nil {
		return err
	}

	data, err := MarshalCanonical(v)
	if err != nil {
		return err
	}
	if !utf8.Valid(data) {
		return errors.Newf(errors.ErrUnableToPersist,
			"serialized form of %T is not valid UTF-8 text", v).
			WithDetail("value", fmt.Sprintf("%T", v)).
			WithDetail("filename", name)
	}

	if err := s.writeFile(root, name, data); err != nil {
		return err
	}
	s.logger.Debug().Str("file", name).Str("type", fmt.Sprintf("%T", v)).Msg("Saved object")
	return nil
}

// Decoder turns serialized bytes back into a value
type Decoder func(data []byte, target interface{}) error

// LoadOption configures a single Load call
type LoadOption func(*loadConfig)

type loadConfig struct {
	decode Decoder
}

// WithDecoder substitutes the decoder used by Load (default:
// json.Unmarshal)
func WithDecoder(d Decoder) LoadOption {
	return func(c *loadConfig) {
		c.decode = d
	}
}

// Load reads the named file under the documents root and decodes it
// into target. Decode failures propagate unwrapped.
func (s *Store) Load(name string, target interface{}, opts ...LoadOption) error {
	cfg := loadConfig{decode: json.Unmarshal}
	for _, opt := range opts {
		opt(&cfg)
	}

	data, err := s.Read(name)
	if err != nil {
		return err
	}
	return cfg.decode(data, target)
}

// writeFile performs the atomic replace-or-create write: the data
// goes to a dot-prefixed temp name in the target's directory, then a
// rename moves it over the target.
func (s *Store) writeFile(root, name string, data []byte) error {
	target := filepath.Join(root, name)
	tmp := filepath.Join(filepath.Dir(target), "."+filepath.Base(target)+".tmp")

	if err := s.fs.WriteFile(tmp, data, FileMode); err != nil {
		return errors.Wrapf(err, errors.ErrFailed, "failed to write %s", name)
	}
	if err := s.fs.Rename(tmp, target); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFailed, "failed to replace %s", name)
	}
	return nil
}
