// Package store implements the flat-file persistence layer: one JSON
// document per entity kind under the data directory, rewritten wholesale on
// every mutation. Record counts are personal-scale, so simplicity wins over
// write efficiency.
//
// Failure policy is asymmetric: reads never fail visibly (a missing or
// corrupt file degrades to the empty collection and is logged) while
// mutations return errors and expose no partial state.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/openclaw/lifeos-server/internal/domain"
)

const (
	lockTimeout   = 3 * time.Second
	lockRetry     = 100 * time.Millisecond
	filePerm      = 0o644
	dirPerm       = 0o755
	marshalIndent = "  "
)

// Collection is a generic JSON-file-backed sequence of records. T is a
// pointer type embedding domain.Meta. A sync.Mutex serializes in-process
// writers; a flock file lock guards against a second process on the same
// files. Cross-process last-writer-wins on the whole file remains possible
// and is documented as an accepted limitation.
type Collection[T domain.Record] struct {
	kind   string
	prefix string
	path   string
	flk    *flock.Flock
	mu     sync.Mutex
	log    *slog.Logger
	now    func() time.Time
}

// NewCollection creates a collection persisting to <dir>/<kind>.json with
// ids of the form <prefix>-<uuid>.
func NewCollection[T domain.Record](dir, kind, prefix string, log *slog.Logger) *Collection[T] {
	path := filepath.Join(dir, kind+".json")
	return &Collection[T]{
		kind:   kind,
		prefix: prefix,
		path:   path,
		flk:    flock.New(path + ".lock"),
		log:    log.With(slog.String("collection", kind)),
		now:    time.Now,
	}
}

// List returns all records in insertion order. A missing file yields an
// empty slice; so does an unreadable or corrupt one, after logging. Callers
// can always render something.
func (c *Collection[T]) List(ctx context.Context) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	unlock, err := c.lock(ctx)
	if err != nil {
		c.log.ErrorContext(ctx, "acquire file lock", slog.String("error", err.Error()))
		return []T{}
	}
	defer unlock()

	return c.load(ctx)
}

// Append assigns the record its id and createdAt, appends it, and rewrites
// the file. On any I/O failure the record is not exposed and the previous
// contents stay authoritative.
func (c *Collection[T]) Append(ctx context.Context, rec T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	unlock, err := c.lock(ctx)
	if err != nil {
		return zero, fmt.Errorf("%s: acquire file lock: %w", c.kind, err)
	}
	defer unlock()

	meta := rec.RecordMeta()
	meta.ID = fmt.Sprintf("%s-%s", c.prefix, uuid.New())
	meta.CreatedAt = c.now().UTC()
	meta.UpdatedAt = nil

	recs := c.load(ctx)
	recs = append(recs, rec)
	if err := c.save(recs); err != nil {
		return zero, err
	}

	return rec, nil
}

// Update locates the record by id, applies the mutation, stamps updatedAt,
// and rewrites the file. Returns domain.ErrNotFound, without touching the
// file, when no record matches.
func (c *Collection[T]) Update(ctx context.Context, id string, apply func(T)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	unlock, err := c.lock(ctx)
	if err != nil {
		return zero, fmt.Errorf("%s: acquire file lock: %w", c.kind, err)
	}
	defer unlock()

	recs := c.load(ctx)
	for _, rec := range recs {
		if rec.RecordMeta().ID != id {
			continue
		}
		apply(rec)
		rec.RecordMeta().Touch(c.now())
		if err := c.save(recs); err != nil {
			return zero, err
		}
		return rec, nil
	}

	return zero, fmt.Errorf("%s %s: %w", c.kind, id, domain.ErrNotFound)
}

// Delete rewrites the file with the matching record excluded and reports
// whether one existed. The rewrite happens even when nothing matched, so a
// repeat call is observably identical.
func (c *Collection[T]) Delete(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	unlock, err := c.lock(ctx)
	if err != nil {
		return false, fmt.Errorf("%s: acquire file lock: %w", c.kind, err)
	}
	defer unlock()

	recs := c.load(ctx)
	kept := make([]T, 0, len(recs))
	found := false
	for _, rec := range recs {
		if rec.RecordMeta().ID == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}

	if err := c.save(kept); err != nil {
		return false, err
	}
	return found, nil
}

// Replace overwrites the whole collection with the supplied sequence.
// Records keep the ids and timestamps they arrive with; snapshot import is
// the only caller.
func (c *Collection[T]) Replace(ctx context.Context, recs []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	unlock, err := c.lock(ctx)
	if err != nil {
		return fmt.Errorf("%s: acquire file lock: %w", c.kind, err)
	}
	defer unlock()

	if recs == nil {
		recs = []T{}
	}
	return c.save(recs)
}

// Kind returns the collection's kind name.
func (c *Collection[T]) Kind() string { return c.kind }

// lock acquires the flock with a bounded retry loop. The returned func
// releases it.
func (c *Collection[T]) lock(ctx context.Context) (func(), error) {
	ctx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	locked, err := c.flk.TryLockContext(ctx, lockRetry)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, errors.New("file lock not acquired")
	}
	return func() { _ = c.flk.Unlock() }, nil
}

// load reads and decodes the backing file while the locks are held. Every
// failure short of success degrades to the empty collection: a corrupt file
// is logged and then superseded by the next mutation's rewrite. Silent data
// loss on corruption is the documented tradeoff.
func (c *Collection[T]) load(ctx context.Context) []T {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.log.ErrorContext(ctx, "read collection", slog.String("error", err.Error()))
		}
		return []T{}
	}
	if len(data) == 0 {
		return []T{}
	}

	var recs []T
	if err := json.Unmarshal(data, &recs); err != nil {
		c.log.ErrorContext(ctx, "decode collection, starting empty",
			slog.String("path", c.path),
			slog.String("error", err.Error()),
		)
		return []T{}
	}
	return recs
}

// save writes the full sequence atomically: temp file in the same directory,
// then rename over the target.
func (c *Collection[T]) save(recs []T) error {
	data, err := json.MarshalIndent(recs, "", marshalIndent)
	if err != nil {
		return fmt.Errorf("%s: encode collection: %w", c.kind, err)
	}
	return writeAtomic(c.path, data)
}

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, filePerm); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
