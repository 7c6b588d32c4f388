package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"go.etcd.io/bbolt"

	"github.com/oliverhees/reptally/internal/replog"
)

const (
	boltBucket = "reptally"
	// logKey is the single namespaced key holding the whole serialized
	// exercise log, replaced on every save
	logKey = "exercise_log"
)

// Bolt persists the exercise log in a local bbolt file: one bucket, one
// key, whole-log replacement on every write.
type Bolt struct {
	db *bbolt.DB
}

// DefaultPath returns the bolt db file location in the user config dir,
// creating the reptally dir if needed.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	dir := filepath.Join(configDir, "reptally")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return filepath.Join(dir, "replog.db"), nil
}

func NewBolt(path string) (*Bolt, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt db [%s]: %w", path, err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	return &Bolt{db: db}, nil
}

// Load reads the stored log. It fails soft: a missing value or a
// malformed payload yields an empty log, and invalid records within an
// otherwise readable payload are discarded, keeping the valid ones.
func (b *Bolt) Load(_ context.Context) ([]replog.Entry, error) {
	var raw []byte
	if err := b.db.View(func(tx *bbolt.Tx) error {
		if value := tx.Bucket([]byte(boltBucket)).Get([]byte(logKey)); value != nil {
			raw = make([]byte, len(value))
			copy(raw, value)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("read stored log: %w", err)
	}

	if raw == nil {
		return []replog.Entry{}, nil
	}

	return decodeLog(raw), nil
}

// Save serializes the whole log and replaces the stored value in one
// write transaction.
func (b *Bolt) Save(_ context.Context, entries []replog.Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal log: %w", err)
	}

	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Put([]byte(logKey), raw)
	})
}

// Clear deletes the stored value, a subsequent Load returns an empty log.
func (b *Bolt) Clear(_ context.Context) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Delete([]byte(logKey))
	})
}

func (b *Bolt) Close() error {
	return b.db.Close()
}

// decodeLog validates every stored record against the entry schema and
// drops the ones that do not conform instead of trusting the stored
// shape. A payload that is not a JSON array at all counts as no log.
func decodeLog(raw []byte) []replog.Entry {
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Warnf("stored log malformed, starting with an empty log: %s", err)
		return []replog.Entry{}
	}

	entries := make([]replog.Entry, 0, len(records))
	for i, record := range records {
		var e replog.Entry
		if err := json.Unmarshal(record, &e); err != nil {
			log.Warnf("stored log record %d malformed, dropped: %s", i, err)
			continue
		}
		if err := e.Validate(); err != nil {
			log.Warnf("stored log record %d invalid, dropped: %s", i, err)
			continue
		}
		entries = append(entries, e)
	}

	return entries
}
