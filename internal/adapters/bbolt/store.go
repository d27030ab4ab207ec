// Package bbolt implements the ports.Storage interface using bbolt (embedded B+ tree).
// A top-level "answers" bucket holds one sub-bucket per day ("day_06"). Within a
// day bucket, keys are "<part>:<revision>:<input digest>" and values are JSON answer
// records.
// Writes are transactional: a crash mid-write cannot corrupt committed answers.
package bbolt

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/corey/advent/internal/ports"
	bolt "go.etcd.io/bbolt"
)

// Bucket keys
var bucketAnswers = []byte("answers")

// Store implements ports.Storage backed by bbolt.
type Store struct {
	db *bolt.DB
}

var _ ports.Storage = (*Store)(nil)

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

func dayBucket(day int) []byte {
	return []byte(fmt.Sprintf("day_%02d", day))
}

func answerKey(k ports.AnswerKey) []byte {
	return []byte(strconv.Itoa(k.Part) + ":" + strconv.Itoa(k.Revision) + ":" + k.Digest)
}

// SaveAnswer persists one answer.
func (s *Store) SaveAnswer(rec *ports.AnswerRecord) error {
	if rec == nil {
		return fmt.Errorf("nil answer record")
	}
	if rec.Digest == "" {
		return fmt.Errorf("answer for day %d part %d has no input digest", rec.Day, rec.Part)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal answer: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		root, err := tx.CreateBucketIfNotExists(bucketAnswers)
		if err != nil {
			return err
		}
		db, err := root.CreateBucketIfNotExists(dayBucket(rec.Day))
		if err != nil {
			return err
		}
		return db.Put(answerKey(rec.Key()), data)
	})
}

// LoadAnswer retrieves one answer.
// Returns nil, nil on a cache miss.
func (s *Store) LoadAnswer(key ports.AnswerKey) (*ports.AnswerRecord, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		root := tx.Bucket(bucketAnswers)
		if root == nil {
			return nil
		}
		db := root.Bucket(dayBucket(key.Day))
		if db == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := db.Get(answerKey(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var rec ports.AnswerRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal answer: %w", err)
	}
	return &rec, nil
}

// ListAnswers returns every stored answer ordered by day, part, revision, digest.
func (s *Store) ListAnswers() ([]*ports.AnswerRecord, error) {
	var out []*ports.AnswerRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		root := tx.Bucket(bucketAnswers)
		if root == nil {
			return nil
		}
		return root.ForEachBucket(func(name []byte) error {
			if !strings.HasPrefix(string(name), "day_") {
				return nil
			}
			return root.Bucket(name).ForEach(func(k, v []byte) error {
				var rec ports.AnswerRecord
				if err := json.Unmarshal(v, &rec); err != nil {
					return fmt.Errorf("unmarshal answer %s/%s: %w", name, k, err)
				}
				out = append(out, &rec)
				return nil
			})
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		if out[i].Part != out[j].Part {
			return out[i].Part < out[j].Part
		}
		if out[i].Revision != out[j].Revision {
			return out[i].Revision < out[j].Revision
		}
		return out[i].Digest < out[j].Digest
	})
	return out, nil
}

// DeleteDay removes every answer for one day.
// Idempotent: deleting a day with no answers is not an error.
func (s *Store) DeleteDay(day int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket(bucketAnswers)
		if root == nil {
			return nil
		}
		err := root.DeleteBucket(dayBucket(day))
		if err == bolt.ErrBucketNotFound {
			return nil
		}
		return err
	})
}

// Clear removes every stored answer. Idempotent.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket(bucketAnswers)
		if err == bolt.ErrBucketNotFound {
			return nil
		}
		return err
	})
}
