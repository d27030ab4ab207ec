// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

// Storage persists solved answers so unchanged inputs are not re-solved.
// Answers are keyed by day, part, solver revision and a digest of the input
// text: editing an input file or bumping a day's revision misses the cache.
//
// Crash safety: SaveAnswer must be transactional. A crash mid-write must not
// corrupt previously committed answers.
type Storage interface {
	// SaveAnswer stores rec under its key. Overwrites any prior answer.
	SaveAnswer(rec *AnswerRecord) error

	// LoadAnswer retrieves the answer for key.
	// Returns nil, nil on a cache miss.
	LoadAnswer(key AnswerKey) (*AnswerRecord, error)

	// ListAnswers returns every stored answer ordered by day, part, revision,
	// digest.
	ListAnswers() ([]*AnswerRecord, error)

	// DeleteDay removes every answer for one day.
	// Idempotent: deleting a day with no answers is not an error.
	DeleteDay(day int) error

	// Clear removes every stored answer. Idempotent.
	Clear() error
}

// AnswerKey identifies one cached answer.
type AnswerKey struct {
	Day      int
	Part     int
	Revision int    // puzzle.Day.Revision of the solver that produced it
	Digest   string // hex sha256 of the input text
}

// AnswerRecord is a cached answer plus bookkeeping.
type AnswerRecord struct {
	Day       int    `json:"day"`
	Part      int    `json:"part"`
	Revision  int    `json:"revision"`
	Digest    string `json:"digest"`
	Value     int64  `json:"value"`
	ElapsedNs int64  `json:"elapsed_ns"` // solve time when first computed
	SolvedAt  int64  `json:"solved_at"`  // unix seconds
}

// Key returns the record's cache key.
func (r *AnswerRecord) Key() AnswerKey {
	return AnswerKey{Day: r.Day, Part: r.Part, Revision: r.Revision, Digest: r.Digest}
}
