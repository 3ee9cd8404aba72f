package domain

import (
	"time"

	"github.com/google/uuid"
)

// KitabEntry is a canonical catalog chapter of a book. Order is unique per
// book and is reassigned on every rebuild.
type KitabEntry struct {
	ID          uuid.UUID `json:"id"`
	Book        string    `json:"book"`
	Order       int       `json:"order"`
	Name        NameSet   `json:"name"`
	RecordCount int       `json:"record_count"`
	MinSeq      int64     `json:"min_seq"`
	MaxSeq      int64     `json:"max_seq"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Identity returns the chapter identity records of this entry carry:
// the order as numeric chapter id plus the current names.
func (e KitabEntry) Identity() ChapterIdentity {
	return ChapterIdentity{Order: e.Order, Name: e.Name}
}

// ChapterIdentity describes how content records refer to a catalog chapter.
// Order is the numeric chapter id (0 when unknown).
type ChapterIdentity struct {
	Order int
	Name  NameSet
}

// MatchStrategy names the rule that linked records to a chapter identity.
type MatchStrategy string

const (
	MatchByOrderID MatchStrategy = "order_id"
	MatchByThName  MatchStrategy = "th_name"
	MatchByArName  MatchStrategy = "ar_name"
	MatchNone      MatchStrategy = "none"
)

// ChapterMatch is a single propagation predicate: records of Book whose
// embedded chapter matches by Strategy.
type ChapterMatch struct {
	Book     string
	Strategy MatchStrategy
	Order    int64
	Name     string
}
