// Package hashing provides position hashing and duplicate detection for
// replayed lines.
package hashing

import "github.com/lgbarn/fenmove-go/internal/engine"

// DuplicateDetector tracks final positions already seen.
// It is not safe for concurrent use; feed it from one goroutine.
type DuplicateDetector struct {
	// hashTable stores seen positions by Zobrist hash
	hashTable map[uint64][]Signature
	// matchCounters also requires equal halfmove clock and move number
	matchCounters bool
	// maxCapacity bounds the number of stored positions (0 = unlimited)
	maxCapacity int
	size        int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// Signature stores identifying information about a position.
type Signature struct {
	Hash     uint64
	WeakHash uint32
	Position engine.Position
}

// NewDuplicateDetector creates a new duplicate detector. With
// matchCounters set, positions that differ only in their move counters
// are distinct. maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(matchCounters bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]Signature),
		matchCounters: matchCounters,
		maxCapacity:   maxCapacity,
	}
}

// CheckAndAdd reports whether pos was seen before, and records it if not.
// Once the detector is full new positions are still checked but no longer
// recorded.
func (d *DuplicateDetector) CheckAndAdd(pos engine.Position) bool {
	sig := Signature{
		Hash:     GenerateZobristHash(pos),
		WeakHash: WeakHash(pos),
		Position: pos,
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if !d.IsFull() {
		d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
		d.size++
	}
	return false
}

// signaturesMatch checks if two signatures describe the same position.
func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.matchCounters {
		return a.Position == b.Position
	}
	return a.Position.Board() == b.Position.Board() &&
		a.Position.ToMove() == b.Position.ToMove() &&
		a.Position.Castling() == b.Position.Castling() &&
		sameEnPassant(a.Position, b.Position)
}

func sameEnPassant(a, b engine.Position) bool {
	epA, okA := a.EnPassant()
	epB, okB := b.EnPassant()
	return okA == okB && epA == epB
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.size = 0
	d.duplicateCount = 0
}
