package engine

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	c "github.com/eclypse-prime/pijersi-rs/common"
)

// BookEntry is one opening book line: the move to play and its weight
// (higher is more preferred), matching spec.md section 6's
// "deserializes to HashMap<u64, Move>" contract — weight is parsed and
// stored alongside the move. The book keeps one entry per hash (the
// last line read for it), and Lookup returns only the move.
type BookEntry struct {
	Move   c.Move
	Weight int
}

// Book is an opening book keyed by Zobrist hash.
type Book struct {
	entries map[uint64]BookEntry
}

// LoadBook reads a newline-delimited "hash;move;weight" text file:
// hash as hex uint64, move in its textual move-text form, weight as a
// decimal int. This is this core's own on-disk format — the original
// engine compiles in a "psn;action;score" file read at construction,
// which this keeps the spirit of (a textual, line-oriented format)
// without replicating its PSN-keyed layout, since this core's book is
// keyed by the Zobrist hash it already computes for every position.
func LoadBook(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", c.ErrBookLoadFailure, err)
	}
	defer f.Close()

	book := &Book{entries: make(map[uint64]BookEntry)}
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Split(text, ";")
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: expected 3 fields, got %d", c.ErrBookLoadFailure, line, len(fields))
		}
		hash, err := strconv.ParseUint(fields[0], 16, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad hash: %v", c.ErrBookLoadFailure, line, err)
		}
		move, err := c.ParseMoveString(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad move: %v", c.ErrBookLoadFailure, line, err)
		}
		weight, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad weight: %v", c.ErrBookLoadFailure, line, err)
		}
		book.entries[hash] = BookEntry{Move: move, Weight: weight}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", c.ErrBookLoadFailure, err)
	}
	return book, nil
}

// Lookup returns the book move for hash, if any.
func (b *Book) Lookup(hash uint64) (c.Move, bool) {
	entry, ok := b.entries[hash]
	return entry.Move, ok
}
