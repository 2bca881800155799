package content

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrItemNotFound reports a list operation against an identity the list does
// not hold. It indicates the editing surface and list state have
// desynchronized, so it is surfaced rather than swallowed.
var ErrItemNotFound = errors.New("content: list item not found")

// ItemID is the transient identity assigned to a list item for the duration
// of an editing session. It lets an editing surface track which rendered row
// corresponds to which data across append and remove; it is never persisted.
type ItemID string

// Record is one list item's field values, keyed by sub-field name. Values are
// always scalars (plain text or an enum tag).
type Record map[string]string

// Item pairs a record with its transient identity.
type Item struct {
	ID     ItemID
	Record Record
}

// List is an ordered collection of records with UI-stable item identity. Data
// lives in an arena keyed by identity while a separate ordered sequence of
// identities carries display order, keeping append and remove O(1)
// bookkeeping. Ordering is always insertion order.
type List struct {
	arena map[ItemID]Record
	order []ItemID
}

// NewList creates an empty list.
func NewList() *List {
	return &List{arena: make(map[ItemID]Record)}
}

func newItemID() ItemID {
	return ItemID(uuid.NewString())
}

// Len returns the number of items.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.order)
}

// Append adds one record at the end of the list under a fresh identity,
// distinct from every existing item's, and returns that identity. The record
// is copied so later caller mutations cannot alias list state.
func (l *List) Append(record Record) ItemID {
	id := newItemID()
	l.arena[id] = cloneRecord(record)
	l.order = append(l.order, id)
	return id
}

// Remove deletes the item with the given identity. A missing identity is a
// caller error reported as ErrItemNotFound.
func (l *List) Remove(id ItemID) error {
	if _, ok := l.arena[id]; !ok {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	delete(l.arena, id)
	for i, existing := range l.order {
		if existing == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return nil
}

// SetField replaces one field's value in the item matching id.
func (l *List) SetField(id ItemID, field, value string) error {
	record, ok := l.arena[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	record[field] = value
	return nil
}

// Field reads one field's value from the item matching id.
func (l *List) Field(id ItemID, field string) (string, error) {
	record, ok := l.arena[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return record[field], nil
}

// Items returns the list contents in display order. Records are copies;
// mutate through SetField so identity bookkeeping stays coherent.
func (l *List) Items() []Item {
	if l == nil || len(l.order) == 0 {
		return nil
	}
	out := make([]Item, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, Item{ID: id, Record: cloneRecord(l.arena[id])})
	}
	return out
}

// IDs returns the item identities in display order.
func (l *List) IDs() []ItemID {
	if l == nil || len(l.order) == 0 {
		return nil
	}
	return append([]ItemID(nil), l.order...)
}

// Clone returns a deep copy of the list. Item identities are preserved: the
// copy describes the same editing session rows.
func (l *List) Clone() *List {
	out := NewList()
	if l == nil {
		return out
	}
	for _, id := range l.order {
		out.arena[id] = cloneRecord(l.arena[id])
		out.order = append(out.order, id)
	}
	return out
}

func cloneRecord(record Record) Record {
	out := make(Record, len(record))
	for field, value := range record {
		out[field] = value
	}
	return out
}
