// Package content implements the bidirectional codec between a page's
// persisted blob and the structured, per-template value set an editor
// manipulates, plus the identity-tracked dynamic lists backing list-of-record
// fields. Decode and Encode are pure functions of their inputs and the
// read-only schema registry: decode anomalies (missing keys, structural type
// mismatches) recover to typed defaults so malformed persisted data never
// blocks an editor from opening a page, while encode writes exactly the
// declared field set and nothing else.
package content
