// Package schema defines the closed template set and the per-template field
// schemas shared by every other component. A template's schema is an ordered
// list of field definitions (text, rich-markup, enum, or list-of-record
// kinds); schemas are registered once at startup and never mutated at
// runtime. The codec, validator, and render dispatcher all resolve templates
// through the Registry and each decide their own fallback when a lookup
// yields ErrTemplateNotFound.
package schema
