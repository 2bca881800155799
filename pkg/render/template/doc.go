// Package template defines the engine-agnostic template contract used by
// presentation strategies, plus adapters for concrete engines.
package template
