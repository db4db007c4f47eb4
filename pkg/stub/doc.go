// Package stub implements the response-resolution and safe-mutation core
// of the stub engine.
//
// Given a schema fragment describing the current endpoint's success
// response and a fixture store, Resolve produces a generated response:
// either a deep copy of a single resource fixture, or a list envelope
// whose "data" property holds one fixture-derived element. Resolution
// failures are deliberate, loud authoring errors (FixtureNotFoundError),
// never retried.
//
// Override code inspects and edits the generated response through an
// Exchange, whose ModifyGeneratedResponse wraps the response in a
// Restricted view: a key-restricted map that refuses reads and writes of
// keys the generated response never declared, unless the caller relaxes
// the guard for that operation. This keeps per-test overrides from
// silently introducing fields the schema never produced.
package stub
