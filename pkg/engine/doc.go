// Package engine is the dispatch pipeline of the stub server.
//
// Each request is handled synchronously to completion: route match against
// the loaded OpenAPI document, request validation, response resolution
// from the fixture store, optional override processing, final JSON answer.
// Overrides are registered per method and path template in an Overrides
// table; with no registrations every request falls through to the
// generated response unmodified.
//
// Resolution and override failures are authoring errors: the pipeline
// translates them into distinct, readable error responses and never
// retries.
package engine
