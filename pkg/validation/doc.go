// Package validation rejects malformed requests against the loaded OpenAPI
// document before the stub core runs.
//
// A Validator matches each incoming request to an operation with the
// kin-openapi router and validates parameters and body with openapi3filter.
// Failures come back as a Result of field-level errors that the dispatch
// pipeline turns into a 400 response; the route match itself is reused by
// the pipeline to locate the operation's response schema.
package validation
