// Package schema loads the OpenAPI document describing the stubbed API and
// distills per-endpoint response fragments from it.
//
// The document is loaded and validated once at startup and is immutable
// afterwards. Resource kinds are tagged in the document with the
// x-resourceId extension; a Fragment carries that tag together with the
// declared property names of the response schema, which is all the
// resolver needs to pick a fixture and to recognize list envelopes.
package schema
