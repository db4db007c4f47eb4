// Package fixture provides the canned example payloads the stub engine
// answers with.
//
// A Store maps resource identifiers to JSON-shaped payloads. It is
// populated once at startup, from a single JSON/YAML file or from a
// directory of per-resource files, and is read-only afterwards, so it may
// be shared freely across requests and parallel test workers.
//
// Lookup misses are a normal outcome, not an error: the resolver decides
// what a miss means for the current endpoint.
package fixture
