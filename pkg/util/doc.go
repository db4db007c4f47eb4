// Package util provides shared helpers used across stubd packages.
//
//   - DeepCopyMap / DeepCopyValue — structural copies of JSON-shaped payloads
//   - TruncateBody — cap request/response bodies for safe logging
package util
