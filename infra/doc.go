// Package infra contains technical adapters for the core packages. These
// packages should depend only on the interfaces defined in core.
package infra
