// Package fuel acquires current regional fuel prices from a published
// bulletin and falls back to fixed defaults whenever the bulletin cannot be
// fetched or read.
package fuel
