// Package extract turns the catalog's compound free-text fields into typed
// sub-fields. Every extractor is a pure function of a single cell: malformed
// or empty input never fails, it resolves to the extractor's documented
// defaults. The empty string stands for a missing cell on both sides.
package extract
