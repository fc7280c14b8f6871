// Package toolkit is the HTTP client for the label toolkit service: product
// catalog fetches, server-side CSV parsing, label generation, and the label
// format table with its built-in fallback.
package toolkit
