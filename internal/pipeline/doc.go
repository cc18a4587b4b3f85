// Package pipeline implements the per-document stages of the content pipeline.
//
// This package handles everything between raw file text and an HTML fragment:
//   - Front matter extraction (YAML between --- delimiters)
//   - Markdown preprocessing (line normalization, fenced code languages)
//   - Markdown to HTML conversion via Goldmark with chroma highlighting
//   - Image reference resolution and copy-on-demand publishing
//
// Directory scanning, metadata defaults, ordering and navigation live in the
// root portfolio package. This package knows nothing about sections or
// settings beyond the values it is handed.
package pipeline
