// Package serializer provides encoding and decoding of trophe documents in
// multiple formats.
//
// # Overview
//
// The serializer package handles conversion between document structures and
// various output formats including JSON, YAML, and human-readable tables. It
// supports both encoding (writing data) and decoding (reading data) with
// automatic format detection from file extensions.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented representation
//   - Suitable for API responses and programmatic consumption
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - Suitable for configuration files and version control
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened key/value text representation via text/tabwriter
//   - Suitable for terminal viewing
//   - Write-only (no deserialization support)
//
// # Usage - Encoding
//
// Write to a file, falling back to stdout:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, "plan.yaml")
//	defer w.Close()
//	if err := w.Serialize(ctx, doc); err != nil {
//	    log.Fatal(err)
//	}
//
// # Usage - Decoding
//
// Load a document from a local path or HTTP URL in one call:
//
//	doc, err := serializer.FromFile[plan.Plan]("plan.yaml")
//
// # HTTP
//
// RespondJSON writes buffered JSON API responses; HttpReader fetches remote
// content with pooled connections and conservative timeouts.
package serializer
