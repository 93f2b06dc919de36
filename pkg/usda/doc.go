// Package usda loads food records from USDA nutrient databases in their
// ABBREV flat-file format.
//
// # Format
//
// Each line of an ABBREV file describes one food as 53 caret-delimited
// fields. Text fields are wrapped in tildes ("~BUTTER,WITH SALT~"), numeric
// fields are plain decimals. Only five fields matter here: the description,
// the calorie and protein content, and the household serving measure with
// its gram weight. Quantities are rounded to whole units on load.
//
// # Sources
//
// A Loader resolves several source schemes:
//
//   - plain file paths, with transparent gunzip for .gz files
//   - http:// and https:// URLs
//   - s3://bucket/key object storage URIs
//   - "embedded", a small sample dataset compiled into the binary
//
// # Error handling
//
// A line with the wrong field count fails the whole load: the file is
// structurally broken, not merely incomplete. Lines whose individual fields
// do not parse (missing serving measure, unparsable number, negative
// quantity) are skipped with a debug log, matching how sparse the real
// ABBREV data is. Every record a Loader returns satisfies the food.Record
// invariants.
package usda
