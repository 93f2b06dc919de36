// Package version parses and compares the semantic version stamps carried
// in trophe document headers. Precision-aware comparison lets a constraint
// like ">= 1.2" match any 1.2.x generator.
package version
