// Package header provides the common document header for trophe data structures.
//
// This package defines the Header type embedded by plans, comparisons, food
// lists, and validation results to provide consistent metadata and versioning
// information.
//
// # Header Structure
//
// The Header contains standard fields for API versioning and metadata:
//
//	type Header struct {
//	    Kind       Kind              // Resource type (e.g., "Plan", "Comparison")
//	    APIVersion string            // Schema version (e.g., "trophe.nutrikit.dev/v1")
//	    Metadata   map[string]string // Timestamp, generator version, custom fields
//	}
//
// # Usage
//
// Embed the header and initialize it when producing a document:
//
//	type Plan struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    // ...
//	}
//
//	p := &Plan{}
//	p.Init(header.KindPlan, plan.APIVersion, version)
//
// # Serialization
//
// Headers serialize consistently to JSON and YAML:
//
//	{
//	  "kind": "Plan",
//	  "apiVersion": "trophe.nutrikit.dev/v1",
//	  "metadata": {
//	    "timestamp": "2026-08-23T10:30:00Z",
//	    "version": "v1.0.0"
//	  }
//	}
//
// # API Versioning
//
// The APIVersion field enables evolution of data formats. Consumers should
// check it before parsing:
//
//	if doc.APIVersion != plan.APIVersion {
//	    return fmt.Errorf("unsupported API version: %s", doc.APIVersion)
//	}
package header
