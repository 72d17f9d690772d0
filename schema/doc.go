// Package schema defines the declaration types of a sysprop schema document.
//
// A schema document describes one module of named, typed system properties
// in a small YAML dialect:
//
//	owner: Vendor
//	module: "com.example.VendorProperties"
//	prefix: "vendor.example"
//	prop:
//	  - name: "device.status"
//	    type: Enum
//	    scope: Public
//	    enum_values: "on|off|unknown"
//	    access: ReadWrite
//
// The types in this package are plain decode targets. Parsing lives in
// compiler/load; all naming, uniqueness and ownership rules are enforced
// by compiler/gen before any emitter runs.
package schema
