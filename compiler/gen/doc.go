// Package gen validates sysprop schema documents and builds the
// intermediate representation the per-language emitters consume.
//
// # Architecture
//
// The generation pipeline follows this flow:
//
//	Schema document (*.sysprop)
//	        ↓
//	   compiler/load (structural decode)
//	        ↓
//	   gen.Validate + gen.New (rules + normalization)
//	        ↓
//	   gen.PropertySet (IR)
//	        ↓
//	   Emitters (cpp, java, rust, golang)
//	        ↓
//	   Generated accessor sources
//
// Validation is the contract-bearing stage: checks run in a fixed order,
// the first violated rule short-circuits, and every message is an exact,
// stable string that downstream tooling matches on verbatim. The emitters
// are mechanical renderers over the validated IR; their formatting is not
// part of any contract.
//
// # Key Types
//
//   - PropertySet: the validated, normalized IR with derived views
//     (identifiers, runtime keys, scope filtering)
//   - Property: one validated property with its access mode normalized
//   - Config: global generation settings (visibility scope, file header)
//   - Writer: parallel output writer shared by the emitters
package gen
