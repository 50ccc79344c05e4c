// Package dataset loads stop/line/walk datasets from YAML and ships the
// two built-in ones ("first" and "second").
//
// Format:
//
//	name: first
//	stops:
//	  - id: 1221
//	    lines: [34, 291, 292, 8, 7, 100]
//	walks:
//	  - {from: 1221, to: 1222}
//	query: {from: 1221, to: 1225}
//
// Unknown keys are rejected. After decoding, a dataset is validated: at
// least one stop, positive and unique stop IDs, positive lines, walks and
// the query naming declared stops, no self walks. Every failure wraps
// ErrInvalidDataset.
package dataset
