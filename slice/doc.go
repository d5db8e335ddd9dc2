// Package slice provides View, a window over a Go slice that does not copy it.
//
// A View shares its backing array with the slice it was built from, so
// writes through either are visible to both. Offsets given to New and From
// are inclusive at both ends; Slice takes view-relative, half-open offsets
// like ordinary reslicing. ShallowCopy, Map and Values are the only
// operations that allocate.
package slice
