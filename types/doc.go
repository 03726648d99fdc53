// Package types defines the shared types, interfaces, and errors used
// across the data-access layer.
//
// This is a "leaf" package with no imports from other packages in this
// module, allowing it to be imported by any package without causing
// import cycles.
//
// # Consistency Levels
//
// Consistency levels mirror the CQL wire protocol values:
//
//	Any         Consistency = 0x00
//	One         Consistency = 0x01
//	Two         Consistency = 0x02
//	Three       Consistency = 0x03
//	Quorum      Consistency = 0x04
//	All         Consistency = 0x05
//	LocalQuorum Consistency = 0x06
//	EachQuorum  Consistency = 0x07
//	Serial      Consistency = 0x08
//	LocalSerial Consistency = 0x09
//	LocalOne    Consistency = 0x0A
//
// # Errors
//
// Driver failures surface as *DataAccessError values that record the task
// being performed and the CQL involved. The wrapped cause is mapped to one
// of the category sentinels (ErrReadTimeout, ErrUnavailable, ...) so callers
// can branch with errors.Is without importing a driver package:
//
//	if errors.Is(err, types.ErrUnavailable) {
//	    // back off and retry at a lower consistency
//	}
//
// Precondition failures (nil arguments, empty CQL) are reported with their
// own sentinels before any driver interaction takes place.
package types
