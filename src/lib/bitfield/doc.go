// Package bitfield describes the bit layout of a hardware register once and
// derives typed read, write and modify operations from that description.
//
// A layout is bound at the type level to a marker type L (in the register
// catalog this is the register's zero-size handle type), so a FieldValue or
// Value built for one register cannot be handed to another: the mismatch is
// a compile error, not a runtime check.
//
// Nothing in this package allocates after package initialization and nothing
// touches hardware. The hardware boundary lives in the register catalog; the
// types here are plain values over the backing integer.
//
// Read-modify-write through Modify or ModifyFields is two separate accesses.
// A concurrent writer to the same register between the two wins or loses
// depending on timing; callers that share a register across execution
// contexts must serialize access themselves (interrupts masked, single core,
// and so on). No locking is done here.
package bitfield
