package columnation

import "time"

// Pre-supplied bindings for every primitive leaf type: every signed and
// unsigned integer width, bool, rune, the floating point types, the empty
// struct (this module's stand-in for a zero-sized unit type), and
// time.Duration. Because CopyRegion is generic over any bitwise-copyable
// T, no per-type region implementation is needed — a single named
// constructor per type is enough to give each one the same ergonomics as
// a hand-written binding.
//
//nolint:revive // deliberately one alias per primitive, for exhaustive coverage.
func NewBoolRegion() *CopyRegion[bool] { return NewCopyRegion[bool]() }

func NewInt8Region() *CopyRegion[int8]   { return NewCopyRegion[int8]() }
func NewInt16Region() *CopyRegion[int16] { return NewCopyRegion[int16]() }
func NewInt32Region() *CopyRegion[int32] { return NewCopyRegion[int32]() }
func NewInt64Region() *CopyRegion[int64] { return NewCopyRegion[int64]() }
func NewIntRegion() *CopyRegion[int]     { return NewCopyRegion[int]() }

func NewUint8Region() *CopyRegion[uint8]   { return NewCopyRegion[uint8]() }
func NewUint16Region() *CopyRegion[uint16] { return NewCopyRegion[uint16]() }
func NewUint32Region() *CopyRegion[uint32] { return NewCopyRegion[uint32]() }
func NewUint64Region() *CopyRegion[uint64] { return NewCopyRegion[uint64]() }
func NewUintRegion() *CopyRegion[uint]     { return NewCopyRegion[uint]() }
func NewUintptrRegion() *CopyRegion[uintptr] { return NewCopyRegion[uintptr]() }

func NewFloat32Region() *CopyRegion[float32] { return NewCopyRegion[float32]() }
func NewFloat64Region() *CopyRegion[float64] { return NewCopyRegion[float64]() }

func NewRuneRegion() *CopyRegion[rune] { return NewCopyRegion[rune]() }

// Unit is a zero-sized placeholder value, useful as a record field that
// carries presence but no data. A StableRegion[Unit] never allocates:
// sizeOf[Unit]() is 0, and make([]Unit, 0, n) is itself a zero-allocation
// operation in the Go runtime regardless of n.
type Unit = struct{}

func NewUnitRegion() *CopyRegion[Unit] { return NewCopyRegion[Unit]() }

func NewDurationRegion() *CopyRegion[time.Duration] { return NewCopyRegion[time.Duration]() }
