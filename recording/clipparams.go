package recording

import "github.com/gogpu/picture"

// clipParamsAABit is the bit position of the anti-alias flag within a
// packed ClipParams word. The low bits hold the region-op ordinal, which
// needs only 3 bits for the six defined picture.RegionOp values, so bit 3
// is free for the flag.
const clipParamsAABit = 3

// packClipParams bit-packs a region op and an anti-alias flag into a
// single word: the low bits hold the op's ordinal, bit clipParamsAABit
// holds the AA flag. The layout is fixed and must round-trip through
// unpackClipParams.
func packClipParams(op picture.RegionOp, antiAlias bool) uint32 {
	v := uint32(op) //nolint:gosec // region op ordinals are small, fixed constants
	if antiAlias {
		v |= 1 << clipParamsAABit
	}
	return v
}

// unpackClipParams reverses packClipParams.
func unpackClipParams(v uint32) (op picture.RegionOp, antiAlias bool) {
	op = picture.RegionOp(v &^ (1 << clipParamsAABit))
	antiAlias = v&(1<<clipParamsAABit) != 0
	return op, antiAlias
}
