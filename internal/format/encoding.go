package format

import "encoding/binary"

// Binary encoding utilities for little-endian tag arrays.
//
// Implementation: Uses encoding/binary.LittleEndian
//
// Performance Note: Go's standard library implementation is already highly
// optimized by the compiler; the calls inline.

// PutU32 writes a uint32 value to the buffer at the specified offset in little-endian format.
func PutU32(b []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(b[off:off+4], v)
}

// ReadU32 reads a uint32 value from the buffer at the specified offset in little-endian format.
func ReadU32(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off : off+4])
}

// PutTags writes tags as consecutive little-endian DWORDs starting at b[0].
// It returns ErrTruncated without writing anything if b is too short.
func PutTags(b []byte, tags []uint32) (int, error) {
	need := len(tags) * DWORDSize
	if len(b) < need {
		return 0, ErrTruncated
	}
	for i, tag := range tags {
		PutU32(b, i*DWORDSize, tag)
	}
	return need, nil
}

// ReadTags decodes a little-endian tag array. Trailing bytes that do not form
// a full DWORD are reported as ErrTruncated.
func ReadTags(b []byte) ([]uint32, error) {
	if len(b)%DWORDSize != 0 {
		return nil, ErrTruncated
	}
	tags := make([]uint32, len(b)/DWORDSize)
	for i := range tags {
		tags[i] = ReadU32(b, i*DWORDSize)
	}
	return tags, nil
}
