package format

// SectionIndex returns the section block index of tag. ok is false when the
// tag precedes VendorSectionStart; the caller still has to bound the index
// against the number of declared sections.
func SectionIndex(tag uint32) (index uint32, ok bool) {
	if tag < VendorSectionStart {
		return 0, false
	}
	return (tag - VendorSectionStart) >> SectionShift, true
}

// SectionStart returns the first tag of section block index.
func SectionStart(index uint32) uint32 {
	return VendorSectionStart + index<<SectionShift
}

// Offset returns the position of tag within its section block.
func Offset(tag uint32) uint32 {
	return (tag - VendorSectionStart) & OffsetMask
}
