// Package hal adapts a tag registry to the calling convention of the host
// metadata framework.
//
// The framework drives vendor tags through a table of entry points, each of
// which receives the framework's own ops handle. The handle is carried
// through untouched; answers use the framework's sentinels ("" for a missing
// name, -1 for a missing type, negative status codes for refused buffers).
package hal

import (
	"github.com/joshuapare/vendortags/internal/format"
	"github.com/joshuapare/vendortags/internal/logger"
	"github.com/joshuapare/vendortags/pkg/types"
	"github.com/joshuapare/vendortags/tags/registry"
)

// Status codes returned by the buffer-filling entry points.
const (
	StatusOK              = 0
	StatusInvalidArgument = -22 // -EINVAL
)

// TypeNotFound is returned by GetTagType for tags that do not resolve.
const TypeNotFound = -1

// VendorTagOps is the framework's opaque ops handle. It is never
// dereferenced; a nil handle is as good as any other.
type VendorTagOps struct {
	_ [0]func() // not comparable
}

// VendorTags serves the framework entry points from a registry.
type VendorTags struct {
	reg *registry.Registry
}

// New returns the entry points for reg.
func New(reg *registry.Registry) *VendorTags {
	return &VendorTags{reg: reg}
}

// GetTagCount returns the number of vendor tags.
func (v *VendorTags) GetTagCount(ops *VendorTagOps) int {
	return v.reg.TagCount()
}

// GetAllTags fills tagArray, which must hold at least GetTagCount entries.
// On a nil or short array nothing is written and StatusInvalidArgument is
// returned.
func (v *VendorTags) GetAllTags(ops *VendorTagOps, tagArray []uint32) int {
	if tagArray == nil || len(tagArray) < v.reg.TagCount() {
		logger.Error("vendor tag array rejected",
			"op", "GetAllTags", "nil", tagArray == nil, "len", len(tagArray), "need", v.reg.TagCount())
		return StatusInvalidArgument
	}
	i := 0
	for tag := range v.reg.Tags() {
		tagArray[i] = uint32(tag)
		i++
	}
	return StatusOK
}

// GetSectionName returns the section name of tag, or "" if it has none.
func (v *VendorTags) GetSectionName(ops *VendorTagOps, tag uint32) string {
	name, _ := v.reg.SectionName(types.Tag(tag))
	return name
}

// GetTagName returns the name of tag, or "" if it is not declared.
func (v *VendorTags) GetTagName(ops *VendorTagOps, tag uint32) string {
	name, _ := v.reg.TagName(types.Tag(tag))
	return name
}

// GetTagType returns the value type of tag as an int, or TypeNotFound.
func (v *VendorTags) GetTagType(ops *VendorTagOps, tag uint32) int {
	typ, ok := v.reg.TagType(types.Tag(tag))
	if !ok {
		return TypeNotFound
	}
	return int(typ)
}

// EncodeTagArray writes every tag into dst as little-endian uint32s, the
// layout of the framework's tag array, and returns the number of bytes
// written. dst must hold 4*GetTagCount bytes; otherwise nothing is written
// and the error is of kind types.ErrKindInvalidArgument.
func (v *VendorTags) EncodeTagArray(dst []byte) (int, error) {
	if dst == nil {
		logger.Error("vendor tag array rejected", "op", "EncodeTagArray", "nil", true)
		return 0, types.ErrInvalidArgument
	}
	raw := make([]uint32, 0, v.reg.TagCount())
	for tag := range v.reg.Tags() {
		raw = append(raw, uint32(tag))
	}
	n, err := format.PutTags(dst, raw)
	if err != nil {
		logger.Error("vendor tag array rejected", "op", "EncodeTagArray", "len", len(dst), "need", len(raw)*format.DWORDSize)
		return 0, &types.Error{Kind: types.ErrKindInvalidArgument, Msg: "encode tag array", Err: err}
	}
	return n, nil
}
