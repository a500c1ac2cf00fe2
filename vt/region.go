package vt

import (
	"fmt"
	"log/slog"
)

// region is the half open row range [begin, end).
type region struct {
	begin, end int
}

func newRegion(begin, end int) region {
	if begin >= end {
		slog.Error("invalid region creation request begin must be < end", "begin", begin, "end", end)
		return region{}
	}
	return region{begin: begin, end: end}
}

func (r region) contains(row int) bool {
	return r.begin <= row && row < r.end
}

// clamp returns row limited to the region.
func (r region) clamp(row int) int {
	switch {
	case row < r.begin:
		return r.begin
	case row >= r.end:
		return r.end - 1
	}
	return row
}

func (r region) height() int {
	return r.end - r.begin
}

func (r region) equal(other region) bool {
	return r.begin == other.begin && r.end == other.end
}

func (r region) String() string {
	return fmt.Sprintf("[%d,%d)", r.begin, r.end)
}
