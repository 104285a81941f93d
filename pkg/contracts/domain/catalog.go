package domain

// Segment identifies a release-status partition of the catalog.
type Segment string

const (
	SegmentLaunched        Segment = "launched"
	SegmentUpcomingRumored Segment = "upcoming_rumored"
)

// String returns the segment identifier used in artifact names.
func (s Segment) String() string {
	return string(s)
}

// Tag values recognized when partitioning records by release status.
// Comparison is case-insensitive.
const (
	TagLaunched = "launched"
	TagUpcoming = "upcoming"
	TagRumored  = "rumored"
)

// UnknownLabel is the catch-all value used whenever a family, range or
// categorical aggregate cannot be determined.
const UnknownLabel = "Unknown"
