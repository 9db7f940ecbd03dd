package format

import (
	"time"

	"github.com/dustin/go-humanize"
)

var compactMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "now", DivBy: time.Second},
	{D: time.Hour, Format: "%dm", DivBy: time.Minute},
	{D: humanize.Day, Format: "%dh", DivBy: time.Hour},
	{D: humanize.Week, Format: "%dd", DivBy: humanize.Day},
	{D: humanize.Year, Format: "%dw", DivBy: humanize.Week},
	{D: humanize.LongTime, Format: "%dy", DivBy: humanize.Year},
}

// CompactRelativeTimer renders "now", "5m", "2h", "3d", "2w" or "1y". The
// direction of the difference is not shown.
type CompactRelativeTimer struct{}

// Since implements RelativeTimer.
func (CompactRelativeTimer) Since(t, now time.Time) string {
	return humanize.CustomRelTime(t, now, "", "", compactMagnitudes)
}
