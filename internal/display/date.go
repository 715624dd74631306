package display

import (
	"fmt"
	"time"
)

// FormatDate lays out t over the three lines: date, time and weekday, each
// padded to a full line. The result is always 45 bytes.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%-15s%-15s%-15s",
		"  "+t.Format("02 01 2006"),
		"   "+t.Format("15:04:05"),
		"   "+t.Weekday().String())
}
