package entry

import "time"

// ResolveExpiry returns the contract expiry for the month containing
// tradeDate: step back one week from month end, then snap to the
// Thursday of that week (Sunday-started). This is the exchange-style
// "last Thursday of the month" convention and matches the production
// rule bit for bit, including its quirk: when the month ends on a
// Thursday, Friday or Saturday the snap lands on the second-to-last
// Thursday. See DESIGN.md before "fixing" this.
func ResolveExpiry(tradeDate time.Time) time.Time {
	end := endOfMonth(tradeDate)
	probe := end.AddDate(0, 0, -7)
	// Snap to the Thursday of probe's week. The offset is within
	// [-2, 4], so this can never move probe past end of month.
	return probe.AddDate(0, 0, int(time.Thursday-probe.Weekday()))
}

// endOfMonth returns the last calendar day of d's month, at midnight
// in d's location. Day 0 of the next month is the normalized way to
// get there and handles December and leap February for free.
func endOfMonth(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, d.Location())
}
