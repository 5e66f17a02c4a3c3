package service

import "time"

// timeNow is swapped out in tests
var timeNow = time.Now

const dateLayout = "2006-01-02"

// istLocation is the timezone the organization operates in. Report
// dates and exported timestamps are interpreted in it.
var istLocation = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}()

// todayIST returns the current calendar date in the organization timezone
func todayIST() string {
	return timeNow().In(istLocation).Format(dateLayout)
}

// formatIST renders a timestamp for display and CSV export
func formatIST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(istLocation).Format("2006-01-02 15:04:05")
}

// validDate reports whether s is a well-formed YYYY-MM-DD date
func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}
