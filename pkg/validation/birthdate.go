package validation

import "time"

// AtLeast18 reports whether someone born on dateOfBirth is 18 or older
// today. The age is corrected down by one year when the birthday has not
// yet occurred in the current year.
func AtLeast18(dateOfBirth time.Time) bool {
	return atLeast18At(dateOfBirth, time.Now())
}

func atLeast18At(dateOfBirth, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dob := time.Date(dateOfBirth.Year(), dateOfBirth.Month(), dateOfBirth.Day(), 0, 0, 0, 0, time.UTC)

	age := today.Year() - dob.Year()
	if dob.AddDate(age, 0, 0).After(today) {
		age--
	}
	return age >= 18
}
