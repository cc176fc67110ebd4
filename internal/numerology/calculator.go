package numerology

import "time"

// birthDateLayout is the only accepted string form for birth dates.
const birthDateLayout = "2006-01-02"

// ParseBirthDate parses an ISO YYYY-MM-DD string into a calendar date.
// Returns ErrMalformedDate for anything time.Parse rejects.
func ParseBirthDate(s string) (time.Time, error) {
	t, err := time.Parse(birthDateLayout, s)
	if err != nil {
		return time.Time{}, ErrMalformedDate
	}
	return t, nil
}

// LifePath computes the Life Path number from a birth date.
//
// The digits of zero-padded MM, DD, and YYYY are summed as one flat sequence
// and reduced. Master Numbers are preserved:
//
//	1985-03-29 -> 0+3+2+9+1+9+8+5 = 37 -> 10 -> 1
//	1980-11-02 -> 1+1+0+2+1+9+8+0 = 22 (kept)
func LifePath(birthDate time.Time) int {
	total := digitSum(int(birthDate.Month())) + digitSum(birthDate.Day()) + digitSum(birthDate.Year())
	return Reduce(total)
}

// LifePathString is LifePath for an ISO YYYY-MM-DD string.
func LifePathString(birthDate string) (int, error) {
	t, err := ParseBirthDate(birthDate)
	if err != nil {
		return 0, err
	}
	return LifePath(t), nil
}

// Destiny computes the Destiny number from every letter of a full name.
// Spaces, punctuation, and digits are ignored; case and letter order do not
// matter. Master Numbers are preserved.
func Destiny(fullName string) int {
	return Reduce(sumLetters(fullName, func(r rune) bool { return true }))
}

// SoulUrge computes the Soul Urge number from the vowels of a full name.
// A name with no vowels reduces to 9.
func SoulUrge(fullName string) int {
	return Reduce(sumLetters(fullName, func(r rune) bool { return Classify(r) == ClassVowel }))
}

// Personality computes the Personality number from the consonants of a full
// name. A name with no consonants reduces to 9.
func Personality(fullName string) int {
	return Reduce(sumLetters(fullName, func(r rune) bool { return Classify(r) == ClassConsonant }))
}

// PersonalYear computes the Personal Year cycle for targetYear from the
// birth month and day. The result is always 1-9: cycle numbers are fully
// reduced and Master Numbers are not kept.
func PersonalYear(birthMonth, birthDay, targetYear int) int {
	total := digitSum(birthMonth) + digitSum(birthDay) + digitSum(targetYear)
	return reduceCycle(total)
}

// PersonalMonth computes the Personal Month cycle for targetMonth of
// targetYear from the birth day. Like PersonalYear the result is always 1-9.
// The digits of DD, MM, and YYYY are summed directly rather than composing
// through the Personal Year.
func PersonalMonth(birthDay, targetMonth, targetYear int) int {
	total := digitSum(birthDay) + digitSum(targetMonth) + digitSum(targetYear)
	return reduceCycle(total)
}
