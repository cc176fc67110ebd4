package numerology

// Master Numbers are exempt from digit reduction in the name and birth-date
// calculations. Personal Year/Month cycles never keep them.
const (
	Master11 = 11
	Master22 = 22
	Master33 = 33
)

// Reduce collapses n to a single digit 1-9 by repeated digit summing,
// stopping early when a Master Number (11, 22, 33) appears. Negative input
// is treated as its magnitude. A terminal 0 (empty name, no vowels) maps to
// 9 so callers always receive a valid numerology number.
func Reduce(n int) int {
	if n < 0 {
		n = -n
	}
	for n >= 10 {
		if n == Master11 || n == Master22 || n == Master33 {
			return n
		}
		n = digitSum(n)
	}
	if n == 0 {
		return 9
	}
	return n
}

// reduceCycle folds n all the way into 1-9 with no Master Number exemption.
// Used for Personal Year and Personal Month, which are always single-digit.
func reduceCycle(n int) int {
	if n < 0 {
		n = -n
	}
	for n >= 10 {
		n = digitSum(n)
	}
	if n == 0 {
		return 9
	}
	return n
}

func digitSum(n int) int {
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}
