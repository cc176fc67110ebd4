package logger

import "strings"

// RedactName masks a full name for safe logging, keeping only the first rune
// of each word: "Nguyễn Văn An" → "N*** V*** A***".
func RedactName(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return "***"
	}
	masked := make([]string, len(words))
	for i, w := range words {
		for _, r := range w {
			masked[i] = string(r) + "***"
			break
		}
	}
	return strings.Join(masked, " ")
}

// RedactBirthDate keeps only the year of a YYYY-MM-DD date:
// "1990-03-15" → "1990-**-**". Anything unparseable is fully masked.
func RedactBirthDate(date string) string {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) != 3 || len(parts[0]) != 4 {
		return "****-**-**"
	}
	return parts[0] + "-**-**"
}
