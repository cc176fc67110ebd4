// Package numerology implements the Pythagorean numerology calculation
// engine: letter-to-digit mapping with Vietnamese diacritic support, digit
// reduction with Master Number preservation, and the six core number
// calculations (Life Path, Destiny, Soul Urge, Personality, Personal
// Year/Month).
//
// Every function in this package is pure and safe for concurrent use. The
// lookup tables are built once at init and never mutated.
package numerology

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// LetterClass classifies a rune for numerology purposes.
type LetterClass int

const (
	// ClassOther covers digits, punctuation, whitespace, and any letter
	// outside the Latin range (after diacritic stripping).
	ClassOther LetterClass = iota
	ClassVowel
	ClassConsonant
)

// letterValues maps base Latin letters to their Pythagorean digit:
// A=1..I=9, then the cycle repeats (J=1..R=9, S=1..Z=8).
// Equivalent formula: ((position-1) % 9) + 1.
var letterValues = map[rune]int{
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 6, 'G': 7, 'H': 8, 'I': 9,
	'J': 1, 'K': 2, 'L': 3, 'M': 4, 'N': 5, 'O': 6, 'P': 7, 'Q': 8, 'R': 9,
	'S': 1, 'T': 2, 'U': 3, 'V': 4, 'W': 5, 'X': 6, 'Y': 7, 'Z': 8,
}

// vowelBases is the vowel set after NFD decomposition. Vietnamese vowels
// with circumflex, breve, horn, or tone marks (â, ê, ô, ơ, ư, ấ, ế, ự, ...)
// all decompose to one of these five bases, so the set stays small.
// Y is treated as a consonant throughout.
var vowelBases = map[rune]bool{
	'A': true, 'E': true, 'I': true, 'O': true, 'U': true,
}

// baseLetter strips diacritics from r and returns its uppercase base rune.
// NFD decomposition splits a marked letter into base + combining marks; the
// first rune of the decomposition is the base. Đ/đ has no canonical
// decomposition and comes back unchanged.
func baseLetter(r rune) rune {
	decomposed := norm.NFD.String(string(unicode.ToUpper(r)))
	for _, base := range decomposed {
		return base
	}
	return r
}

// LetterValue returns the Pythagorean digit (1-9) for r, or 0 when r has no
// value: digits, punctuation, whitespace, and letters whose base falls
// outside A-Z (including đ). Case-insensitive.
func LetterValue(r rune) int {
	return letterValues[baseLetter(r)]
}

// Classify reports whether r is a vowel, a consonant, or neither.
// Classification follows the diacritic-stripped base letter, so every tone
// variant of a vowel classifies identically to its base.
func Classify(r rune) LetterClass {
	if !unicode.IsLetter(r) {
		return ClassOther
	}
	if vowelBases[baseLetter(r)] {
		return ClassVowel
	}
	return ClassConsonant
}

// sumLetters adds the letter values of every rune in text for which keep
// returns true. Zero-valued runes contribute nothing either way.
func sumLetters(text string, keep func(rune) bool) int {
	total := 0
	for _, r := range text {
		if keep(r) {
			total += LetterValue(r)
		}
	}
	return total
}
