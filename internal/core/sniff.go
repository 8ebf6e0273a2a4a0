package core

// sniff.go detects whether the sheet was exported with commas or semicolons.
//
// Spreadsheets in Swedish locale export with ';' because ',' is the decimal
// separator, so both appear in practice. Detection looks at how consistently
// each candidate splits the lines of a sample, ignoring separators inside
// quoted fields.

// SniffSampleSize is the number of leading bytes inspected by DetectDelimiter.
const SniffSampleSize = 4096

// delimiterCandidates in order of preference when scores tie.
var delimiterCandidates = []rune{',', ';'}

// DetectDelimiter returns the field separator used in sample.
// Only the first SniffSampleSize bytes are considered. Falls back to ','
// when neither candidate appears.
func DetectDelimiter(sample []byte) rune {
	truncated := false
	if len(sample) > SniffSampleSize {
		sample = sample[:SniffSampleSize]
		truncated = true
	}

	lines := countPerLine(string(sample), truncated)

	best, bestScore := rune(0), 0
	for _, d := range delimiterCandidates {
		score := consistency(lines, d)
		if score > bestScore {
			best, bestScore = d, score
		}
	}
	if best != 0 {
		return best
	}

	// No candidate splits lines consistently; go by raw frequency.
	best, bestTotal := delimiterCandidates[0], 0
	for _, d := range delimiterCandidates {
		total := 0
		for _, l := range lines {
			total += l[d]
		}
		if total > bestTotal {
			best, bestTotal = d, total
		}
	}
	return best
}

// countPerLine counts candidate delimiters on each non-blank line of s,
// skipping quoted sections. A quoted field may span lines. When truncated is
// set the final line is incomplete and dropped, unless it is the only one.
func countPerLine(s string, truncated bool) []map[rune]int {
	var lines []map[rune]int
	current := map[rune]int{}
	inQuotes := false
	content := false

	flush := func() {
		if content {
			lines = append(lines, current)
		}
		current = map[rune]int{}
		content = false
	}

	for _, r := range s {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			content = true
		case inQuotes:
			content = true
		case r == '\n':
			flush()
		case r == '\r':
		default:
			content = true
			for _, d := range delimiterCandidates {
				if r == d {
					current[d]++
				}
			}
		}
	}

	if content && (!truncated || len(lines) == 0) {
		lines = append(lines, current)
	}
	return lines
}

// consistency returns how many lines contain d exactly as often as the most
// common non-zero count of d. Zero means d never appears, or appears with a
// different count on at least half the lines.
func consistency(lines []map[rune]int, d rune) int {
	freq := map[int]int{}
	for _, l := range lines {
		if n := l[d]; n > 0 {
			freq[n]++
		}
	}

	mode, modeLines := 0, 0
	for n, c := range freq {
		if c > modeLines || (c == modeLines && n > mode) {
			mode, modeLines = n, c
		}
	}

	if modeLines*2 <= len(lines) {
		return 0
	}
	return modeLines
}
