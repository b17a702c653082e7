package sniff

import "strings"

// SampleSize is the number of leading bytes callers should feed Delimiter.
const SampleSize = 2048

// delimiterCandidates in priority order. The order breaks ties between
// candidates that produce the same stable field count.
var delimiterCandidates = []rune{',', ';', '\t', '|'}

// Delimiter guesses the field separator of delimited text from a leading
// sample. complete tells the sniffer the sample covers the whole input;
// when false the final line is assumed truncated and is discarded.
//
// A candidate qualifies when every sampled line splits into the same number
// of fields and that number is at least two. Among qualifying candidates the
// highest field count wins. When no candidate qualifies the sniffer fails
// open: it returns ',' together with fallback=true.
func Delimiter(sample string, complete bool) (delimiter rune, fallback bool) {
	lines := sampleLines(sample, complete)
	if len(lines) == 0 {
		return ',', true
	}

	best := rune(0)
	bestFields := 0
	for _, cand := range delimiterCandidates {
		fields, stable := stableFieldCount(lines, cand)
		if stable && fields >= 2 && fields > bestFields {
			best = cand
			bestFields = fields
		}
	}
	if best == 0 {
		return ',', true
	}
	return best, false
}

// sampleLines splits the sample into complete, non-blank lines.
func sampleLines(sample string, complete bool) []string {
	raw := strings.Split(sample, "\n")
	if !complete && len(raw) > 0 {
		raw = raw[:len(raw)-1]
	}
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// stableFieldCount reports the field count produced by delim if it is
// identical on every line.
func stableFieldCount(lines []string, delim rune) (int, bool) {
	want := -1
	for _, line := range lines {
		n := strings.Count(line, string(delim)) + 1
		if want == -1 {
			want = n
			continue
		}
		if n != want {
			return 0, false
		}
	}
	return want, true
}
