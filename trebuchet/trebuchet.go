// Package trebuchet recovers calibration values from noisy document lines.
//
// A line's calibration value is the two-digit number formed by its first and
// last digit. Part 2 also accepts digits spelled out as words; spelled digits
// may overlap, so "twone" yields 2 and then 1.
package trebuchet

var spelled = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at s[i], if any.
func digitAt(s string, i int, words bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !words {
		return 0, false
	}
	for n, w := range spelled {
		if len(s)-i >= len(w) && s[i:i+len(w)] == w {
			return n + 1, true
		}
	}
	return 0, false
}

// Value returns the calibration value of line. Lines without digits are worth 0.
func Value(line string, words bool) int {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		d, ok := digitAt(line, i, words)
		if !ok {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0
	}
	return first*10 + last
}

func sum(lines []string, words bool) int {
	total := 0
	for _, line := range lines {
		total += Value(line, words)
	}
	return total
}

// Part1 sums calibration values using numeric digits only.
func Part1(lines []string) (int, error) {
	return sum(lines, false), nil
}

// Part2 sums calibration values counting spelled-out digits too.
func Part2(lines []string) (int, error) {
	return sum(lines, true), nil
}
