package editor

// findWordWrapBreak returns the unit index after the last whitespace run
// that fits before overflow.
func findWordWrapBreak(units []wrapUnit, start, overflow int) (int, bool) {
	start = max(start, 0)
	overflow = min(overflow, len(units))
	if start >= overflow {
		return 0, false
	}

	lastBreak := -1
	for i := start; i < overflow; {
		if !units[i].isWhitespace {
			i++
			continue
		}
		j := i + 1
		for j < overflow && units[j].isWhitespace {
			j++
		}
		lastBreak = j
		i = j
	}

	if lastBreak <= start {
		return 0, false
	}
	return lastBreak, true
}

// keepLeadingPunctuation moves a hard break back so a row never starts with
// punctuation that belongs to the previous word.
func keepLeadingPunctuation(units []wrapUnit, start, overflow int) int {
	end := overflow
	for end-1 > start && end < len(units) && units[end].isPunct {
		end--
	}
	return end
}
