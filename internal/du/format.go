package du

import (
	"fmt"
	"io"
)

// sizeUnits maps the number of 1024-divisions applied to a size to its unit
// symbol. Magnitudes beyond the table render with unknownUnit.
var sizeUnits = [...]byte{'B', 'K', 'M', 'G'}

const unknownUnit = '?'

// humanWidth is the fixed column width of the scaled value plus unit symbol.
const humanWidth = 4

// digitCount returns the number of decimal digits in n. Zero counts as one
// digit.
func digitCount(n uint64) int {
	digits := 1

	for n >= 10 {
		n /= 10
		digits++
	}

	return digits
}

// humanSize renders a byte count in the largest unit that keeps the scaled
// value below 1024. Values below 9.95 in their unit keep one decimal place,
// larger ones keep none, so the numeric portion stays within the fixed
// four-character column. Exactly zero renders as plain "0B".
func humanSize(size uint64) string {
	if size == 0 {
		return "0B"
	}

	value := float64(size)
	scale := 0

	for value >= 1024 {
		value /= 1024
		scale++
	}

	unit := byte(unknownUnit)
	if scale < len(sizeUnits) {
		unit = sizeUnits[scale]
	}

	precision := 0
	if value < 9.95 {
		precision = 1
	}

	return fmt.Sprintf("%.*f%c", precision, value, unit)
}

// FormatRecords writes one line per record to w: the size, two spaces, the
// path. In human-readable mode the size is unit-scaled into a fixed
// four-character column; otherwise raw byte counts are aligned to the digit
// width of the largest size in the set.
func FormatRecords(w io.Writer, records []SizeRecord, human bool) error {
	if human {
		for _, rec := range records {
			if _, err := fmt.Fprintf(w, "%-*s  %s\n", humanWidth, humanSize(rec.Size), rec.Path); err != nil {
				return fmt.Errorf("writing record: %w", err)
			}
		}

		return nil
	}

	var max uint64

	for _, rec := range records {
		if rec.Size > max {
			max = rec.Size
		}
	}

	width := digitCount(max)

	for _, rec := range records {
		if _, err := fmt.Fprintf(w, "%-*d  %s\n", width, rec.Size, rec.Path); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}

	return nil
}
