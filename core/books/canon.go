// ABOUTME: Canonical 66-book order table used for testament inference
// ABOUTME: Static immutable data; book codes follow the upstream 3-letter scheme

package books

// canonOrder lists the 66 canonical book IDs in canonical order.
// The first 39 are the Old Testament.
var canonOrder = []string{
	// Old Testament
	"GEN", "EXO", "LEV", "NUM", "DEU", "JOS", "JDG", "RUT",
	"1SA", "2SA", "1KI", "2KI", "1CH", "2CH", "EZR", "NEH",
	"EST", "JOB", "PSA", "PRO", "ECC", "SNG", "ISA", "JER",
	"LAM", "EZK", "DAN", "HOS", "JOL", "AMO", "OBA", "JON",
	"MIC", "NAM", "HAB", "ZEP", "HAG", "ZEC", "MAL",
	// New Testament
	"MAT", "MRK", "LUK", "JHN", "ACT", "ROM", "1CO", "2CO",
	"GAL", "EPH", "PHP", "COL", "1TH", "2TH", "1TI", "2TI",
	"TIT", "PHM", "HEB", "JAS", "1PE", "2PE", "1JN", "2JN",
	"3JN", "JUD", "REV",
}

const oldTestamentCount = 39

// canonIndex maps a book ID to its canonical position.
var canonIndex = func() map[string]int {
	m := make(map[string]int, len(canonOrder))
	for i, id := range canonOrder {
		m[id] = i
	}
	return m
}()
