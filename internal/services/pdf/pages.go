package pdf

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParsePages turns a page selection into sorted, de-duplicated 0-based page
// indices. "all" (any case) selects every page. Otherwise the selection is a
// comma-separated list of 1-based pages and inclusive "a-b" ranges.
//
// Single pages are not bounds-checked against total and ranges are clipped
// at total; callers skip indices that fall outside the document.
func ParsePages(selection string, total int) ([]int, error) {
	selection = strings.TrimSpace(selection)
	if selection == "" || strings.EqualFold(selection, "all") {
		pages := make([]int, total)
		for i := range pages {
			pages[i] = i
		}
		return pages, nil
	}

	seen := make(map[int]bool)
	for _, part := range strings.Split(selection, ",") {
		part = strings.TrimSpace(part)

		if startStr, endStr, isRange := strings.Cut(part, "-"); isRange {
			start, err := parsePage(startStr)
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q: %w", part, err)
			}
			end, err := parsePage(endStr)
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q: %w", part, err)
			}
			// Ranges stop at the last page.
			if end > total {
				end = total
			}
			for p := start; p <= end; p++ {
				seen[p-1] = true
			}
			continue
		}

		p, err := parsePage(part)
		if err != nil {
			return nil, fmt.Errorf("invalid page %q: %w", part, err)
		}
		seen[p-1] = true
	}

	pages := make([]int, 0, len(seen))
	for p := range seen {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages, nil
}

func parsePage(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
