package series

// IsDummyCoded reports whether every value in the column is 0 or 1.
// An empty column is trivially dummy coded.
func IsDummyCoded(values []float64) bool {
	for _, value := range values {
		if value != 0 && value != 1 {
			return false
		}
	}
	return true
}

// Categorical is the observed-label view of a column of category
// labels. Levels are the distinct labels actually present in the
// column, in order of first appearance; labels that are merely
// possible but never observed do not count as levels.
type Categorical struct {
	labels []string
	levels []string
}

func NewCategorical(labels []string) *Categorical {
	seen := make(map[string]bool, len(labels))
	levels := make([]string, 0)
	for _, label := range labels {
		if seen[label] {
			continue
		}
		seen[label] = true
		levels = append(levels, label)
	}
	return &Categorical{
		labels: append([]string(nil), labels...),
		levels: levels,
	}
}

func (cat *Categorical) Len() int {
	return len(cat.labels)
}

func (cat *Categorical) Levels() []string {
	return append([]string(nil), cat.levels...)
}

func (cat *Categorical) NumLevels() int {
	return len(cat.levels)
}

// HasTwoLevels reports whether the column has exactly two distinct
// observed labels. An empty column has no levels and returns false.
func HasTwoLevels(labels []string) bool {
	return NewCategorical(labels).NumLevels() == 2
}
