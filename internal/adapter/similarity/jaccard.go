package similarity

// Jaccard returns |a ∩ b| / |a ∪ b|. An empty union or an empty
// intersection scores 0.
func Jaccard[K comparable](a, b map[K]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}

	intersection := 0
	for k := range small {
		if _, exists := large[k]; exists {
			intersection++
		}
	}
	if intersection == 0 {
		return 0.0
	}

	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}
