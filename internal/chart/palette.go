package chart

var palette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
}

func Color(i int) string {
	return palette[i%len(palette)]
}

// Colors gives doughnut slices one color each and every other kind a single
// color per dataset.
func Colors(dataset, points int, kind Kind) []string {
	if kind != Doughnut {
		return []string{Color(dataset)}
	}
	out := make([]string, points)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}
