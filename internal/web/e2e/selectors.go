//go:build e2e

package e2e

const (
	Logo      = ".brand-logo"
	Summary   = "#summary"
	Charts    = "#charts canvas"
	Ranking   = "#chart-ranking"
	Dimension = "#dimension"
	LoadError = "#load-error"
)
