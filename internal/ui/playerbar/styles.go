package playerbar

import "github.com/llehouerou/onair/internal/ui/styles"

func stationStyle(s string) string { return styles.Brand(s) }

func statusStyle(kind StatusKind) func(...string) string {
	st := styles.T().S()
	switch kind {
	case StatusLive:
		return st.Live.Render
	case StatusWaiting:
		return st.Warning.Render
	case StatusFailed:
		return st.Error.Render
	default:
		return st.Base.Render
	}
}

func detailStyle() func(...string) string {
	return styles.T().S().Muted.Render
}
