package connectivity

// Mock is a test double for Prober. It answers from a script of results and
// repeats the last one once the script is exhausted.
type Mock struct {
	results []bool
	calls   int
}

// NewMock creates a mock that answers results in order.
func NewMock(results ...bool) *Mock {
	if len(results) == 0 {
		results = []bool{true}
	}
	return &Mock{results: results}
}

func (m *Mock) IsConnected() bool {
	i := min(m.calls, len(m.results)-1)
	m.calls++
	return m.results[i]
}

// Test helpers

func (m *Mock) Calls() int { return m.calls }

func (m *Mock) SetConnected(connected bool) {
	m.results = append(m.results[:0], connected)
	m.calls = 0
}

// Verify Mock implements Prober at compile time.
var _ Prober = (*Mock)(nil)
