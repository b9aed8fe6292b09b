package calendar_test

import (
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockPager records commands through `testify/mock` and keeps the listeners
// so tests can simulate settles and frames.
type MockPager struct {
	mock.Mock

	mu        sync.Mutex
	onChange  []func(int)
	onFrame   []func(float64)
	minIndex  int
	maxIndex  int
	boundSets int
}

func (m *MockPager) IncrementPage(animated bool) { m.Called(animated) }
func (m *MockPager) DecrementPage(animated bool) { m.Called(animated) }

func (m *MockPager) SetPage(index int, animated bool) {
	m.Called(index, animated)
}

func (m *MockPager) SetBounds(minIndex, maxIndex int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.minIndex, m.maxIndex = minIndex, maxIndex
	m.boundSets++
}

func (m *MockPager) OnPageChange(fn func(int)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = append(m.onChange, fn)
}

func (m *MockPager) OnFrame(fn func(float64)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onFrame = append(m.onFrame, fn)
}

// Settle simulates the pager committing page.
func (m *MockPager) Settle(page int) {
	m.mu.Lock()
	fns := append([]func(int){}, m.onChange...)
	m.mu.Unlock()
	for _, fn := range fns {
		fn(page)
	}
}

// Frame simulates one animation frame at offset.
func (m *MockPager) Frame(offset float64) {
	m.mu.Lock()
	fns := append([]func(float64){}, m.onFrame...)
	m.mu.Unlock()
	for _, fn := range fns {
		fn(offset)
	}
}

// Bounds returns the last installed bounds and how many times they were set.
func (m *MockPager) Bounds() (int, int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.minIndex, m.maxIndex, m.boundSets
}

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// recordingSetter counts SetPage calls without any expectations.
type recordingSetter struct {
	pages []int
}

func (r *recordingSetter) SetPage(index int, _ bool) {
	r.pages = append(r.pages, index)
}
