package ytd

import (
	"github.com/etnz/ytd/date"
	"github.com/stretchr/testify/mock"
)

// MockPriceSource is a mock PriceSource for testing.
type MockPriceSource struct {
	mock.Mock
}

func (m *MockPriceSource) Price(day date.Date, sec Security) (Amount, error) {
	args := m.Called(day, sec)
	return args.Get(0).(Amount), args.Error(1)
}

// day is a helper for tests to create dates from const.
func day(s string) date.Date { return date.MustParse(s) }
