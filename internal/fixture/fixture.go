// Package fixture holds a per-test fixture owning two integers and the
// checks run against it.
package fixture

import "github.com/stretchr/testify/require"

// Fixture is created fresh for every test case
type Fixture struct {
	Three int
	Four  int
}

// New creates a Fixture holding 3 and 4
func New() *Fixture {
	return NewWith(3, 4)
}

// NewWith creates a Fixture with arbitrary initial values
func NewWith(three, four int) *Fixture {
	return &Fixture{Three: three, Four: four}
}

// SetUp runs before each test case. It has nothing to prepare yet.
func (f *Fixture) SetUp() {}

// TearDown runs after each test case.
func (f *Fixture) TearDown() {}

// CheckThree requires that the Three field equals 3, halting the case otherwise
func (f *Fixture) CheckThree(t require.TestingT) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	require.Equal(t, 3, f.Three)
}

// CheckFour requires that the Four field equals 4, halting the case otherwise
func (f *Fixture) CheckFour(t require.TestingT) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	require.Equal(t, 4, f.Four)
}
