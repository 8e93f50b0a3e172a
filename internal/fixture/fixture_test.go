package fixture

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// NumbersSuite holds the two fixture cases. Run a single one with
// go test -run TestNumbersSuite -testify.m TestThree
type NumbersSuite struct {
	suite.Suite
	fx *Fixture
}

func (s *NumbersSuite) SetupTest() {
	s.fx = New()
	s.fx.SetUp()
}

func (s *NumbersSuite) TearDownTest() {
	s.fx.TearDown()
	s.fx = nil
}

func (s *NumbersSuite) TestThree() {
	s.fx.CheckThree(s.T())
}

func (s *NumbersSuite) TestFour() {
	s.fx.CheckFour(s.T())
}

func TestNumbersSuite(t *testing.T) {
	suite.Run(t, new(NumbersSuite))
}

// IsolationSuite passes in either execution order only if every case
// receives its own fixture.
type IsolationSuite struct {
	suite.Suite
	fx *Fixture
}

func (s *IsolationSuite) SetupTest() {
	s.fx = New()
	s.fx.SetUp()
}

func (s *IsolationSuite) TearDownTest() {
	s.fx.TearDown()
}

func (s *IsolationSuite) TestMutateThree() {
	s.fx.Three = 99
	s.Equal(99, s.fx.Three)
}

func (s *IsolationSuite) TestObserveThree() {
	s.fx.CheckThree(s.T())
	s.fx.CheckFour(s.T())
}

func TestIsolationSuite(t *testing.T) {
	suite.Run(t, new(IsolationSuite))
}

func TestNew_FreshInstances(t *testing.T) {
	a := New()
	b := New()
	a.Three = 5
	a.Four = 6

	assert.Equal(t, 3, b.Three)
	assert.Equal(t, 4, b.Four)
}

// recordingT captures assertion failures instead of stopping the test
type recordingT struct {
	errors []string
	halted bool
}

func (r *recordingT) Errorf(format string, args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recordingT) FailNow() {
	r.halted = true
}

func TestChecks_FaultInjection(t *testing.T) {
	tests := []struct {
		name      string
		three     int
		four      int
		failThree bool
		failFour  bool
	}{
		{name: "shipped values", three: 3, four: 4},
		{name: "three initialized to 5", three: 5, four: 4, failThree: true},
		{name: "four initialized to 0", three: 3, four: 0, failFour: true},
		{name: "both wrong", three: 0, four: 0, failThree: true, failFour: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			threeT := &recordingT{}
			fx := NewWith(tt.three, tt.four)
			fx.SetUp()
			fx.CheckThree(threeT)
			fx.TearDown()

			fourT := &recordingT{}
			fx = NewWith(tt.three, tt.four)
			fx.SetUp()
			fx.CheckFour(fourT)
			fx.TearDown()

			assert.Equal(t, tt.failThree, threeT.halted, "test_three outcome")
			assert.Equal(t, tt.failThree, len(threeT.errors) > 0)
			assert.Equal(t, tt.failFour, fourT.halted, "test_four outcome")
			assert.Equal(t, tt.failFour, len(fourT.errors) > 0)
		})
	}
}
