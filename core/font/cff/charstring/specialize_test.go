package charstring

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type SpecializerTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestSpecializerFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	suite.Run(t, new(SpecializerTestEnviron))
}

// run once, before test suite methods
func (env *SpecializerTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("tyse.fonts").SetTraceLevel(tracing.LevelInfo)
}

// --- Tests -----------------------------------------------------------------

func (env *SpecializerTestEnviron) specialize(src string, opts ...Option) string {
	p, err := SpecializeProgram(ParseProgram(src), opts...)
	env.Require().NoError(err, src)
	return p.String()
}

func (env *SpecializerTestEnviron) TestMergeMoves() {
	cl, err := Specialize(CommandList{Cmd(RMoveTo, 2, 3), Cmd(RMoveTo, -1, 4)})
	env.Require().NoError(err)
	env.Equal(CommandList{Cmd(RMoveTo, 1, 7)}, cl)
	cl, err = Specialize(CommandList{Cmd(RMoveTo, 1, 1), Cmd(RMoveTo, 2, 2), Cmd(RMoveTo, 3, 3)})
	env.Require().NoError(err)
	env.Equal(CommandList{Cmd(RMoveTo, 6, 6)}, cl)
	env.Equal("5 3 rmoveto", env.specialize("5 hmoveto 3 vmoveto"))
	env.Equal("0 hmoveto", env.specialize("0 0 rmoveto"))
	env.Equal("7 vmoveto hintmask 1 4 hmoveto", env.specialize("7 vmoveto hintmask 1 4 hmoveto"))
}

func (env *SpecializerTestEnviron) TestMergeMovesAlwaysRuns() {
	in := CommandList{Cmd(RMoveTo, 2, 3), Cmd(RMoveTo, -1, 4)}
	cl, err := Specialize(in, GeneralizeFirst(false), PreserveTopology(true), MaxStack(1))
	env.Require().NoError(err)
	env.Equal(CommandList{Cmd(RMoveTo, 1, 7)}, cl)
	env.Equal(CommandList{Cmd(RMoveTo, 2, 3), Cmd(RMoveTo, -1, 4)}, in, "input must not be modified")
}

func (env *SpecializerTestEnviron) TestLines() {
	env.Equal("10 20 rmoveto 30 40 hlineto",
		env.specialize("10 20 rmoveto 30 0 rlineto 0 40 rlineto"))
	env.Equal("100 100 rmoveto 50 50 -50 -50 hlineto endchar",
		env.specialize(corpus[0]))
	env.Equal("1 2 3 4 5 6 rlineto",
		env.specialize("1 2 rlineto 3 4 rlineto 5 6 rlineto"))
	// h between two general lines is reverted to rlineto
	env.Equal("1 2 3 0 5 6 rlineto",
		env.specialize("1 2 rlineto 3 hlineto 5 6 rlineto"))
}

func (env *SpecializerTestEnviron) TestCurves() {
	for _, src := range []string{
		"1 2 3 4 5 6 7 8 9 hhcurveto",
		"1 2 3 4 5 6 7 8 9 vvcurveto",
		"1 2 3 4 5 6 7 8 hvcurveto",
		"1 2 3 4 5 6 7 8 9 hvcurveto",
		"1 2 3 4 5 6 7 8 9 10 11 12 13 vhcurveto",
		"10 20 30 40 50 vhcurveto",
		"1 2 3 4 5 6 7 8 rcurveline",
		"1 2 3 4 5 6 7 8 rlinecurve",
	} {
		env.Equal(src, env.specialize(src))
	}
	env.Equal("10 10 rmoveto 1 1 2 2 3 3 0 5 6 7 8 9 1 1 2 2 3 3 rrcurveto",
		env.specialize(corpus[5]))
}

func (env *SpecializerTestEnviron) TestTopology() {
	src := "10 10 rmoveto 0 0 rlineto 5 0 rlineto 5 0 rlineto"
	env.Equal("10 10 rmoveto 10 hlineto", env.specialize(src))
	env.Equal("10 10 rmoveto 0 hlineto 5 hlineto 5 hlineto", env.specialize(src, PreserveTopology(true)))
	src = "0 0 rmoveto 0 0 0 5 0 0 rrcurveto"
	env.Equal("0 hmoveto 5 vlineto", env.specialize(src))
	env.Equal("0 hmoveto 0 0 5 0 hhcurveto", env.specialize(src, PreserveTopology(true)))
	env.Equal("1 1 rmoveto", env.specialize("1 1 rmoveto 3 hlineto -3 hlineto"))
}

func (env *SpecializerTestEnviron) TestMaxStack() {
	cl := CommandList{Cmd(RMoveTo, 1, 1)}
	for i := 0; i < 30; i++ {
		cl = append(cl, Cmd(RLineTo, 1, 2))
	}
	for _, limit := range []int{1, 3, 10, 17, 48} {
		s, err := Specialize(cl, MaxStack(limit))
		env.Require().NoError(err)
		for _, c := range s {
			if limit > 2 {
				env.Less(len(c.Args), limit, "stack exceeded for limit %d", limit)
			}
		}
		eq, err := Equivalent(cl, s, true)
		env.Require().NoError(err)
		env.True(eq)
	}
	s, err := Specialize(cl, MaxStack(10))
	env.Require().NoError(err)
	env.Len(s, 9) // one move and 30 lines in groups of 4
	env.Len(s[1].Args, 4)
	env.Len(s[8].Args, 8)
	s, err = Specialize(cl)
	env.Require().NoError(err)
	env.Len(s, 3) // 23 lines fit below 48
}

func (env *SpecializerTestEnviron) TestIgnoreErrors() {
	src := "1 2 3 rmoveto 5 5 rlineto"
	_, err := SpecializeProgram(ParseProgram(src))
	env.True(errors.Is(err, ErrArity))
	env.Equal(src, env.specialize(src, IgnoreErrors(true)))
	_, err = SpecializeProgram(ParseProgram("1 2 rmoveto hintmask"), IgnoreErrors(true))
	env.True(errors.Is(err, ErrTruncatedMask))
	_, err = SpecializeProgram(ParseProgram(src), IgnoreErrors(true), MaxStack(-1))
	env.True(errors.Is(err, ErrConfig))
}

func (env *SpecializerTestEnviron) TestPathIsKept() {
	for _, src := range corpus {
		in, err := ToCommands(ParseProgram(src))
		env.Require().NoError(err)
		general, err := Generalize(in)
		env.Require().NoError(err)
		for _, preserve := range []bool{false, true} {
			out, err := Specialize(in, PreserveTopology(preserve))
			env.Require().NoError(err, src)
			eq, err := Equivalent(in, out, preserve)
			env.Require().NoError(err)
			env.True(eq, "%s (preserve=%v) => %s", src, preserve, ToProgram(out))
			env.LessOrEqual(EncodedLen(out), EncodedLen(general), src)
			for _, c := range out {
				env.Less(len(c.Args), DefaultMaxStack)
			}
			// already canonical input may skip generalization
			again, err := Specialize(general, PreserveTopology(preserve), GeneralizeFirst(false))
			env.Require().NoError(err)
			env.Equal(out, again, src)
		}
	}
}

func (env *SpecializerTestEnviron) TestSpecializeEmpty() {
	cl, err := Specialize(nil)
	env.Require().NoError(err)
	env.Empty(cl)
}
