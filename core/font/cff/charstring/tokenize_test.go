package charstring

import (
	"errors"
	"testing"

	"github.com/npillmayer/csopt/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProgram(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	p := ParseProgram(" 1 -2.5  hintmask 0x0F rmoveto\n")
	require.Len(t, p, 5)
	assert.Equal(t, Num(1), p[0])
	assert.Equal(t, Num(-2.5), p[1])
	assert.Equal(t, Op(HintMask), p[2])
	assert.Equal(t, Num(15), p[3])
	assert.Equal(t, Op(RMoveTo), p[4])
	assert.Equal(t, "1 -2.5 hintmask 15 rmoveto", p.String())
}

func TestToCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	p := ParseProgram("10 20 rmoveto 30 0 rlineto endchar")
	cl, err := ToCommands(p)
	require.NoError(t, err)
	assert.Equal(t, CommandList{
		Cmd(RMoveTo, 10, 20),
		Cmd(RLineTo, 30, 0),
		Cmd("endchar"),
	}, cl)
}

func TestToCommandsMask(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	p := Program{Num(1), Num(2), Op(HintMask), Num(0x0F), Num(3), Num(4), Op(RMoveTo)}
	cl, err := ToCommands(p)
	require.NoError(t, err)
	assert.Equal(t, CommandList{
		Cmd(NoOp, 1, 2),
		Cmd(HintMask),
		Cmd(NoOp, 0x0F),
		Cmd(RMoveTo, 3, 4),
	}, cl)
	assert.Equal(t, p, ToProgram(cl))
}

func TestToCommandsMaskTakesAnyToken(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	p := Program{Op(CntrMask), Op("rlineto")}
	cl, err := ToCommands(p)
	require.NoError(t, err)
	assert.Equal(t, CommandList{
		Cmd(CntrMask),
		{Op: NoOp, Args: []Token{Op(RLineTo)}},
	}, cl)
	assert.Equal(t, p, ToProgram(cl))
}

func TestToCommandsStrayOperands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	p := ParseProgram("5 hmoveto 1 2 3")
	cl, err := ToCommands(p)
	require.NoError(t, err)
	assert.Equal(t, CommandList{Cmd(HMoveTo, 5), Cmd(NoOp, 1, 2, 3)}, cl)
	assert.Equal(t, p, ToProgram(cl))
}

func TestToCommandsTruncatedMask(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	_, err := ToCommands(ParseProgram("1 2 rmoveto 7 hintmask"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTruncatedMask))
	var serr *StructuralError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, HintMask, serr.Op)
	assert.Equal(t, 4, serr.Pos)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	for _, src := range corpus {
		p := ParseProgram(src)
		cl, err := ToCommands(p)
		require.NoError(t, err, src)
		assert.Equal(t, p, ToProgram(cl), src)
	}
	assert.Empty(t, ToProgram(nil))
	cl, err := ToCommands(nil)
	require.NoError(t, err)
	assert.Empty(t, cl)
}

// corpus holds well-formed programs used throughout the tests.
var corpus = []string{
	"100 100 rmoveto 50 0 rlineto 0 50 rlineto -50 0 rlineto 0 -50 rlineto endchar",
	"10 20 rmoveto 1 2 3 4 5 6 7 8 9 hhcurveto 1 2 3 4 5 6 7 8 hvcurveto 5 vlineto",
	"0 0 rmoveto 0 0 rlineto 3 0 rlineto 4 0 rlineto 0 0 0 5 0 0 rrcurveto 1 1 rlineto",
	"5 hmoveto 3 vmoveto 1 2 3 4 5 6 7 8 rcurveline 1 2 3 4 5 6 7 8 rlinecurve",
	"1 2 hintmask 0x0F 3 4 rmoveto 10 20 30 40 50 vhcurveto 10 20 30 40 50 60 70 80 90 vvcurveto cntrmask 255 1 2 3 4 hlineto",
	"10 10 rmoveto 1 1 2 2 3 3 rrcurveto 0 5 6 7 8 9 rrcurveto 1 1 2 2 3 3 rrcurveto",
	"-20 300 rmoveto -150 -120 10 -90 vhcurveto 10 0 rlineto 0 10 rlineto 0 0 10 10 0 0 rrcurveto 10 10 rlineto 0 -10 rlineto 0 0 rmoveto 20 20 rmoveto 1000 -2000 rlineto 0.5 0 rlineto 2.5 0 rlineto",
	"50 vmoveto 1 2 3 4 5 6 7 8 9 10 11 12 13 vhcurveto 1 2 3 4 5 6 7 8 9 10 11 12 hvcurveto 2 3 4 5 6 7 8 vlineto",
	"0 0 rmoveto 10 0 10 10 0 10 rrcurveto 0 10 10 0 10 0 rrcurveto 10 0 0 10 10 10 rrcurveto 0 0 10 0 0 0 rrcurveto",
}
