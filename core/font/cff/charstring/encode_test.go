package charstring

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestOperandLen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	for x, n := range map[float64]int{
		0: 1, 107: 1, -107: 1,
		108: 2, -108: 2, 1131: 2, -1131: 2,
		1132: 3, -32768: 3, 32767: 3,
		32768: 5, 0.5: 5, -2.25: 5,
	} {
		assert.Equal(t, n, OperandLen(x), "%v", x)
	}
}

func TestEncodedLen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tyse.fonts")
	defer teardown()
	//
	assert.Equal(t, 0, EncodedLen(nil))
	assert.Equal(t, 1, OperatorLen(RLineTo))
	assert.Equal(t, 2, OperatorLen("flex1"))
	assert.Equal(t, 0, OperatorLen(NoOp))
	cl, err := ToCommands(ParseProgram("10 200 rmoveto hintmask 255 0.5 hlineto 1 2 3 4 5 6 flex1"))
	assert.NoError(t, err)
	// 1+2+1 | 1 | 2 | 5+1 | 6+2
	assert.Equal(t, 21, EncodedLen(cl))
}
