package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundDecimal(t *testing.T) {
	assert.Equal(t, 3.14, RoundDecimal(3.14159, 2))
	assert.Equal(t, 0.0012, RoundDecimal(0.00123, 4))
	assert.Equal(t, 2.0, RoundDecimal(1.99999, 3))
}

func TestSplitTrim(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitTrim(" a, ,b ,", ","))
	assert.Nil(t, SplitTrim("", ","))
}
