package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFormatter_EmptySymbolFallsBack(t *testing.T) {
	f := NewFormatter("")

	assert.Equal(t, "R", f.Symbol())
}

func TestFormatter_Format_WholeAmount(t *testing.T) {
	f := NewFormatter("R")

	assert.Equal(t, "R250", f.Format(25000))
	assert.Equal(t, "R0", f.Format(0))
}

func TestFormatter_Format_Cents(t *testing.T) {
	f := NewFormatter("R")

	assert.Equal(t, "R250.50", f.Format(25050))
	assert.Equal(t, "R0.05", f.Format(5))
}

func TestFormatter_Format_NoThousandsSeparators(t *testing.T) {
	f := NewFormatter("R")

	assert.Equal(t, "R1250000", f.Format(125000000))
}

func TestFormatter_Format_Negative(t *testing.T) {
	f := NewFormatter("R")

	assert.Equal(t, "-R15", f.Format(-1500))
	assert.Equal(t, "-R15.25", f.Format(-1525))
}

func TestFormatter_Format_CustomSymbol(t *testing.T) {
	f := NewFormatter("$")

	assert.Equal(t, "$99.99", f.Format(9999))
}
