package isobib_test

import (
	"testing"

	"github.com/fwojciec/isobib"
	"github.com/stretchr/testify/assert"
)

func TestParseICSCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, isobib.ICS{Field: "35", Group: "240", Subgroup: "70"}, isobib.ParseICSCode("35.240.70"))
	assert.Equal(t, isobib.ICS{Field: "35", Group: "240"}, isobib.ParseICSCode(" 35.240 "))
	assert.Equal(t, isobib.ICS{Field: "01"}, isobib.ParseICSCode("01"))
	assert.Equal(t, isobib.ICS{}, isobib.ParseICSCode("none"))
}
