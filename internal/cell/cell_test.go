package cell

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestZeroValueIsEmpty(t *testing.T) {
	var v Value
	assert.Equal(t, KindEmpty, v.Kind())
	assert.True(t, v.IsEmpty())
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, KindNumber, Number(120).Kind())
	assert.Equal(t, float64(120), Number(120).Number())

	assert.Equal(t, KindText, Text("Tube Screamer").Kind())
	assert.Equal(t, "Tube Screamer", Text("Tube Screamer").Text())

	d := time.Date(2025, time.July, 25, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, KindDate, Date(d).Kind())
	assert.Equal(t, d, Date(d).Date())
	assert.False(t, Date(d).IsEmpty())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "empty", KindEmpty.String())
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "date", KindDate.String())
}
