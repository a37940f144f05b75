package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPenceFormat(t *testing.T) {
	tests := []struct {
		pence Pence
		want  string
	}{
		{0, "£0.00"},
		{5, "£0.05"},
		{99, "£0.99"},
		{100, "£1.00"},
		{2500, "£25.00"},
		{3550, "£35.50"},
		{123456, "£1234.56"},
		{-1250, "-£12.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.pence.Format())
	}
}

func TestPenceFromPounds(t *testing.T) {
	assert.Equal(t, Pence(2500), PenceFromPounds(25.00))
	assert.Equal(t, Pence(3549), PenceFromPounds(35.49))
	// float artefacts round to the nearest penny
	assert.Equal(t, Pence(1999), PenceFromPounds(19.99))
	assert.Equal(t, Pence(-1050), PenceFromPounds(-10.50))
}

func TestPencePounds(t *testing.T) {
	assert.InDelta(t, 12.5, Pence(1250).Pounds(), 0.0001)
}
