package model

import "fmt"

// Pence is a GBP amount in integer minor units. All price arithmetic happens
// in pence; decimal formatting only happens at the presentation boundary.
type Pence int64

func (p Pence) Pounds() float64 {
	return float64(p) / 100
}

// Format renders the amount as "£12.50". Negative amounts keep the sign in
// front of the currency symbol.
func (p Pence) Format() string {
	v := p
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s£%d.%02d", sign, v/100, v%100)
}

// PenceFromPounds converts a decimal pound value to pence, rounding to the
// nearest penny.
func PenceFromPounds(pounds float64) Pence {
	if pounds < 0 {
		return -PenceFromPounds(-pounds)
	}
	return Pence(pounds*100 + 0.5)
}
