package tiff

import "testing"

func TestRatioU32EqualReducedForms(t *testing.T) {
	a := RatioU32{Num: 5, Den: 10}
	b := RatioU32{Num: 1, Den: 2}
	if !a.Equal(b) {
		t.Fatalf("%v and %v should be equal", a, b)
	}
	if a.Compare(b) != 0 {
		t.Fatalf("expected Compare == 0")
	}
}

func TestRatioU32Ordering(t *testing.T) {
	small := RatioU32{Num: 1, Den: 4}
	big := RatioU32{Num: 1, Den: 2}
	if small.Compare(big) != -1 {
		t.Fatalf("expected small < big")
	}
	if big.Compare(small) != 1 {
		t.Fatalf("expected big > small")
	}
}

func TestRatioI32NegativeDenominator(t *testing.T) {
	a := RatioI32{Num: -1, Den: 2}
	b := RatioI32{Num: 1, Den: -2}
	if !a.Equal(b) {
		t.Fatalf("%v and %v should be equal (both represent -1/2)", a, b)
	}
}

func TestRatioI32Ordering(t *testing.T) {
	neg := RatioI32{Num: -1, Den: 2}
	pos := RatioI32{Num: 1, Den: 2}
	if neg.Compare(pos) != -1 {
		t.Fatalf("expected -1/2 < 1/2")
	}
}
