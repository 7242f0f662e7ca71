package prefilter

import "testing"

func toU16(s string) []uint16 {
	out := make([]uint16, len(s))
	for i, c := range []byte(s) {
		out[i] = uint16(c)
	}
	return out
}

func TestBuildNilOnExactSearch(t *testing.T) {
	if pf := Build(toU16("abcdefgh"), 0); pf != nil {
		t.Fatalf("Build with maxErrors=0 = %v, want nil", pf)
	}
}

func TestBuildNilWhenErrorsCoverWholePattern(t *testing.T) {
	pattern := toU16("abcdefgh")
	if pf := Build(pattern, len(pattern)); pf != nil {
		t.Fatalf("Build with maxErrors=len(pattern) = %v, want nil", pf)
	}
	if pf := Build(pattern, len(pattern)+5); pf != nil {
		t.Fatalf("Build with maxErrors>len(pattern) = %v, want nil", pf)
	}
}

func TestBuildNilWhenPiecesTooShort(t *testing.T) {
	// 5 symbols split into 4 pieces (maxErrors=3) gives piece length 1,
	// below minPieceLen.
	if pf := Build(toU16("abcde"), 3); pf != nil {
		t.Fatalf("Build with short pieces = %v, want nil", pf)
	}
}

func TestBuildNonNilForUsefulBudget(t *testing.T) {
	pf := Build(toU16("abcdefghijklmnop"), 2)
	if pf == nil {
		t.Fatal("Build = nil, want a filter for a 16-symbol pattern at k=2")
	}
}

func TestMayMatchNilFilterAlwaysTrue(t *testing.T) {
	var pf *PieceFilter
	if !pf.MayMatch(toU16("anything at all")) {
		t.Fatal("nil *PieceFilter.MayMatch = false, want true (always scan)")
	}
}

func TestMayMatchSoundness(t *testing.T) {
	// maxErrors=2 over a 15-symbol pattern splits into 3 pieces of length 5;
	// any alignment within budget must reproduce at least one piece intact.
	pattern := toU16("abcdefghijklmno")
	pf := Build(pattern, 2)
	if pf == nil {
		t.Fatal("Build returned nil, want a filter")
	}

	// Text containing the pattern's middle piece verbatim must not be
	// rejected.
	textWithPiece := toU16("xxxxx" + "fghij" + "xxxxx")
	if !pf.MayMatch(textWithPiece) {
		t.Fatal("MayMatch = false for text containing an exact piece, want true")
	}

	// Text with no piece present anywhere must be rejected.
	textWithoutPiece := toU16("zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz")
	if pf.MayMatch(textWithoutPiece) {
		t.Fatal("MayMatch = true for text containing no piece, want false")
	}
}

func TestEncodeUint16RoundTripsDistinctCodeUnits(t *testing.T) {
	a := encodeUint16([]uint16{0x0102})
	b := encodeUint16([]uint16{0x0201})
	if len(a) != 2 || len(b) != 2 {
		t.Fatalf("encodeUint16 length = %d/%d, want 2/2", len(a), len(b))
	}
	if a[0] == b[0] && a[1] == b[1] {
		t.Fatal("encodeUint16 collided two distinct code units onto the same bytes")
	}
}
