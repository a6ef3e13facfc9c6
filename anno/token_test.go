package anno

import "testing"

func TestTokenEnd(t *testing.T) {
	cases := []struct {
		start int
		text  string
		want  int
	}{
		{0, "This", 4},
		{10, "test.", 15},
		{8, "täst.", 13},
		{3, "", 3},
	}
	for _, tc := range cases {
		tok := Token{Start: tc.start, Text: tc.text}
		if got := tok.End(); got != tc.want {
			t.Errorf("Token{Start: %d, Text: %q}.End() = %d, want %d", tc.start, tc.text, got, tc.want)
		}
	}
}

func TestTokenBounds(t *testing.T) {
	tok := Token{Start: 5, Text: "is"}
	start, end := tok.Bounds()
	if start != 5 || end != 7 {
		t.Fatalf("expected bounds (5, 7), got (%d, %d)", start, end)
	}
}

func TestTokenIsSpace(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{" ", true},
		{"\n\n", true},
		{"\t ", true},
		{"", true},
		{"word", false},
		{" word ", false},
	}
	for _, tc := range cases {
		tok := Token{Text: tc.text}
		if got := tok.IsSpace(); got != tc.want {
			t.Errorf("Token{Text: %q}.IsSpace() = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestSpanBounds(t *testing.T) {
	span := Span{Start: 4, End: 12}
	start, end := span.Bounds()
	if start != 4 || end != 12 {
		t.Fatalf("expected bounds (4, 12), got (%d, %d)", start, end)
	}
}

func TestFeaturesString(t *testing.T) {
	feats := Features{"PronType": "Dem", "Number": "Sing", "Case": "Nom"}
	want := "Case=Nom|Number=Sing|PronType=Dem"
	for i := 0; i < 10; i++ {
		if got := feats.String(); got != want {
			t.Fatalf("run %d: got %q, want %q", i, got, want)
		}
	}
	if got := (Features{}).String(); got != "" {
		t.Errorf("empty features: got %q", got)
	}
	if got := Features(nil).String(); got != "" {
		t.Errorf("nil features: got %q", got)
	}
}

func TestFeaturesGet(t *testing.T) {
	feats := Features{"Case": "Nom"}
	if got := feats.Get("Case"); got != "Nom" {
		t.Errorf("got %q", got)
	}
	if got := feats.Get("Tense"); got != "" {
		t.Errorf("unset feature: got %q", got)
	}
}

func TestFeaturesClone(t *testing.T) {
	feats := Features{"Case": "Nom"}
	clone := feats.Clone()
	clone["Case"] = "Acc"
	if feats.Get("Case") != "Nom" {
		t.Fatal("mutating a clone must not affect the original")
	}
	if Features(nil).Clone() != nil {
		t.Fatal("nil features must clone to nil")
	}
}
