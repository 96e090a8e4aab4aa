package syntax

import (
	"reflect"
	"testing"
)

func TestClassifyKeyword(t *testing.T) {
	spans := Classify("currency")
	want := []Span{{0, 8, Keyword}}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("Expected %v, got %v", want, spans)
	}

	for _, kw := range []string{"initial", "rate", "split", "rev"} {
		spans := Classify(kw)
		if len(spans) != 1 || spans[0].Category != Keyword || spans[0].End != len(kw) {
			t.Errorf("Expected one Keyword span for %q, got %v", kw, spans)
		}
	}
}

func TestClassifyKeywordWholeWordsOnly(t *testing.T) {
	// "rates" and "xrate" are ordinary identifiers, not the rate keyword.
	if spans := Classify("rates"); len(spans) != 0 {
		t.Errorf("Expected no spans for \"rates\", got %v", spans)
	}
	if spans := Classify("xrate"); len(spans) != 0 {
		t.Errorf("Expected no spans for \"xrate\", got %v", spans)
	}
}

func TestClassifyLine(t *testing.T) {
	spans := Classify("rate 2024-01-15 # set rate here")
	want := []Span{
		{0, 4, Keyword},
		{5, 15, Date},
		{16, 31, Comment},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("Expected %v, got %v", want, spans)
	}
}

func TestClassifyCommentSwallowsToEndOfLine(t *testing.T) {
	// Dates and numbers after the # belong to the comment, but the next
	// line is classified normally again.
	spans := Classify("# 2024-01-15 100\ninitial a:bank 50")
	want := []Span{
		{0, 16, Comment},
		{17, 24, Keyword},
		{25, 31, PositiveRef},
		{32, 34, Number},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("Expected %v, got %v", want, spans)
	}
}

func TestClassifyAccountRefs(t *testing.T) {
	spans := Classify("a:checking")
	want := []Span{{0, 10, PositiveRef}}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("Expected %v, got %v", want, spans)
	}

	spans = Classify("e:rent")
	want = []Span{{0, 6, NegativeRef}}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("Expected %v, got %v", want, spans)
	}

	spans = Classify("i:salary l:visa-card")
	want = []Span{
		{0, 8, PositiveRef},
		{9, 20, NegativeRef},
	}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("Expected %v, got %v", want, spans)
	}
}

func TestClassifyNestedAccountRef(t *testing.T) {
	spans := Classify("a:bank:checking-2024")
	want := []Span{{0, 20, PositiveRef}}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("Expected %v, got %v", want, spans)
	}
}

func TestClassifyNumbers(t *testing.T) {
	cases := []string{"100", "100L", "100l", "12j", "3.14", "3.14e10j", "12.", ".5", ".5e-3", "1e10"}
	for _, input := range cases {
		spans := Classify(input)
		if len(spans) != 1 {
			t.Errorf("Expected one span for %q, got %v", input, spans)
			continue
		}
		if spans[0].Category != Number {
			t.Errorf("Expected Number for %q, got %v", input, spans[0].Category)
		}
		if spans[0].Start != 0 || spans[0].End != len(input) {
			t.Errorf("Expected %q covered entirely, got %v", input, spans[0])
		}
	}
}

func TestClassifyDate(t *testing.T) {
	spans := Classify("2024-01-15")
	want := []Span{{0, 10, Date}}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("Expected %v, got %v", want, spans)
	}

	// No calendar validation at this layer.
	spans = Classify("9999-99-99")
	want = []Span{{0, 10, Date}}
	if !reflect.DeepEqual(spans, want) {
		t.Errorf("Expected %v, got %v", want, spans)
	}
}

func TestClassifyEmpty(t *testing.T) {
	if spans := Classify(""); len(spans) != 0 {
		t.Errorf("Expected no spans for empty input, got %v", spans)
	}
}

func TestClassifyUnmatchedText(t *testing.T) {
	// Plain identifiers carry no category, and re-running on an unstyled
	// gap still yields nothing.
	if spans := Classify("pocket food games"); len(spans) != 0 {
		t.Errorf("Expected no spans, got %v", spans)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	input := "2014-01-01 a:pocket e:food 100.50 USD # lunch"
	first := Classify(input)
	for i := 0; i < 3; i++ {
		if again := Classify(input); !reflect.DeepEqual(first, again) {
			t.Errorf("Classification not deterministic: %v then %v", first, again)
		}
	}
}

func TestClassifySpansSortedAndDisjoint(t *testing.T) {
	spans := Classify("initial a:bank 1000 USD # opening 2024-01-01\nrate EUR 1.1")
	prevEnd := 0
	for _, s := range spans {
		if s.Start < prevEnd {
			t.Errorf("Span %v overlaps or is out of order (previous end %d)", s, prevEnd)
		}
		if s.End <= s.Start {
			t.Errorf("Span %v is empty or inverted", s)
		}
		prevEnd = s.End
	}
}
