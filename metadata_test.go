package sso

import "testing"

func TestMetadata_States(t *testing.T) {
	for _, c := range []struct {
		name   string
		m      metadata
		inline bool
		static bool
		heap   bool
	}{
		{"zero", 0, false, false, true},
		{"inlined", flagInlined, true, false, false},
		{"inlined-len", inlined(17), true, false, false},
		{"static", flagStatic, false, true, false},
		{"ascii-hint-only", flagASCII, false, false, true},
	} {
		t.Run(c.name, func(t *testing.T) {
			if actual, expected := c.m.isInlined(), c.inline; actual != expected {
				t.Errorf("isInlined: expected [%v], got [%v]", expected, actual)
			}

			if actual, expected := c.m.isStatic(), c.static; actual != expected {
				t.Errorf("isStatic: expected [%v], got [%v]", expected, actual)
			}

			if actual, expected := c.m.isHeap(), c.heap; actual != expected {
				t.Errorf("isHeap: expected [%v], got [%v]", expected, actual)
			}
		})
	}
}

func TestMetadata_InlineLen(t *testing.T) {
	for n := 0; n <= SizeInline; n++ {
		if actual := inlined(n).inlineLen(); actual != n {
			t.Errorf("expected [%d], got [%d]", n, actual)
		}

		if !inlined(n).isInlined() {
			t.Errorf("inlined(%d) lost the inline flag", n)
		}
	}

	// The reserved hint must not disturb the length field.
	m := inlined(21) | flagASCII
	if actual := m.inlineLen(); actual != 21 {
		t.Errorf("expected [21], got [%d]", actual)
	}
}
