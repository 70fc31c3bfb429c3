package clean

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestAnonymizer_Token(t *testing.T) {
	anon := NewAnonymizer(8)

	token := anon.Token("Jane Doe")
	if len(token) != 8 {
		t.Errorf("Token length = %d, want 8", len(token))
	}

	if token == "Jane Doe" {
		t.Error("Token should not equal the input")
	}

	// Deterministic.
	if anon.Token("Jane Doe") != token {
		t.Error("Token is not deterministic")
	}

	// Distinct inputs yield distinct tokens.
	if anon.Token("John Doe") == token {
		t.Error("Distinct inputs produced the same token")
	}
}

func TestAnonymizer_EmptyPassthrough(t *testing.T) {
	anon := NewAnonymizer(8)

	if got := anon.Token(""); got != "" {
		t.Errorf("Token(\"\") = %q, want empty passthrough", got)
	}
}

func TestAnonymizer_ConfigurableLength(t *testing.T) {
	for _, length := range []int{4, 8, 16, 64} {
		anon := NewAnonymizer(length)

		if got := len(anon.Token("value")); got != length {
			t.Errorf("Token length with hashLength=%d: got %d", length, got)
		}
	}
}

func TestAnonymizer_InvalidLengthFallsBack(t *testing.T) {
	for _, length := range []int{0, -1, 65} {
		anon := NewAnonymizer(length)

		if got := len(anon.Token("value")); got != DefaultHashLength {
			t.Errorf("Token length with hashLength=%d: got %d, want default %d", length, got, DefaultHashLength)
		}
	}
}

func TestAnonymizer_Column(t *testing.T) {
	anon := NewAnonymizer(8)

	out := anon.Column([]string{"alice", "", "bob"})

	if len(out) != 3 {
		t.Fatalf("Column returned %d values, want 3", len(out))
	}

	if out[1] != "" {
		t.Errorf("Empty cell should pass through, got %q", out[1])
	}

	if out[0] == "alice" || out[2] == "bob" {
		t.Error("Non-empty cells should be hashed")
	}
}

func TestProperty_AnonymizerDeterministic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	anon := NewAnonymizer(8)

	properties.Property("same input always yields the same token", prop.ForAll(
		func(s string) bool {
			return anon.Token(s) == anon.Token(s)
		},
		gen.AnyString(),
	))

	properties.Property("non-empty tokens have the configured length", prop.ForAll(
		func(s string) bool {
			if s == "" {
				return anon.Token(s) == ""
			}

			return len(anon.Token(s)) == 8
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
