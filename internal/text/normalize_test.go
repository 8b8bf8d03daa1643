package text

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
)

func TestNormalizeEmphasis(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bold", "**bold** text", "bold text"},
		{"italic", "an *italic* word", "an italic word"},
		{"mixed", "a **b** c *d* e", "a b c d e"},
		{"unterminated", "a **broken", "a broken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeHeadings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single", "# Title\nbody", "body"},
		{"nested levels", "## Section\n### Sub\ncontent here", "content here"},
		{"heading only", "#### Alone", ""},
		{"hash mid line survives", "price is 5 # not a heading", "price is 5 # not a heading"},
		{"hash without space survives", "#hashtag stays", "#hashtag stays"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeParentheticals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"stage direction", "(laughs) welcome back", "welcome back"},
		{"multiple", "a (b) c (d) e", "a c e"},
		{"whole input", "(just music)", ""},
		{"across newline survives", "left (a\nb) right", "left (a b) right"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeSpeakerLabels(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single", "Host: welcome", "welcome"},
		{"per line", "Alice: first\nBob: second", "first second"},
		{"mid line survives", "we say: nothing", "we say: nothing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeWhitespaceAndMarkers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"newline runs", "a\n\n\nb", "a b"},
		{"list dashes", "- first\n- second", "first second"},
		{"stray asterisks", "rated * five * stars", "rated five stars"},
		{"surrounding whitespace", "  \n padded \n ", "padded"},
		{"space runs collapse", "too   many    spaces", "too many spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeFullPipeline(t *testing.T) {
	raw := "## Intro\nHost: Hello! (laughs) **This** is a test.\n\nBye."
	want := "Hello! This is a test. Bye."

	if got := Normalize(raw); got != want {
		t.Errorf("Normalize(%q) = %q, want %q", raw, got, want)
	}
}

func TestNormalizeEmptyResults(t *testing.T) {
	inputs := []string{"", "   ", "\n\n", "(just music)", "# Heading\n(applause)", "***"}

	for _, input := range inputs {
		if got := Normalize(input); got != "" {
			t.Errorf("Normalize(%q) = %q, want empty", input, got)
		}
	}
}

// decoratedScript builds a plausible raw script out of clean words, with
// random emphasis, headings, parentheticals, and speaker labels layered
// on top. The clean words never contain the decoration characters, so
// the removal properties below are exact.
func decoratedScript(rng *rand.Rand) string {
	words := []string{"alpha", "beta", "gamma", "delta", "omega", "signal", "channel", "voice"}
	var lines []string
	for i := 0; i < 3+rng.Intn(5); i++ {
		switch rng.Intn(4) {
		case 0:
			lines = append(lines, fmt.Sprintf("%s %s heading", strings.Repeat("#", 1+rng.Intn(3)), words[rng.Intn(len(words))]))
		case 1:
			lines = append(lines, fmt.Sprintf("Host: %s (aside) **%s** done.", words[rng.Intn(len(words))], words[rng.Intn(len(words))]))
		case 2:
			lines = append(lines, fmt.Sprintf("*%s* and %s.", words[rng.Intn(len(words))], words[rng.Intn(len(words))]))
		default:
			lines = append(lines, fmt.Sprintf("%s %s plain.", words[rng.Intn(len(words))], words[rng.Intn(len(words))]))
		}
	}
	return strings.Join(lines, "\n")
}

func TestNormalizeRemovalProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		raw := decoratedScript(rng)
		got := Normalize(raw)

		if strings.ContainsAny(got, "*\n#()") {
			t.Fatalf("Normalize(%q) = %q, contains decoration characters", raw, got)
		}
		if speakerLabels.MatchString(got) {
			t.Fatalf("Normalize(%q) = %q, still starts with a speaker label", raw, got)
		}
		if got != strings.TrimSpace(got) {
			t.Fatalf("Normalize(%q) = %q, not trimmed", raw, got)
		}
		if strings.Contains(got, "  ") {
			t.Fatalf("Normalize(%q) = %q, contains a double space", raw, got)
		}
	}
}

func TestNormalizeIdempotentOnCleanOutput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		once := Normalize(decoratedScript(rng))
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not stable on its own output: %q -> %q", once, twice)
		}
	}
}
