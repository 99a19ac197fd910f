package program

import (
	"errors"
	"strings"
	"testing"
)

func TestParseValidPrograms(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"assignment", "x := 1.5;"},
		{"negative literal", "x := -2;"},
		{"arithmetic", "x := 1 + 2 * 3;"},
		{"comparison chain", "ok := 1 < 2 && true;"},
		{"parentheses", "x := (1 + 2) * 3;"},
		{"if", "if true { skip; }"},
		{"if else", "if 1 < 2 { fire; } else { skip; }"},
		{"while", "while true { fire; skip; }"},
		{"break", "while true { break; }"},
		{"primitives", "thrust; thrust_off; fire; skip;"},
		{"turn and print", "turn 1.57; print getx self;"},
		{"queries", "a := asteroid; s := ship; p := planet; b := bullet; e := any;"},
		{"attributes", "x := getx self; v := getvx self; r := getradius self; d := getdir;"},
		{"distance", "d := getdistance ship;"},
		{"math", "x := sqrt 2; y := sin 1; z := cos 1;"},
		{"null compare", "gone := ship == null;"},
		{"comments", "# a gunner\nfire; # pew\n"},
		{"return", "return 1;"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.src); err != nil {
				t.Errorf("Parse(%q) failed: %v", tc.src, err)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"plain equals", "x = 1;", "unexpected character"},
		{"missing assign", "x 1;", "':='"},
		{"missing semicolon", "fire", "';'"},
		{"missing brace", "if true fire;", "'{'"},
		{"unclosed block", "while true { fire;", "'}'"},
		{"bad character", "x := 1 $ 2;", "unexpected character"},
		{"keyword as expression", "x := while;", "not valid here"},
		{"bad number", "x := 1.2.3;", "bad number"},
		{"dangling operator", "x := 1 + ;", "expected an expression"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.src)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", tc.src)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error type = %T, expected *ParseError", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err.Error(), tc.want)
			}
		})
	}
}

func TestParseLocations(t *testing.T) {
	src := "x := 1;\n  y := 2;"
	p, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	seq, ok := p.body.(*Sequence)
	if !ok {
		t.Fatalf("body type = %T, expected *Sequence", p.body)
	}
	if len(seq.Statements) != 2 {
		t.Fatalf("statement count = %d, expected 2", len(seq.Statements))
	}

	first := seq.Statements[0].Loc()
	if first.Line != 1 || first.Column != 1 {
		t.Errorf("first statement at %v, expected 1:1", first)
	}
	second := seq.Statements[1].Loc()
	if second.Line != 2 || second.Column != 3 {
		t.Errorf("second statement at %v, expected 2:3", second)
	}
}

func TestParseErrorLocation(t *testing.T) {
	_, err := Parse("fire;\nx = 1;")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error type = %T, expected *ParseError", err)
	}
	if pe.Location.Line != 2 {
		t.Errorf("error line = %d, expected 2", pe.Location.Line)
	}
}

func TestSourceLocationBefore(t *testing.T) {
	tests := []struct {
		name     string
		a, b     SourceLocation
		expected bool
	}{
		{"earlier line", SourceLocation{1, 9}, SourceLocation{2, 1}, true},
		{"same line earlier column", SourceLocation{3, 2}, SourceLocation{3, 5}, true},
		{"equal", SourceLocation{3, 5}, SourceLocation{3, 5}, false},
		{"later", SourceLocation{4, 1}, SourceLocation{3, 9}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Before(tc.b); got != tc.expected {
				t.Errorf("Before() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
