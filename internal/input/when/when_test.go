package when

import (
	"errors"
	"strings"
	"testing"
)

func testContext() *Context {
	ctx := NewContext()
	ctx.Conditions["editorTextFocus"] = true
	ctx.Conditions["editorReadonly"] = false
	ctx.Conditions["findWidgetVisible"] = true
	ctx.Variables["resourceLangId"] = "go"
	ctx.Variables["activeEditor"] = "main.go"
	return ctx
}

func TestEval(t *testing.T) {
	ctx := testContext()

	tests := []struct {
		expr string
		want bool
	}{
		{"", true},
		{"editorTextFocus", true},
		{"editorReadonly", false},
		{"missingCondition", false},
		{"!editorReadonly", true},
		{"!editorTextFocus", false},
		{"editorTextFocus && !editorReadonly", true},
		{"editorTextFocus && editorReadonly", false},
		{"editorReadonly || findWidgetVisible", true},
		{"editorReadonly || missingCondition", false},
		{"resourceLangId == go", true},
		{"resourceLangId == python", false},
		{"resourceLangId != python", true},
		{"resourceLangId != go", false},
		{"missingVar == go", false},
		{"(editorReadonly || findWidgetVisible) && editorTextFocus", true},
		{"!(editorTextFocus && findWidgetVisible)", false},
		{"resourceLangId == go && editorTextFocus", true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			p, err := Parse(tt.expr)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.expr, err)
			}
			if got := p.Eval(ctx); got != tt.want {
				t.Errorf("Eval(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"&&",
		"editorTextFocus &&",
		"editorTextFocus && && editorReadonly",
		"(editorTextFocus",
		"resourceLangId ==",
		"resourceLangId !=",
		"!!!",
		"a b", // trailing garbage
	}

	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			_, err := Parse(expr)
			if err == nil {
				t.Fatalf("Parse(%q) expected error, got nil", expr)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("Parse(%q) error = %v, want ErrParse", expr, err)
			}
			if !strings.Contains(err.Error(), expr) {
				t.Errorf("error %q should name the offending expression %q", err, expr)
			}
		})
	}
}

func TestEmptyParsesToAlways(t *testing.T) {
	p, err := Parse("")
	if err != nil {
		t.Fatalf("Parse(\"\") error = %v", err)
	}
	if p != Always {
		t.Error("empty expression should compile to the Always predicate")
	}
	if !p.Eval(nil) {
		t.Error("Always.Eval(nil) = false, want true")
	}
}

func TestNilPredicateAlwaysTrue(t *testing.T) {
	var p *Predicate
	if !p.Eval(testContext()) {
		t.Error("nil predicate should evaluate to true")
	}
}

func TestEvalNilContext(t *testing.T) {
	p, err := Parse("editorTextFocus")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if p.Eval(nil) {
		t.Error("absent condition should evaluate to false under nil context")
	}
}

func TestPredicateString(t *testing.T) {
	p, err := Parse("  editorTextFocus && !editorReadonly ")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	want := "editorTextFocus && !editorReadonly"
	if p.String() != want {
		t.Errorf("String() = %q, want %q", p.String(), want)
	}
}
