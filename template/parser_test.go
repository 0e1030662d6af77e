package template

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Token
	}{
		{
			name: "empty template",
			raw:  "",
			want: []Token{},
		},
		{
			name: "text only",
			raw:  "Hello, World!",
			want: []Token{Literal{Text: "Hello, World!"}},
		},
		{
			name: "single placeholder",
			raw:  "Hello, {Name}!",
			want: []Token{
				Literal{Text: "Hello, "},
				Placeholder{Name: "Name"},
				Literal{Text: "!"},
			},
		},
		{
			name: "multiple placeholders",
			raw:  "User {UserId} logged in from {IpAddress}",
			want: []Token{
				Literal{Text: "User "},
				Placeholder{Name: "UserId"},
				Literal{Text: " logged in from "},
				Placeholder{Name: "IpAddress"},
			},
		},
		{
			name: "escaped braces only",
			raw:  "{{literal}}",
			want: []Token{Literal{Text: "{"}, Literal{Text: "literal"}, Literal{Text: "}"}},
		},
		{
			name: "format specifier",
			raw:  "Value: {Amount:0.00}",
			want: []Token{
				Literal{Text: "Value: "},
				Placeholder{Name: "Amount", Format: "0.00"},
			},
		},
		{
			name: "alignment only",
			raw:  "{Name,10}",
			want: []Token{Placeholder{Name: "Name", Alignment: 10}},
		},
		{
			name: "negative alignment with format",
			raw:  "{Name,-10:upper}",
			want: []Token{Placeholder{Name: "Name", Alignment: -10, Format: "upper"}},
		},
		{
			name: "unclosed placeholder becomes literal",
			raw:  "Hello, {Name",
			want: []Token{Literal{Text: "Hello, "}, Literal{Text: "{Name"}},
		},
		{
			name: "invalid name falls back to literal placeholder text",
			raw:  "{123}",
			want: []Token{Placeholder{Name: "123"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if !reflect.DeepEqual(got.Tokens, tt.want) {
				t.Errorf("Parse(%q).Tokens = %#v, want %#v", tt.raw, got.Tokens, tt.want)
			}
		})
	}
}

func TestPlaceholderNames(t *testing.T) {
	got := Parse("{A} and {B} and {A}").PlaceholderNames()
	want := []string{"A", "B", "A"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PlaceholderNames() = %v, want %v", got, want)
	}
}
