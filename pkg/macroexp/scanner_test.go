package macroexp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/260830-go-pkg-macroexp/pkg/macroexp"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  *macroexp.Macro
	}{
		{
			name:  "no macro returns nil",
			value: "plain text without dollars",
			want:  nil,
		},
		{
			name:  "bare macro terminated by whitespace keeps the terminator",
			value: "$foo bar",
			want: &macroexp.Macro{
				Start: 0, End: 4,
				Name: "foo",
				Raw:  "$foo ",
			},
		},
		{
			name:  "bare macro terminated by end of string",
			value: "$foo",
			want: &macroexp.Macro{
				Start: 0, End: 3,
				Name: "foo",
				Raw:  "$foo",
			},
		},
		{
			name:  "dollar delimited macro",
			value: "$foo$ rest",
			want: &macroexp.Macro{
				Start: 0, End: 4,
				Name: "foo", Raw: "$foo$",
				EndDollar: true,
			},
		},
		{
			name:  "macro function with nested parentheses",
			value: "$NAME(a(b),c)$x",
			want: &macroexp.Macro{
				Start: 0, End: 13,
				Name: "NAME", Args: "a(b),c", Raw: "$NAME(a(b),c)$",
				HasArgs: true, EndDollar: true,
			},
		},
		{
			name:  "macro function with empty argument group",
			value: "$F()$",
			want: &macroexp.Macro{
				Start: 0, End: 4,
				Name: "F", Args: "", Raw: "$F()$",
				HasArgs: true, EndDollar: true,
			},
		},
		{
			name:  "offsets are relative to the input",
			value: "prefix $foo$",
			want: &macroexp.Macro{
				Start: 7, End: 11,
				Name: "foo", Raw: "$foo$",
				EndDollar: true,
			},
		},
		{
			name:  "dollars inside the argument group do not terminate",
			value: "$DUPLICATE($EXPAND(h[0-1])$)$",
			want: &macroexp.Macro{
				Start: 0, End: 28,
				Name: "DUPLICATE", Args: "$EXPAND(h[0-1])$",
				Raw:     "$DUPLICATE($EXPAND(h[0-1])$)$",
				HasArgs: true, EndDollar: true,
			},
		},
		{
			name:  "whitespace inside the argument group does not terminate",
			value: "$F(a b)$",
			want: &macroexp.Macro{
				Start: 0, End: 7,
				Name: "F", Args: "a b", Raw: "$F(a b)$",
				HasArgs: true, EndDollar: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := macroexp.Scan(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScan_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		value string
		kind  macroexp.ErrKind
	}{
		{
			name:  "unclosed parentheses",
			value: "$EXPAND(h[0-2",
			kind:  macroexp.ErrUnclosedParens,
		},
		{
			name:  "closing parenthesis before opening one",
			value: "$DUPLICATE(a,b))$",
			kind:  macroexp.ErrEarlyClosingParen,
		},
		{
			name:  "second top-level parenthesis group",
			value: "$F(a)(b)$",
			kind:  macroexp.ErrMultipleParenGroups,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := macroexp.Scan(tt.value)
			require.Error(t, err)
			assert.Nil(t, got)

			var synErr *macroexp.SyntaxError
			require.ErrorAs(t, err, &synErr)
			assert.Equal(t, tt.kind, synErr.Kind)
			assert.NotEmpty(t, synErr.Text, "error should identify the offending substring")
		})
	}
}
