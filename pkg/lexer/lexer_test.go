package lexer

import "testing"

func runTokenTest(t *testing.T, input string, tests []struct {
	expectedType    TokenType
	expectedLiteral string
}) {
	t.Helper()
	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextTokenSimpleCall(t *testing.T) {
	input := `(+ 1 2)`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_LPAREN, "("},
		{TOKEN_IDENT, "+"},
		{TOKEN_INT, "1"},
		{TOKEN_INT, "2"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_EOF, ""},
	}

	runTokenTest(t, input, tests)
}

func TestNextTokenLetAndLambda(t *testing.T) {
	input := `(let ((x 1) (y 2)) (lambda (a b) (+ a b)))`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_LPAREN, "("},
		{TOKEN_LET, "let"},
		{TOKEN_LPAREN, "("},
		{TOKEN_LPAREN, "("},
		{TOKEN_IDENT, "x"},
		{TOKEN_INT, "1"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_LPAREN, "("},
		{TOKEN_IDENT, "y"},
		{TOKEN_INT, "2"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_LPAREN, "("},
		{TOKEN_LAMBDA, "lambda"},
		{TOKEN_LPAREN, "("},
		{TOKEN_IDENT, "a"},
		{TOKEN_IDENT, "b"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_LPAREN, "("},
		{TOKEN_IDENT, "+"},
		{TOKEN_IDENT, "a"},
		{TOKEN_IDENT, "b"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_EOF, ""},
	}

	runTokenTest(t, input, tests)
}

func TestNextTokenBuiltinSymbols(t *testing.T) {
	input := `(set! x (< a b)) (<= a b) (!= a b)`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_LPAREN, "("},
		{TOKEN_SET, "set!"},
		{TOKEN_IDENT, "x"},
		{TOKEN_LPAREN, "("},
		{TOKEN_IDENT, "<"},
		{TOKEN_IDENT, "a"},
		{TOKEN_IDENT, "b"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_LPAREN, "("},
		{TOKEN_IDENT, "<="},
		{TOKEN_IDENT, "a"},
		{TOKEN_IDENT, "b"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_LPAREN, "("},
		{TOKEN_IDENT, "!="},
		{TOKEN_IDENT, "a"},
		{TOKEN_IDENT, "b"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_EOF, ""},
	}

	runTokenTest(t, input, tests)
}

func TestNextTokenNumbersSignedAndReal(t *testing.T) {
	input := "123 -5 +2 3.14 -0.5"

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_INT, "123"},
		{TOKEN_INT, "-5"},
		{TOKEN_INT, "+2"},
		{TOKEN_FLOAT, "3.14"},
		{TOKEN_FLOAT, "-0.5"},
		{TOKEN_EOF, ""},
	}

	runTokenTest(t, input, tests)
}

func TestNextTokenStringIsRaw(t *testing.T) {
	input := `"hello \n world"`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_STRING, `hello \n world`},
		{TOKEN_EOF, ""},
	}

	runTokenTest(t, input, tests)
}

func TestNextTokenBooleans(t *testing.T) {
	input := "#t #f"

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_BOOL, "#t"},
		{TOKEN_BOOL, "#f"},
		{TOKEN_EOF, ""},
	}

	runTokenTest(t, input, tests)
}

func TestNextTokenPNBlockAndPositional(t *testing.T) {
	input := `{[x] + $1 $2}`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_LBRACE, "{"},
		{TOKEN_LBRACKET, "["},
		{TOKEN_IDENT, "x"},
		{TOKEN_RBRACKET, "]"},
		{TOKEN_IDENT, "+"},
		{TOKEN_IDENT, "$1"},
		{TOKEN_IDENT, "$2"},
		{TOKEN_RBRACE, "}"},
		{TOKEN_EOF, ""},
	}

	runTokenTest(t, input, tests)
}

func TestNextTokenAutomatonArrows(t *testing.T) {
	input := `(automaton 1 [] ((: .a -> 1 accept)))`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_LPAREN, "("},
		{TOKEN_AUTOMATON, "automaton"},
		{TOKEN_INT, "1"},
		{TOKEN_LBRACKET, "["},
		{TOKEN_RBRACKET, "]"},
		{TOKEN_LPAREN, "("},
		{TOKEN_LPAREN, "("},
		{TOKEN_COLON, ":"},
		{TOKEN_DOT, "."},
		{TOKEN_IDENT, "a"},
		{TOKEN_ARROW_RIGHT, "->"},
		{TOKEN_INT, "1"},
		{TOKEN_IDENT, "accept"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_EOF, ""},
	}

	runTokenTest(t, input, tests)
}

func TestNextTokenComments(t *testing.T) {
	input := `# line comment
(define x 5) ; trailing comment
/* block
   comment */
(define y 10)`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_LPAREN, "("},
		{TOKEN_DEFINE, "define"},
		{TOKEN_IDENT, "x"},
		{TOKEN_INT, "5"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_LPAREN, "("},
		{TOKEN_DEFINE, "define"},
		{TOKEN_IDENT, "y"},
		{TOKEN_INT, "10"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_EOF, ""},
	}

	runTokenTest(t, input, tests)
}
