package xonshlex

// Character classes shared by the operator, string, and line-class
// predictor engines (spec §6, "Character classes").

func isIdentifierStart(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentifierChar(c rune) bool {
	return isIdentifierStart(c) || (c >= '0' && c <= '9')
}

func isShellWhitespace(c rune) bool {
	return c == ' ' || c == '\t'
}
