package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Naming reproduces the serverless framework's logical id conventions so that
// emitted fragments reference the function resources the host tool generates.
type Naming struct{}

func (Naming) NormalizedFunctionName(functionName string) string {
	name := strings.ReplaceAll(functionName, "-", "Dash")
	name = strings.ReplaceAll(name, "_", "Underscore")
	return NormalizeName(name)
}

func (n Naming) LambdaLogicalId(functionName string) string {
	return n.NormalizedFunctionName(functionName) + "LambdaFunction"
}

// NormalizeName upper-cases the first rune.
func NormalizeName(name string) string {
	first, size := utf8.DecodeRuneInString(name)
	if first == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(first)) + name[size:]
}
