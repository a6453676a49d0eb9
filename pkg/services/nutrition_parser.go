package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/titanous/json5"

	"github.com/dskvich/healthy-real-ai/pkg/domain"
	"github.com/dskvich/healthy-real-ai/pkg/upstream"
)

// ParseNutrition extracts the nutrition object from a free-text model reply.
// Strict JSON is tried first, then a permissive JSON5 parse that also
// understands Python literals such as single-quoted keys and True/None.
func ParseNutrition(reply string) (domain.NutritionEstimate, error) {
	candidate, ok := outermostObject(reply)
	if !ok {
		return nil, upstream.Malformed("openai", reply, errors.New("no JSON object in reply"))
	}

	var strict map[string]any
	strictErr := json.Unmarshal([]byte(candidate), &strict)
	if strictErr == nil {
		return strict, nil
	}

	var loose map[string]any
	if err := json5.Unmarshal([]byte(pythonLiterals(candidate)), &loose); err != nil {
		return nil, upstream.Malformed("openai", reply, fmt.Errorf("parsing nutrition reply: %w", errors.Join(strictErr, err)))
	}
	return loose, nil
}

func outermostObject(reply string) (string, bool) {
	start := strings.IndexByte(reply, '{')
	end := strings.LastIndexByte(reply, '}')
	if start < 0 || end < start {
		return "", false
	}
	return reply[start : end+1], true
}

// pythonLiterals rewrites True, False and None outside of string literals.
func pythonLiterals(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]

		if quote != 0 {
			b.WriteByte(c)
			if c == '\\' && i+1 < len(s) {
				i++
				b.WriteByte(s[i])
			} else if c == quote {
				quote = 0
			}
			continue
		}

		switch {
		case c == '"' || c == '\'':
			quote = c
			b.WriteByte(c)
		case isIdentByte(c):
			j := i
			for j < len(s) && isIdentByte(s[j]) {
				j++
			}
			b.WriteString(jsonLiteral(s[i:j]))
			i = j - 1
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func jsonLiteral(word string) string {
	switch word {
	case "True":
		return "true"
	case "False":
		return "false"
	case "None":
		return "null"
	default:
		return word
	}
}

func isIdentByte(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
