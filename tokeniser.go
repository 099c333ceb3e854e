package zzfsm

// Lexer tokens
type (
	literal     rune // not any of the below
	punctuation rune // ., $, or *
)

func (literal) tokenTag()     {}
func (punctuation) tokenTag() {}

type token interface{ tokenTag() }

// positioned is a token together with its byte offset in the pattern.
type positioned struct {
	tok token
	pos int
}

type tokens []positioned

func tokenise(p string, cfg *compileConfig) *tokens {
	// Every token is a single rune, so preallocate len(p).
	tks := make(tokens, 0, len(p))

	for i, c := range p {
		var t token = literal(c)
		switch c {
		case '.':
			if cfg.allowWildcard {
				t = punctuation(c)
			}
		case '$':
			if cfg.allowAnchor {
				t = punctuation(c)
			}
		case '*':
			if cfg.allowStar {
				t = punctuation(c)
			}
		}
		tks = append(tks, positioned{tok: t, pos: i})
	}
	return &tks
}

// next uses a pointer to a slice as a consuming reader.
func (r *tokens) next() (positioned, bool) {
	if r == nil || len(*r) == 0 {
		return positioned{}, false
	}
	defer func() { *r = (*r)[1:] }()
	return (*r)[0], true
}
