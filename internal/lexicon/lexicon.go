package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// FileName is the name of the word list inside the data package and in the cache directory.
const FileName = "vader_lexicon.txt"

// ParseLexicon reads "word<TAB>mean-valence[<TAB>...]" lines. Blank lines are skipped.
func ParseLexicon(r io.Reader) (map[string]float64, error) {
	lex := make(map[string]float64, 7600)

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		fields := strings.Split(text, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("lexicon line %d: expected word and valence separated by a tab", line)
		}
		measure, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("lexicon line %d: invalid valence %q: %w", line, fields[1], err)
		}
		lex[fields[0]] = measure
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lexicon: %w", err)
	}
	if len(lex) == 0 {
		return nil, fmt.Errorf("lexicon is empty")
	}

	return lex, nil
}

// LoadAnalyzer parses the lexicon file at path into an Analyzer.
func LoadAnalyzer(path string) (*Analyzer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon: %w", err)
	}
	defer func() { _ = f.Close() }()

	lex, err := ParseLexicon(f)
	if err != nil {
		return nil, err
	}
	return NewAnalyzer(lex), nil
}
