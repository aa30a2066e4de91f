package lexicon

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pscheid92/tweetpulse/internal/domain"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Analyzer gives a sentiment intensity score to sentences.
type Analyzer struct {
	lexicon map[string]float64
}

// NewAnalyzer builds an analyzer over a word-to-valence map. Keys are expected in lower case.
func NewAnalyzer(lexicon map[string]float64) *Analyzer {
	return &Analyzer{lexicon: lexicon}
}

// Size returns the number of lexicon entries.
func (a *Analyzer) Size() int {
	return len(a.lexicon)
}

func (a *Analyzer) inLexicon(word string) bool {
	_, ok := a.lexicon[strings.ToLower(word)]
	return ok
}

// PolarityScores returns the neg/neu/pos proportions (rounded to 3 places) and the
// normalized compound score (rounded to 4 places) of text.
func (a *Analyzer) PolarityScores(text string) domain.Polarity {
	st := newSentiText(text)
	words := st.words

	// a repeated token is scored in the context of its first occurrence
	first := make(map[string]int, len(words))
	for i := len(words) - 1; i >= 0; i-- {
		first[words[i]] = i
	}

	sentiments := make([]float64, 0, len(words))
	for _, item := range words {
		i := first[item]
		lower := strings.ToLower(item)

		// boosters and "kind of" only modify their neighbours
		if _, ok := boosters[lower]; ok {
			sentiments = append(sentiments, 0)
			continue
		}
		if i < len(words)-1 && lower == "kind" && strings.ToLower(words[i+1]) == "of" {
			sentiments = append(sentiments, 0)
			continue
		}

		sentiments = append(sentiments, a.valence(st, item, i))
	}

	sentiments = butCheck(words, sentiments)
	return scoreValence(sentiments, text)
}

func (a *Analyzer) valence(st *sentiText, item string, i int) float64 {
	words := st.words

	valence, ok := a.lexicon[strings.ToLower(item)]
	if !ok {
		return 0
	}

	if isUpper(item) && st.capDiff {
		if valence > 0 {
			valence += capsIncr
		} else {
			valence -= capsIncr
		}
	}

	for start := 0; start < 3; start++ {
		if i <= start {
			continue
		}
		prev := words[i-(start+1)]
		if a.inLexicon(prev) {
			continue
		}

		s := scalarIncDec(prev, valence, st.capDiff)
		if start == 1 && s != 0 {
			s *= 0.95
		}
		if start == 2 && s != 0 {
			s *= 0.9
		}
		valence += s
		valence = neverCheck(valence, words, start, i)
		if start == 2 {
			valence = idiomsCheck(valence, words, i)
		}
	}

	return a.leastCheck(valence, words, i)
}

// leastCheck negates the valence for "least X" unless it reads "at least" or "very least".
func (a *Analyzer) leastCheck(valence float64, words []string, i int) float64 {
	if i > 0 {
		prev := strings.ToLower(words[i-1])
		if prev != "least" || a.inLexicon(prev) {
			return valence
		}
		if i > 1 {
			before := strings.ToLower(words[i-2])
			if before == "at" || before == "very" {
				return valence
			}
		}
		return valence * negationScalar
	}
	return valence
}

// scalarIncDec returns the boost a preceding word applies to valence.
func scalarIncDec(word string, valence float64, capDiff bool) float64 {
	scalar, ok := boosters[strings.ToLower(word)]
	if !ok {
		return 0
	}
	if valence < 0 {
		scalar *= -1
	}
	if isUpper(word) && capDiff {
		if valence > 0 {
			scalar += capsIncr
		} else {
			scalar -= capsIncr
		}
	}
	return scalar
}

func negated(word string) bool {
	lower := strings.ToLower(word)
	if _, ok := negations[lower]; ok {
		return true
	}
	return strings.Contains(lower, "n't")
}

func neverCheck(valence float64, words []string, start, i int) float64 {
	switch start {
	case 0:
		if negated(words[i-1]) {
			valence *= negationScalar
		}
	case 1:
		if words[i-2] == "never" && (words[i-1] == "so" || words[i-1] == "this") {
			valence *= 1.5
		} else if negated(words[i-2]) {
			valence *= negationScalar
		}
	case 2:
		if (words[i-3] == "never" && (words[i-2] == "so" || words[i-2] == "this")) ||
			words[i-1] == "so" || words[i-1] == "this" {
			valence *= 1.25
		} else if negated(words[i-3]) {
			valence *= negationScalar
		}
	}
	return valence
}

// idiomsCheck is only reached with i >= 3.
func idiomsCheck(valence float64, words []string, i int) float64 {
	oneZero := words[i-1] + " " + words[i]
	twoOneZero := words[i-2] + " " + words[i-1] + " " + words[i]
	twoOne := words[i-2] + " " + words[i-1]
	threeTwoOne := words[i-3] + " " + words[i-2] + " " + words[i-1]
	threeTwo := words[i-3] + " " + words[i-2]

	for _, seq := range []string{oneZero, twoOneZero, twoOne, threeTwoOne, threeTwo} {
		if v, ok := specialIdioms[seq]; ok {
			valence = v
			break
		}
	}

	if len(words)-1 > i {
		if v, ok := specialIdioms[words[i]+" "+words[i+1]]; ok {
			valence = v
		}
	}
	if len(words)-1 > i+1 {
		if v, ok := specialIdioms[words[i]+" "+words[i+1]+" "+words[i+2]]; ok {
			valence = v
		}
	}

	// booster bigrams such as "kind of" directly before the word dampen it
	_, threeTwoBoost := boosters[threeTwo]
	_, twoOneBoost := boosters[twoOne]
	if threeTwoBoost || twoOneBoost {
		valence += boostDecr
	}
	return valence
}

// butCheck halves the sentiment before the first "but" and boosts the sentiment after it.
func butCheck(words []string, sentiments []float64) []float64 {
	bi := -1
	for i, w := range words {
		if strings.ToLower(w) == "but" {
			bi = i
			break
		}
	}
	if bi < 0 {
		return sentiments
	}

	for i, s := range sentiments {
		if i < bi {
			sentiments[i] = s * 0.5
		} else if i > bi {
			sentiments[i] = s * 1.5
		}
	}
	return sentiments
}

func punctuationEmphasis(text string) float64 {
	ep := strings.Count(text, "!")
	if ep > exclaimMax {
		ep = exclaimMax
	}
	amplifier := float64(ep) * exclaimWeight

	qm := strings.Count(text, "?")
	if qm > 1 {
		if qm <= 3 {
			amplifier += float64(qm) * questionWeight
		} else {
			amplifier += questionMax
		}
	}
	return amplifier
}

func normalize(score float64) float64 {
	return score / math.Sqrt(score*score+normalizeAlpha)
}

func scoreValence(sentiments []float64, text string) domain.Polarity {
	if len(sentiments) == 0 {
		return domain.Polarity{}
	}

	sum := floats.Sum(sentiments)
	emphasis := punctuationEmphasis(text)
	if sum > 0 {
		sum += emphasis
	} else if sum < 0 {
		sum -= emphasis
	}
	compound := normalize(sum)

	// neutral words count as 1, so shift polar ones away from zero by the same amount
	var posSum, negSum float64
	var neuCount int
	for _, s := range sentiments {
		switch {
		case s > 0:
			posSum += s + 1
		case s < 0:
			negSum += s - 1
		default:
			neuCount++
		}
	}

	if posSum > math.Abs(negSum) {
		posSum += emphasis
	} else if posSum < math.Abs(negSum) {
		negSum -= emphasis
	}

	total := posSum + math.Abs(negSum) + float64(neuCount)
	return domain.Polarity{
		Neg:      scalar.RoundEven(math.Abs(negSum/total), 3),
		Neu:      scalar.RoundEven(math.Abs(float64(neuCount)/total), 3),
		Pos:      scalar.RoundEven(math.Abs(posSum/total), 3),
		Compound: scalar.RoundEven(compound, 4),
	}
}

// isUpper reports whether s has at least one cased letter and no lower-case ones.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
