package linear

import (
	"fmt"
	"maps"
	"math"
	"regexp"
	"slices"
	"strings"
)

// tokenPattern selects runs of two or more word characters, the same tokens
// a `\b\w\w+\b` pattern yields under Unicode word rules.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// VectorizerSpec is the serialized TF-IDF vectorizer of one pipeline.
type VectorizerSpec struct {
	Lowercase   *bool          `json:"lowercase,omitempty"`
	NgramMin    int            `json:"ngram_min,omitempty"`
	NgramMax    int            `json:"ngram_max,omitempty"`
	Vocabulary  map[string]int `json:"vocabulary"`
	IDF         []float64      `json:"idf"`
	Norm        string         `json:"norm,omitempty"`
	SublinearTF bool           `json:"sublinear_tf,omitempty"`
}

type vectorizer struct {
	lowercase   bool
	ngramMin    int
	ngramMax    int
	vocabulary  map[string]int
	idf         []float64
	l2          bool
	sublinearTF bool
}

func newVectorizer(spec VectorizerSpec) (*vectorizer, error) {
	v := &vectorizer{
		lowercase:   spec.Lowercase == nil || *spec.Lowercase,
		ngramMin:    spec.NgramMin,
		ngramMax:    spec.NgramMax,
		vocabulary:  spec.Vocabulary,
		idf:         spec.IDF,
		l2:          spec.Norm != "none",
		sublinearTF: spec.SublinearTF,
	}
	if v.ngramMin == 0 {
		v.ngramMin = 1
	}
	if v.ngramMax == 0 {
		v.ngramMax = v.ngramMin
	}
	if v.ngramMin > v.ngramMax {
		return nil, fmt.Errorf("ngram range (%d, %d) is inverted", v.ngramMin, v.ngramMax)
	}

	for term, col := range v.vocabulary {
		if col < 0 || col >= len(v.idf) {
			return nil, fmt.Errorf("vocabulary term %q maps to column %d, idf has %d columns", term, col, len(v.idf))
		}
	}
	for i, w := range v.idf {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("idf[%d] is not finite", i)
		}
	}

	return v, nil
}

func (v *vectorizer) features() int {
	return len(v.idf)
}

// entry is one non-zero column of a TF-IDF row.
type entry struct {
	col int
	w   float64
}

// sparseRow holds the non-zero columns of one document in ascending column
// order. Sums over it always add in the same order.
type sparseRow []entry

// transform returns the TF-IDF row for text.
func (v *vectorizer) transform(text string) sparseRow {
	if v.lowercase {
		text = strings.ToLower(text)
	}

	counts := make(map[int]float64)
	for _, term := range v.terms(tokenPattern.FindAllString(text, -1)) {
		if col, ok := v.vocabulary[term]; ok {
			counts[col]++
		}
	}

	x := make(sparseRow, 0, len(counts))
	for _, col := range slices.Sorted(maps.Keys(counts)) {
		tf := counts[col]
		if v.sublinearTF {
			tf = 1 + math.Log(tf)
		}
		x = append(x, entry{col: col, w: tf * v.idf[col]})
	}

	if v.l2 {
		var norm float64
		for _, e := range x {
			norm += e.w * e.w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for i := range x {
				x[i].w /= norm
			}
		}
	}
	return x
}

// terms expands tokens into the configured word n-grams.
func (v *vectorizer) terms(tokens []string) []string {
	if v.ngramMin == 1 && v.ngramMax == 1 {
		return tokens
	}

	var out []string
	for n := v.ngramMin; n <= v.ngramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}
