package matching

import (
	"math"
	"strings"
)

// maxDocFreq drops terms present in more than this fraction of the corpus.
// Boilerplate common to nearly every posting ("apply now") carries no signal.
const maxDocFreq = 0.9

// Vectorizer is a TF-IDF vector space over unigrams and bigrams of a job
// corpus. It is built fresh for every matching call from the current active
// corpus; it is never cached, so re-matching after any corpus change always
// reflects the new document frequencies.
type Vectorizer struct {
	vocab   map[string]int
	idf     []float64
	docVecs []map[int]float64
}

// NewVectorizer fits the vocabulary and document vectors over the given
// documents. Documents are expected to be normalized already. Degenerate
// input (empty corpus, all-stopword documents) produces an empty vocabulary
// and zero similarity rather than an error.
func NewVectorizer(docs []string) *Vectorizer {
	n := len(docs)
	docTerms := make([]map[string]int, n)
	docFreq := make(map[string]int)

	for i, doc := range docs {
		counts := make(map[string]int)
		for _, term := range extractTerms(doc) {
			counts[term]++
		}
		docTerms[i] = counts
		for term := range counts {
			docFreq[term]++
		}
	}

	v := &Vectorizer{vocab: make(map[string]int)}
	dfCap := maxDocFreq * float64(n)
	for term, df := range docFreq {
		if float64(df) > dfCap {
			continue
		}
		v.vocab[term] = len(v.vocab)
		// smooth idf: ln((1+n)/(1+df)) + 1
		v.idf = append(v.idf, math.Log(float64(1+n)/float64(1+df))+1)
	}

	v.docVecs = make([]map[int]float64, n)
	for i, counts := range docTerms {
		v.docVecs[i] = v.vectorize(counts)
	}
	return v
}

// Similarities returns the cosine similarity between the query text and every
// fitted document, in corpus order. Values are in [0,1]; a query sharing no
// vocabulary with a document scores 0 against it.
func (v *Vectorizer) Similarities(query string) []float64 {
	counts := make(map[string]int)
	for _, term := range extractTerms(query) {
		counts[term]++
	}
	qv := v.vectorize(counts)

	sims := make([]float64, len(v.docVecs))
	if len(qv) == 0 {
		return sims
	}
	for i, dv := range v.docVecs {
		sims[i] = dot(qv, dv)
	}
	return sims
}

// vectorize maps raw term counts to an L2-normalized TF-IDF vector. Terms
// outside the fitted vocabulary are dropped.
func (v *Vectorizer) vectorize(counts map[string]int) map[int]float64 {
	vec := make(map[int]float64)
	var norm float64
	for term, tf := range counts {
		idx, ok := v.vocab[term]
		if !ok {
			continue
		}
		w := float64(tf) * v.idf[idx]
		vec[idx] = w
		norm += w * w
	}
	if norm == 0 {
		return nil
	}
	norm = math.Sqrt(norm)
	for idx := range vec {
		vec[idx] /= norm
	}
	return vec
}

func dot(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for idx, w := range a {
		sum += w * b[idx]
	}
	return sum
}

// extractTerms tokenizes normalized text into non-stop-word unigrams plus
// bigrams of adjacent kept tokens.
func extractTerms(doc string) []string {
	fields := strings.Fields(doc)
	kept := fields[:0]
	for _, tok := range fields {
		if isStopWord(tok) {
			continue
		}
		kept = append(kept, tok)
	}

	terms := make([]string, 0, 2*len(kept))
	for i, tok := range kept {
		terms = append(terms, tok)
		if i+1 < len(kept) {
			terms = append(terms, tok+" "+kept[i+1])
		}
	}
	return terms
}
