package stemmer

import "strings"

// Porter is the classic Porter (1980) suffix-stripping stemmer.
// It keeps no state between calls and is safe for concurrent use.
type Porter struct{}

// Stem reduces word to its root with the Porter algorithm.
func (Porter) Stem(word string) string {
	return Stem(word)
}

// Stem reduces word to its root with the Porter algorithm.
//
// The word is lowercased first. Empty input is returned unchanged and words
// of one or two letters are only lowercased. Bytes outside a-z are treated
// as consonants, so mixed input never fails; it just stems oddly.
func Stem(word string) string {
	if word == "" {
		return word
	}

	w := &porterWord{b: []byte(strings.ToLower(word))}
	w.k = len(w.b) - 1
	if w.k <= 1 {
		return string(w.b)
	}

	w.step1ab()
	if w.k > 0 {
		w.step1c()
		w.step2()
		w.step3()
		w.step4()
		w.step5()
	}

	return string(w.b[:w.k+1])
}

// porterWord holds the buffer being stemmed. b[0..k] is the current word;
// j marks the end of the stem left in front of the suffix matched by ends.
type porterWord struct {
	b []byte
	k int
	j int
}

// cons reports whether b[i] is a consonant.
func (w *porterWord) cons(i int) bool {
	switch w.b[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		if i == 0 {
			return true
		}
		return !w.cons(i - 1)
	}
	return true
}

// m measures the number of VC sequences in b[0..j]:
//
//	[C](VC){m}[V]
func (w *porterWord) m() int {
	n := 0
	i := 0
	for {
		if i > w.j {
			return n
		}
		if !w.cons(i) {
			break
		}
		i++
	}
	i++
	for {
		for {
			if i > w.j {
				return n
			}
			if w.cons(i) {
				break
			}
			i++
		}
		i++
		n++
		for {
			if i > w.j {
				return n
			}
			if !w.cons(i) {
				break
			}
			i++
		}
		i++
	}
}

// vowelInStem reports whether b[0..j] contains a vowel.
func (w *porterWord) vowelInStem() bool {
	for i := 0; i <= w.j; i++ {
		if !w.cons(i) {
			return true
		}
	}
	return false
}

// doubleC reports whether b[i-1..i] is a double consonant.
func (w *porterWord) doubleC(i int) bool {
	if i < 1 || w.b[i] != w.b[i-1] {
		return false
	}
	return w.cons(i)
}

// cvc reports whether b[i-2..i] is consonant-vowel-consonant with the last
// consonant not w, x or y. Used to restore an e in words like hop(e) or fil(e).
func (w *porterWord) cvc(i int) bool {
	if i < 2 || !w.cons(i) || w.cons(i-1) || !w.cons(i-2) {
		return false
	}
	switch w.b[i] {
	case 'w', 'x', 'y':
		return false
	}
	return true
}

// ends reports whether b[0..k] ends with s, setting j to the end of the stem.
func (w *porterWord) ends(s string) bool {
	n := len(s)
	if n > w.k+1 {
		return false
	}
	if string(w.b[w.k-n+1:w.k+1]) != s {
		return false
	}
	w.j = w.k - n
	return true
}

// setTo replaces b[j+1..k] with s.
func (w *porterWord) setTo(s string) {
	w.b = append(w.b[:w.j+1], s...)
	w.k = w.j + len(s)
}

// r replaces the matched suffix with s when the stem has m > 0.
func (w *porterWord) r(s string) {
	if w.m() > 0 {
		w.setTo(s)
	}
}

// step1ab removes plurals and -ed or -ing.
//
//	caresses -> caress    feed     -> feed
//	ponies   -> poni      agreed   -> agree
//	ties     -> ti        plastered-> plaster
//	cats     -> cat       motoring -> motor
//	conflated-> conflate  hopping  -> hop
//	sized    -> size      filing   -> file
func (w *porterWord) step1ab() {
	if w.b[w.k] == 's' {
		switch {
		case w.ends("sses"):
			w.k -= 2
		case w.ends("ies"):
			w.setTo("i")
		case w.b[w.k-1] != 's':
			w.k--
		}
	}

	if w.ends("eed") {
		if w.m() > 0 {
			w.k--
		}
		return
	}

	if !(w.ends("ed") || w.ends("ing")) || !w.vowelInStem() {
		return
	}

	w.k = w.j
	switch {
	case w.ends("at"):
		w.setTo("ate")
	case w.ends("bl"):
		w.setTo("ble")
	case w.ends("iz"):
		w.setTo("ize")
	case w.doubleC(w.k):
		w.k--
		switch w.b[w.k] {
		case 'l', 's', 'z':
			w.k++
		}
	default:
		w.j = w.k
		if w.m() == 1 && w.cvc(w.k) {
			w.setTo("e")
		}
	}
}

// step1c turns a terminal y into i when there is another vowel in the stem.
func (w *porterWord) step1c() {
	if w.ends("y") && w.vowelInStem() {
		w.b[w.k] = 'i'
	}
}

// step2 maps double suffixes to single ones, e.g. -ization to -ize.
// The stem in front of the suffix must have m > 0.
func (w *porterWord) step2() {
	if w.k < 1 {
		return
	}
	for _, rule := range step2Rules[w.b[w.k-1]] {
		if w.ends(rule.suffix) {
			w.r(rule.replacement)
			return
		}
	}
}

// step3 deals with -ic-, -full, -ness and friends. Same m > 0 gate as step2.
func (w *porterWord) step3() {
	for _, rule := range step3Rules[w.b[w.k]] {
		if w.ends(rule.suffix) {
			w.r(rule.replacement)
			return
		}
	}
}

// step4 strips -ant, -ence and the rest of the final suffix table in a
// context of m > 1.
func (w *porterWord) step4() {
	if w.k < 1 {
		return
	}

	matched := false
	if w.b[w.k-1] == 'o' {
		// -ion only counts after s or t; otherwise fall through to -ou.
		switch {
		case w.ends("ion") && w.j >= 0 && (w.b[w.j] == 's' || w.b[w.j] == 't'):
			matched = true
		case w.ends("ou"):
			matched = true
		}
	} else {
		for _, suffix := range step4Suffixes[w.b[w.k-1]] {
			if w.ends(suffix) {
				matched = true
				break
			}
		}
	}

	if matched && w.m() > 1 {
		w.k = w.j
	}
}

// step5 removes a final -e if m > 1 (or m = 1 and not *o) and changes -ll
// to -l if m > 1.
func (w *porterWord) step5() {
	w.j = w.k
	if w.b[w.k] == 'e' {
		a := w.m()
		if a > 1 || (a == 1 && !w.cvc(w.k-1)) {
			w.k--
		}
	}
	if w.b[w.k] == 'l' && w.doubleC(w.k) && w.m() > 1 {
		w.k--
	}
}

type suffixRule struct {
	suffix      string
	replacement string
}

// step2Rules is keyed on the penultimate letter of the word; rules within a
// key are ordered so the longest matching suffix is tried first.
var step2Rules = map[byte][]suffixRule{
	'a': {{"ational", "ate"}, {"tional", "tion"}},
	'c': {{"enci", "ence"}, {"anci", "ance"}},
	'e': {{"izer", "ize"}},
	'l': {{"bli", "ble"}, {"alli", "al"}, {"entli", "ent"}, {"eli", "e"}, {"ousli", "ous"}},
	'o': {{"ization", "ize"}, {"ation", "ate"}, {"ator", "ate"}},
	's': {{"alism", "al"}, {"iveness", "ive"}, {"fulness", "ful"}, {"ousness", "ous"}},
	't': {{"aliti", "al"}, {"iviti", "ive"}, {"biliti", "ble"}},
	'g': {{"logi", "log"}},
}

// step3Rules is keyed on the last letter of the word.
var step3Rules = map[byte][]suffixRule{
	'e': {{"icate", "ic"}, {"ative", ""}, {"alize", "al"}},
	'i': {{"iciti", "ic"}},
	'l': {{"ical", "ic"}, {"ful", ""}},
	's': {{"ness", ""}},
}

// step4Suffixes is keyed on the penultimate letter; 'o' is handled inline.
var step4Suffixes = map[byte][]string{
	'a': {"al"},
	'c': {"ance", "ence"},
	'e': {"er"},
	'i': {"ic"},
	'l': {"able", "ible"},
	'n': {"ant", "ement", "ment", "ent"},
	's': {"ism"},
	't': {"ate", "iti"},
	'u': {"ous"},
	'v': {"ive"},
	'z': {"ize"},
}
