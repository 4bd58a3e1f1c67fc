package stopwords

// defaultWords is used when no rules file is given. Matching is exact, so
// capitalised forms are listed where they commonly start a sentence.
var defaultWords = []string{
	"a", "about", "above", "across", "after", "again", "against", "all",
	"almost", "also", "although", "always", "am", "among", "an", "and",
	"another", "any", "are", "around", "as", "at",

	"be", "became", "because", "become", "been", "before", "being", "below",
	"between", "both", "but", "by",

	"can", "cannot", "could",

	"did", "do", "does", "doing", "done", "down", "during",

	"each", "either", "else", "enough", "even", "ever", "every",

	"few", "for", "from", "further",

	"had", "has", "have", "having", "he", "her", "here", "hers", "herself",
	"him", "himself", "his", "how", "however",

	"i", "if", "in", "into", "is", "it", "its", "itself",

	"just",

	"less", "like",

	"many", "may", "me", "might", "more", "most", "much", "must", "my",
	"myself",

	"neither", "never", "no", "nor", "not", "now",

	"of", "off", "often", "on", "once", "only", "or", "other", "our", "ours",
	"ourselves", "out", "over", "own",

	"rather",

	"same", "she", "should", "since", "so", "some", "still", "such",

	"than", "that", "the", "their", "theirs", "them", "themselves", "then",
	"there", "these", "they", "this", "those", "through", "thus", "to", "too",

	"under", "until", "up", "upon", "us",

	"very", "via",

	"was", "we", "were", "what", "when", "where", "whether", "which", "while",
	"who", "whom", "whose", "why", "will", "with", "within", "without",
	"would",

	"yet", "you", "your", "yours", "yourself", "yourselves",

	"A", "An", "And", "But", "For", "He", "I", "If", "In", "It", "She",
	"The", "There", "They", "This", "We", "What", "When", "You",
}

// Default returns the built-in English stop-word set.
func Default() *Set {
	return New(defaultWords...)
}
