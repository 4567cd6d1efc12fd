package randomname

var defaultWords = map[WordType][]string{
	Adjective: {
		"brave", "calm", "eager", "gentle", "happy", "jolly", "kind", "lively",
		"proud", "witty", "swift", "bold", "bright", "vivid", "quiet", "noble",
		"clever", "cosmic", "curious", "daring", "elegant", "fearless", "golden", "humble",
		"lucky", "mellow", "nimble", "patient", "quick", "serene", "steady", "sunny",
	},
	Noun: {
		"otter", "falcon", "badger", "heron", "lynx", "marten", "orca", "panda",
		"quail", "raven", "salmon", "tapir", "walrus", "wombat", "yak", "zebra",
		"anchor", "beacon", "canyon", "delta", "ember", "fjord", "glacier", "harbor",
		"island", "lagoon", "meadow", "nebula", "orchard", "prairie", "river", "summit",
	},
	Color: {
		"amber", "azure", "coral", "crimson", "indigo", "ivory", "jade", "lilac",
		"ochre", "olive", "scarlet", "sienna", "teal", "umber", "violet", "cobalt",
	},
}

// getWords returns custom words for the type when provided, otherwise the defaults.
func getWords(wordType WordType, customWords map[WordType][]string) []string {
	if words, ok := customWords[wordType]; ok && len(words) > 0 {
		return words
	}
	if words, ok := defaultWords[wordType]; ok {
		return words
	}
	return defaultWords[Noun]
}
