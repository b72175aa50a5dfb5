package moderation

var sexualContentTerms = []string{
	"porn", "xxx", "nude", "naked", "sex", "erotic", "fetish", "hentai",
	"nsfw", "adult content", "explicit", "sexually", "genitals", "orgasm",
	"masturbat", "intercourse", "prostitut", "escort service",
}

var religiousHateTerms = []string{
	"kill all", "death to", "exterminate", "genocide",
	"hate muslims", "hate christians", "hate jews", "hate hindus", "hate buddhists",
	"anti-muslim", "anti-christian", "anti-jewish", "anti-semit", "anti-hindu",
	"islamophob", "antisemit", "religous hate", "religious hate",
	"burn the quran", "burn the bible", "burn the torah",
	"terrorist religion", "evil religion", "false religion",
}

var hateSpeechTerms = []string{
	"racial slur", "n word", "hate speech", "white supremac", "nazi",
	"ethnic cleansing", "hate crime", "lynch", "slaughter people",
}

// DefaultBlockedTerms returns a copy of the built-in disallow-list.
func DefaultBlockedTerms() []string {
	out := make([]string, 0, len(sexualContentTerms)+len(religiousHateTerms)+len(hateSpeechTerms))
	out = append(out, sexualContentTerms...)
	out = append(out, religiousHateTerms...)
	out = append(out, hateSpeechTerms...)
	return out
}
