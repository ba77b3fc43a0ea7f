// Package lexicon holds the keyword tables shared by the sentiment,
// emotion, aspect, and composition stages. The tables are loaded once
// and treated as read-only.
package lexicon

// AspectOrder fixes the taxonomy order used for deterministic
// tie-breaking when two aspects have the same mention count.
var AspectOrder = []string{
	"food", "service", "price", "ambiance", "location",
	"wait_time", "cleanliness", "drinks", "staff_behavior", "quality",
}

// AspectKeywords maps each aspect category to the words that signal it.
var AspectKeywords = map[string][]string{
	"food": {
		"food", "meal", "dish", "cuisine", "taste", "flavor", "delicious",
		"tasty", "bland", "spicy", "fresh", "stale", "portion",
		"menu", "breakfast", "lunch", "dinner", "appetizer", "dessert",
		"pizza", "pasta", "burger", "salad", "soup", "sandwich", "steak",
	},
	"service": {
		"service", "staff", "waiter", "waitress", "server", "bartender",
		"manager", "employee", "friendly", "rude", "attentive", "slow",
		"fast", "helpful", "professional", "courteous", "polite",
	},
	"price": {
		"price", "cost", "expensive", "cheap", "affordable", "value",
		"money", "worth", "overpriced", "reasonable", "budget", "deal",
		"pricing", "charge", "bill", "payment",
	},
	"ambiance": {
		"atmosphere", "ambiance", "ambience", "decor", "decoration",
		"interior", "design", "music", "lighting", "seating", "comfortable",
		"cozy", "noisy", "quiet", "crowded", "spacious",
	},
	"location": {
		"location", "parking", "access", "convenient", "downtown",
		"neighborhood", "area", "nearby", "close", "far", "distance",
	},
	"wait_time": {
		"wait", "waiting", "waited", "queue", "line", "reservation",
		"booking", "minutes", "hours", "delay", "quick", "prompt",
	},
	"cleanliness": {
		"clean", "dirty", "hygiene", "sanitary", "spotless", "filthy",
		"tidy", "messy", "bathroom", "restroom",
	},
	"drinks": {
		"drink", "beverage", "coffee", "tea", "wine", "beer", "cocktail",
		"juice", "soda", "latte", "cappuccino", "espresso",
	},
	"staff_behavior": {
		"attitude", "behavior", "manner", "greeting", "smile", "welcome",
		"respect", "disrespect", "ignore", "attention",
	},
	"quality": {
		"quality", "standard", "excellence", "mediocre", "poor",
		"outstanding", "exceptional", "average", "subpar",
	},
}

// WindowPositive and WindowNegative score the text window around an
// aspect keyword. They are intentionally short: window sentiment should
// react to strong, unambiguous cues only.
var WindowPositive = []string{
	"good", "great", "excellent", "amazing", "wonderful", "fantastic",
	"love", "best", "perfect", "delicious", "friendly", "clean",
}

var WindowNegative = []string{
	"bad", "terrible", "awful", "horrible", "worst", "hate", "poor",
	"disappointing", "slow", "rude", "dirty", "cold",
}

// StrongNegativePhrases are cues the compound scorer tends to miss;
// their presence clamps polarity toward negative.
var StrongNegativePhrases = []string{
	"passive aggressive", "self-righteous", "rude", "terrible", "worst",
	"horrible", "awful", "disgusting", "never again", "waste", "scam",
	"fraud", "bankrupt", "going bankrupt", "disappointed", "disappointing",
}

// HealthSafetyKeywords trigger the urgent-apology branch and the
// disgust emotion family.
var HealthSafetyKeywords = []string{
	"sick", "poisoning", "food poisoning", "ill", "vomit", "nausea",
}

// ReturnCues signal an intent to come back, used by the positive closer.
var ReturnCues = []string{"back", "again", "return"}

// Stopwords filtered out of key-phrase extraction.
var Stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "is": true, "was": true, "were": true, "are": true,
	"i": true, "we": true, "it": true, "this": true, "that": true,
	"my": true, "our": true, "of": true, "to": true, "in": true,
	"at": true, "for": true, "with": true, "on": true, "very": true,
	"so": true, "had": true, "have": true, "has": true, "not": true,
	"been": true, "they": true, "their": true, "there": true,
}
