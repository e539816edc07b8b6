package categorizer

import "github.com/umputun/playsort/pkg/domain"

// BuiltinRules returns the curated rule table. Food carries the highest weight,
// so ambiguous playlists mentioning food lean to it.
// Order matters: it drives tie-breaking between equally scored categories.
func BuiltinRules() []domain.Rule {
	return []domain.Rule{
		domain.MustRule([]string{
			"pizza", "recipe", "recipes", "cooking", "food", "bake", "baked", "brownies",
			"cookies", "bread", "fruit", "vegetable", "veg", "masala", "falafel", "hummus",
			"spreads", "carrot", "quinoa", "cauliflower", "mushroom", "tomato", "pumpkin",
			"laddu", "chutney", "amla", "drumsticks", "kofta", "noodles", "parwal",
			"methi", "soyabean", "curry", "kanji", "poha", "achar", "sabji", "pulao",
			"chaat", "snacks", "millet", "singhada", "lotus", "vermicelli", "dry fruits",
			"rice", "sprouts", "thecha", "satvik", "air fry", "indian", "chinese",
		}, domain.CategoryFood, 10),

		domain.MustRule([]string{
			"career", "product management", "professional", "business", "work", "job",
			"interview", "resume", "skills", "development", "leadership", "management",
		}, domain.CategoryCareer, 8),

		domain.MustRule([]string{
			"investment", "investing", "stock", "trading", "finance", "money", "wealth",
			"portfolio", "mutual fund", "crypto", "bitcoin", "market", "shares",
		}, domain.CategoryInvestment, 8),

		domain.MustRule([]string{
			"exercise", "workout", "fitness", "health", "yoga", "gym", "training",
			"weight loss", "diet", "nutrition", "meditation", "wellness",
		}, domain.CategoryHealthFitness, 7),

		domain.MustRule([]string{
			"learn", "tutorial", "course", "education", "study", "academic", "lesson",
			"programming", "coding", "math", "science", "history", "language",
		}, domain.CategoryEducation, 6),

		domain.MustRule([]string{
			"tech", "technology", "software", "app", "programming", "coding", "computer",
			"ai", "machine learning", "data science", "web development", "mobile",
		}, domain.CategoryTechnology, 6),

		domain.MustRule([]string{
			"travel", "trip", "vacation", "tourism", "destination", "hotel", "flight",
			"adventure", "explore", "journey", "wanderlust",
		}, domain.CategoryTravel, 5),

		domain.MustRule([]string{
			"movie", "music", "song", "comedy", "entertainment", "gaming", "show",
			"series", "drama", "funny", "dance", "performance",
		}, domain.CategoryEntertainment, 5),

		domain.MustRule([]string{
			"lifestyle", "fashion", "beauty", "style", "hairstyles", "home", "decor",
			"personal", "daily", "routine", "tips", "life hacks",
		}, domain.CategoryLifestyle, 4),
	}
}
