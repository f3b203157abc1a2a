package domain

// Template is a concrete activity blueprint for a category. Templates carry
// a minimum slot duration; shorter slots fall back to the category's
// shortest template.
type Template struct {
	Category           Category
	Title              string
	Description        string
	MinDurationMinutes int
}

// TemplatesFor returns the templates for a category, shortest first.
func TemplatesFor(c Category) []Template {
	return templatesByCategory[c]
}

// Each category's templates are listed shortest-first so index 0 doubles as
// the fallback for slots below every minimum.
var templatesByCategory = map[Category][]Template{
	CategoryCafe: {
		{CategoryCafe, "Coffee break nearby", "Take a slow moment with a warm drink. Scouting out a new cafe counts as an adventure.", 30},
		{CategoryCafe, "Cafe sweets time", "Reward yourself with a good pastry and a coffee. You have earned it.", 30},
		{CategoryCafe, "Deep work at a cafe", "Bring your focus work to a favorite cafe. A change of scenery often shakes loose new ideas.", 60},
	},
	CategoryWalk: {
		{CategoryWalk, "Walk around the block", "Step outside and stretch your legs. Taking an unfamiliar street can turn up small discoveries.", 20},
		{CategoryWalk, "Park refresh", "Stroll to a nearby park and breathe. A few minutes among trees resets the mind.", 30},
		{CategoryWalk, "Photo walk", "Wander with a camera or your phone and hunt for one good shot of an ordinary thing.", 45},
	},
	CategoryReading: {
		{CategoryReading, "Catch up on articles", "Work through the articles and magazines you have been saving. Fresh input, low effort.", 20},
		{CategoryReading, "Reading time", "Chip away at the unread pile. Find a quiet corner and sink into a book.", 30},
		{CategoryReading, "Library hour", "Settle in at the library. Browsing an unfamiliar shelf is half the fun.", 60},
	},
	CategoryMusic: {
		{CategoryMusic, "Music cafe", "Relax somewhere with good background music and let an album play through.", 30},
		{CategoryMusic, "Record shop digging", "Flip through the bins at a record shop. The best finds are never the ones you came for.", 45},
		{CategoryMusic, "Catch live music", "Check what's on at a nearby venue tonight and hear something performed live.", 60},
	},
	CategoryArt: {
		{CategoryArt, "Gallery visit", "Drop into a nearby gallery. Twenty minutes with unfamiliar work can reframe a whole day.", 30},
		{CategoryArt, "Street art hunt", "Walk a few blocks looking for public art and murals you have never noticed.", 45},
		{CategoryArt, "Museum afternoon", "Give a museum the slow attention it deserves. Pick one wing and take your time.", 60},
	},
	CategoryFitness: {
		{CategoryFitness, "Quick jog", "An easy jog to clear your head and get the blood moving. Pace does not matter.", 20},
		{CategoryFitness, "Yoga session", "Balance body and breath with a yoga session. Slow is the point.", 30},
		{CategoryFitness, "Gym workout", "Get a proper session in at the gym. The post-workout calm is worth it.", 45},
	},
	CategoryShopping: {
		{CategoryShopping, "Browse a boutique", "Poke around a small shop for something you did not know you wanted.", 30},
		{CategoryShopping, "Select shop visit", "Visit a well-curated select shop and see what the buyers found this season.", 30},
		{CategoryShopping, "Window shopping", "Wander the shops with no agenda. Good for trend-spotting, easy on the wallet.", 45},
	},
	CategoryGourmet: {
		{CategoryGourmet, "Snack crawl", "Graze your way down a street of small eats. Little portions, lots of variety.", 30},
		{CategoryGourmet, "Try a new restaurant", "Finally visit that place you keep walking past. New flavors are waiting.", 45},
		{CategoryGourmet, "Lunch somewhere new", "Break the routine with lunch at an unfamiliar spot. The afternoon goes better on a good meal.", 45},
	},
	CategoryMovie: {
		{CategoryMovie, "Catch the latest release", "See what's new on the big screen. Sound and scale you cannot get at home.", 90},
		{CategoryMovie, "Arthouse matinee", "Take a chance on an independent theater's program. Hidden gems live there.", 90},
	},
	CategoryMeditation: {
		{CategoryMeditation, "Quiet meditation", "Find a calm spot and follow your breath for a while. Ten minutes counts.", 20},
		{CategoryMeditation, "Temple or shrine visit", "Step into a temple, shrine, or any quiet grounds and let the noise fall away.", 30},
		{CategoryMeditation, "Spa or bathhouse", "Soak the tension out at a spa or bathhouse. Body first, mind follows.", 60},
	},
}
