package ingredient

// DefaultUnits is the unit vocabulary recognized after a leading amount.
// Matching is case-insensitive.
var DefaultUnits = []string{
	"cup", "cups",
	"tbsp", "tsp",
	"tablespoon", "tablespoons",
	"teaspoon", "teaspoons",
	"lb", "lbs",
	"pound", "pounds",
	"oz", "ounce", "ounces",
	"g", "kg",
	"ml", "l",
	"pinch", "dash",
}
