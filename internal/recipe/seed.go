package recipe

import "github.com/hammamikhairi/recipekit/internal/domain"

// builtinDocuments are the raw recipes the library starts with, keyed by
// ID.
func builtinDocuments() map[string]domain.RawDocument {
	return map[string]domain.RawDocument{
		"chicken-alfredo": {
			Title:     "Chicken Alfredo",
			Servings:  2,
			PrepTime:  "10m",
			CookTime:  "25m",
			TotalTime: "35m",
			IngredientLines: []string{
				"250 g spaghetti",
				"2 medium chicken breasts",
				"1 cup crème fraîche",
				"1 cup gruyere cheese, grated",
				"3 tablespoons butter",
				"4 cloves garlic, minced",
				"1 tbsp olive oil",
				"salt and black pepper to taste",
			},
			InstructionLines: []string{
				"Bring a large pot of salted water to a boil for the pasta.",
				"Season the chicken breasts with salt and pepper on both sides and pound them to an even thickness.",
				"Heat the olive oil in a skillet over medium-high heat. Sear the chicken for about 6 minutes per side until golden and cooked through, then let it rest.",
				"Cook the spaghetti until al dente. Reserve 1 cup of pasta water before draining.",
				"In the same skillet, melt the butter over medium heat. Add the garlic and cook for 1 minute until fragrant.",
				"Stir in the crème fraîche and simmer for 3 minutes until slightly thickened.",
				"Take the pan off the heat and stir in the gruyere until smooth, loosening with pasta water if needed.",
				"Slice the chicken, toss the pasta in the sauce and serve with the chicken on top.",
			},
		},
		"vegetable-stir-fry": {
			Title:    "Vegetable Stir Fry",
			Servings: 2,
			PrepTime: "15m",
			CookTime: "8m",
			IngredientLines: []string{
				"1 large bell pepper, sliced into strips",
				"2 cups broccoli florets",
				"1 medium carrot, julienned",
				"1 cup snap peas, trimmed",
				"3 cloves garlic, minced",
				"1 tbsp fresh ginger, grated",
				"Sauce:",
				"2 tbsp soy sauce",
				"1 tbsp sesame oil",
				"1 tsp cornstarch (optional)",
				"2 tbsp vegetable oil",
				"1 cup rice, for serving (optional)",
			},
			InstructionLines: []string{
				"If serving with rice, start the rice first.",
				"Prep all vegetables before the pan goes on the heat.",
				"Mix the soy sauce, sesame oil and cornstarch with 2 tablespoons of water. Set aside.",
				"Heat a wok on high heat until it just starts to smoke, add the vegetable oil and swirl to coat.",
				"Stir-fry the broccoli and carrot for 2 minutes, then add the pepper and snap peas for 2 minutes more.",
				"Push the vegetables aside, fry the garlic and ginger for 30 seconds, then toss everything together.",
				"Pour in the sauce and cook for 30 seconds until glossy. Serve immediately over rice.",
			},
		},
		"chocolate-chip-cookies": {
			Title:     "Chocolate Chip Cookies",
			Servings:  24,
			PrepTime:  "15m",
			CookTime:  "11m",
			TotalTime: "26m",
			IngredientLines: []string{
				"2 1/4 cups all-purpose flour",
				"1 tsp baking soda",
				"1 tsp salt",
				"1 cup butter, softened",
				"3/4 cup granulated sugar",
				"3/4 cup packed brown sugar",
				"1 tsp vanilla extract",
				"2 large eggs",
				"2 cups semi-sweet chocolate chips",
				"1 cup chopped nuts (optional)",
			},
			InstructionLines: []string{
				"Preheat oven to 375°F.",
				"Combine flour, baking soda and salt in a small bowl.",
				"Beat butter, granulated sugar, brown sugar and vanilla extract in a large mixer bowl until creamy.",
				"Add eggs, one at a time, beating well after each addition. Gradually beat in the flour mixture.",
				"Stir in chocolate chips and nuts. Drop by rounded tablespoon onto ungreased baking sheets.",
				"Bake for 9 to 11 minutes or until golden brown. Cool on baking sheets for 2 minutes.",
			},
		},
	}
}
