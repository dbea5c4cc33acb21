package recipe

// sampleRecipes 內建範例資料；總價與每份價格由 SampleRecipes 依食材計算
var sampleRecipes = []Recipe{
	{
		ID:          "1",
		Title:       "Mediterranean Chickpea Bowl",
		Description: "A protein-packed bowl with chickpeas, fresh vegetables, and a tangy lemon dressing.",
		ImageURL:    "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?auto=format&fit=crop&w=1000&q=80",
		Ingredients: []Ingredient{
			{Name: "Chickpeas", Amount: "1", Unit: "can", Price: 0.89},
			{Name: "Cucumber", Amount: "1", Unit: "medium", Price: 0.79},
			{Name: "Cherry Tomatoes", Amount: "1", Unit: "cup", Price: 1.99},
			{Name: "Red Onion", Amount: "1/4", Unit: "", Price: 0.30},
			{Name: "Feta Cheese", Amount: "1/4", Unit: "cup", Price: 1.25},
			{Name: "Olive Oil", Amount: "2", Unit: "tbsp", Price: 0.40},
			{Name: "Lemon", Amount: "1/2", Unit: "", Price: 0.50},
			{Name: "Salt and Pepper", Amount: "", Unit: "to taste", Price: 0.05},
		},
		Instructions: []string{
			"Drain and rinse the chickpeas.",
			"Chop the cucumber, tomatoes, and red onion.",
			"Mix all vegetables with chickpeas in a bowl.",
			"Crumble feta cheese over the top.",
			"Whisk together olive oil, lemon juice, salt, and pepper.",
			"Drizzle the dressing over the bowl and toss to combine.",
			"Serve immediately or refrigerate for up to 24 hours.",
		},
		PrepTime: 15,
		CookTime: 0,
		Servings: 2,
		NutritionInfo: NutritionInfo{
			Calories: 380, Protein: 15, Carbs: 42, Fat: 18, Fiber: 12, Sugar: 8,
		},
		Tags: []string{"vegetarian", "high-protein", "no-cook", "mediterranean"},
	},
	{
		ID:          "2",
		Title:       "Budget-Friendly Lentil Soup",
		Description: "A hearty and nutritious soup that costs less than $1.50 per serving.",
		ImageURL:    "https://images.unsplash.com/photo-1547592166-23ac45744acd?auto=format&fit=crop&w=1000&q=80",
		Ingredients: []Ingredient{
			{Name: "Dried Lentils", Amount: "1", Unit: "cup", Price: 1.29},
			{Name: "Onion", Amount: "1", Unit: "medium", Price: 0.50},
			{Name: "Carrots", Amount: "2", Unit: "medium", Price: 0.40},
			{Name: "Celery", Amount: "2", Unit: "stalks", Price: 0.30},
			{Name: "Garlic", Amount: "2", Unit: "cloves", Price: 0.20},
			{Name: "Vegetable Broth", Amount: "4", Unit: "cups", Price: 1.99},
			{Name: "Diced Tomatoes", Amount: "1", Unit: "can", Price: 0.99},
			{Name: "Bay Leaf", Amount: "1", Unit: "", Price: 0.05},
			{Name: "Olive Oil", Amount: "1", Unit: "tbsp", Price: 0.20},
			{Name: "Salt and Pepper", Amount: "", Unit: "to taste", Price: 0.05},
		},
		Instructions: []string{
			"Heat olive oil in a large pot over medium heat.",
			"Add chopped onion, carrots, and celery. Cook until softened, about 5 minutes.",
			"Add minced garlic and cook for 30 seconds until fragrant.",
			"Add lentils, diced tomatoes, vegetable broth, and bay leaf.",
			"Bring to a boil, then reduce heat and simmer for 25-30 minutes until lentils are tender.",
			"Season with salt and pepper to taste.",
			"Remove bay leaf before serving.",
		},
		PrepTime: 10,
		CookTime: 35,
		Servings: 4,
		NutritionInfo: NutritionInfo{
			Calories: 250, Protein: 12, Carbs: 40, Fat: 4, Fiber: 15, Sugar: 6,
		},
		Tags: []string{"vegan", "budget-friendly", "high-fiber", "one-pot"},
	},
	{
		ID:          "3",
		Title:       "Sheet Pan Chicken and Veggies",
		Description: "An easy weeknight dinner with lean protein and seasonal vegetables.",
		ImageURL:    "https://images.unsplash.com/photo-1559847844-5315695dadae?auto=format&fit=crop&w=1000&q=80",
		Ingredients: []Ingredient{
			{Name: "Chicken Breast", Amount: "1", Unit: "lb", Price: 3.99},
			{Name: "Bell Peppers", Amount: "2", Unit: "medium", Price: 1.98},
			{Name: "Broccoli", Amount: "1", Unit: "head", Price: 1.50},
			{Name: "Red Onion", Amount: "1", Unit: "medium", Price: 0.79},
			{Name: "Olive Oil", Amount: "2", Unit: "tbsp", Price: 0.40},
			{Name: "Italian Seasoning", Amount: "1", Unit: "tsp", Price: 0.15},
			{Name: "Garlic Powder", Amount: "1/2", Unit: "tsp", Price: 0.10},
			{Name: "Salt and Pepper", Amount: "", Unit: "to taste", Price: 0.05},
		},
		Instructions: []string{
			"Preheat oven to 425°F (220°C).",
			"Cut chicken into 1-inch pieces. Chop all vegetables into similar size pieces.",
			"In a large bowl, combine olive oil, Italian seasoning, garlic powder, salt, and pepper.",
			"Add chicken and vegetables to the bowl and toss until evenly coated.",
			"Spread everything in a single layer on a large baking sheet.",
			"Bake for 20-25 minutes, stirring halfway through, until chicken is cooked and vegetables are tender.",
			"Serve hot.",
		},
		PrepTime: 15,
		CookTime: 25,
		Servings: 4,
		NutritionInfo: NutritionInfo{
			Calories: 320, Protein: 35, Carbs: 15, Fat: 14, Fiber: 4, Sugar: 5,
		},
		Tags: []string{"high-protein", "gluten-free", "one-pan", "meal-prep-friendly"},
	},
}

// SampleRecipes 回傳內建範例資料的副本
func SampleRecipes() []Recipe {
	out := make([]Recipe, 0, len(sampleRecipes))
	for _, r := range sampleRecipes {
		c := r.Clone()
		c.TotalPrice = sumPrices(c.Ingredients)
		c.PricePerServing = perServing(c.TotalPrice, c.Servings)
		out = append(out, c)
	}
	return out
}
