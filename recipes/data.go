package recipes

import "cookly/models"

// seed is the built-in catalog. It is read-only after package init.
var seed = []models.Recipe{
	{
		ID:          "1",
		Title:       "Grilled Chicken with Rice & Broccoli",
		Category:    "Chicken",
		Cuisine:     "American",
		Description: "American · Chicken",
		TotalTime:   25,
		Ingredients: []string{
			"200 g chicken breast",
			"1 cup cooked white rice",
			"1 cup broccoli florets",
			"1 tbsp olive oil",
			"1 tsp garlic powder",
			"Salt and pepper",
		},
		Macros:  models.Macros{Calories: 550, Protein: 45, Carbs: 55, Fat: 15},
		Filters: []models.FilterType{models.FilterHighProtein},
	},
	{
		ID:          "2",
		Title:       "Chicken Stir-Fry with Vegetables",
		Category:    "Chicken",
		Cuisine:     "Asian",
		Description: "Asian · Chicken",
		TotalTime:   20,
		Ingredients: []string{
			"200 g chicken breast, sliced",
			"1 cup mixed vegetables (bell pepper, carrot, broccoli)",
			"1 tbsp soy sauce",
			"1 tbsp oyster sauce",
			"1 tbsp vegetable oil",
			"1 clove garlic",
		},
		Macros:  models.Macros{Calories: 480, Protein: 38, Carbs: 40, Fat: 18},
		Filters: []models.FilterType{models.FilterHighProtein, models.FilterStudentFriendly},
	},
	{
		ID:          "3",
		Title:       "Chicken Caesar Salad",
		Category:    "Chicken",
		Cuisine:     "American",
		Description: "American · Chicken",
		TotalTime:   15,
		Ingredients: []string{
			"150 g grilled chicken breast",
			"2 cups romaine lettuce",
			"1/4 cup croutons",
			"2 tbsp Caesar dressing",
			"1 tbsp grated parmesan",
			"Salt and pepper",
		},
		Macros:  models.Macros{Calories: 430, Protein: 35, Carbs: 20, Fat: 24},
		Filters: []models.FilterType{models.FilterDiet, models.FilterHighProtein, models.FilterStudentFriendly},
	},
	{
		ID:          "11",
		Title:       "Beef Tacos",
		Category:    "Beef",
		Cuisine:     "Mexican",
		Description: "Mexican · Beef",
		TotalTime:   20,
		Ingredients: []string{
			"150 g ground beef",
			"2 small corn tortillas",
			"1/4 cup shredded lettuce",
			"1/4 cup shredded cheese",
			"2 tbsp salsa",
			"Taco seasoning",
		},
		Macros:  models.Macros{Calories: 580, Protein: 28, Carbs: 40, Fat: 32},
		Filters: []models.FilterType{models.FilterStudentFriendly},
	},
	{
		ID:          "12",
		Title:       "Spaghetti Bolognese",
		Category:    "Beef",
		Cuisine:     "Italian",
		Description: "Italian · Beef",
		TotalTime:   35,
		Ingredients: []string{
			"80 g spaghetti (dry)",
			"150 g ground beef",
			"1/2 cup tomato sauce",
			"1/4 onion, chopped",
			"1 tbsp olive oil",
			"1 tbsp grated parmesan",
		},
		Macros:  models.Macros{Calories: 690, Protein: 32, Carbs: 75, Fat: 26},
		Filters: []models.FilterType{models.FilterGourmet},
	},
	{
		ID:          "13",
		Title:       "Beef Stir-Fry with Vegetables",
		Category:    "Beef",
		Cuisine:     "Asian",
		Description: "Asian · Beef",
		TotalTime:   20,
		Ingredients: []string{
			"150 g beef strips",
			"1 cup mixed vegetables",
			"1 tbsp soy sauce",
			"1 tbsp sesame oil",
			"1 tsp ginger, minced",
			"1 clove garlic",
		},
		Macros:  models.Macros{Calories: 520, Protein: 30, Carbs: 30, Fat: 28},
		Filters: []models.FilterType{models.FilterStudentFriendly},
	},
	{
		ID:          "21",
		Title:       "Pork Stir-Fry with Vegetables",
		Category:    "Pork",
		Cuisine:     "Asian",
		Description: "Asian · Pork",
		TotalTime:   20,
		Ingredients: []string{
			"150 g pork strips",
			"1 cup mixed vegetables",
			"1 tbsp soy sauce",
			"1 tbsp vegetable oil",
			"1 clove garlic",
			"1 tsp ginger",
		},
		Macros:  models.Macros{Calories: 520, Protein: 30, Carbs: 28, Fat: 28},
		Filters: []models.FilterType{models.FilterStudentFriendly},
	},
	{
		ID:          "22",
		Title:       "BBQ Pulled Pork Sandwich",
		Category:    "Pork",
		Cuisine:     "American",
		Description: "American · Pork",
		TotalTime:   40,
		Ingredients: []string{
			"150 g pulled pork",
			"1 burger bun",
			"2 tbsp BBQ sauce",
			"1/4 cup coleslaw",
			"Salt and pepper",
		},
		Macros:  models.Macros{Calories: 680, Protein: 30, Carbs: 60, Fat: 30},
		Filters: []models.FilterType{},
	},
	{
		ID:          "23",
		Title:       "Pork Chops with Vegetables",
		Category:    "Pork",
		Cuisine:     "European",
		Description: "European · Pork",
		TotalTime:   30,
		Ingredients: []string{
			"200 g pork chop",
			"1 cup green beans",
			"1 small potato, boiled",
			"1 tbsp olive oil",
			"Salt and pepper",
			"1 tsp dried thyme",
		},
		Macros:  models.Macros{Calories: 610, Protein: 38, Carbs: 35, Fat: 30},
		Filters: []models.FilterType{models.FilterHighProtein},
	},
	{
		ID:          "29",
		Title:       "Baked Salmon with Vegetables",
		Category:    "Fish",
		Cuisine:     "Mediterranean",
		Description: "Mediterranean · Fish",
		TotalTime:   25,
		Ingredients: []string{
			"180 g salmon fillet",
			"1 cup broccoli florets",
			"1/2 cup cherry tomatoes",
			"1 tbsp olive oil",
			"Lemon wedge",
			"Salt and pepper",
		},
		Macros:  models.Macros{Calories: 560, Protein: 38, Carbs: 12, Fat: 36},
		Filters: []models.FilterType{models.FilterHighProtein, models.FilterGourmet},
	},
	{
		ID:          "30",
		Title:       "Shrimp Stir-Fry with Rice",
		Category:    "Seafood",
		Cuisine:     "Asian",
		Description: "Asian · Seafood",
		TotalTime:   20,
		Ingredients: []string{
			"150 g shrimp, peeled",
			"1 cup mixed vegetables",
			"1 tbsp soy sauce",
			"1 tbsp vegetable oil",
			"1 cup cooked rice",
		},
		Macros:  models.Macros{Calories: 540, Protein: 32, Carbs: 60, Fat: 16},
		Filters: []models.FilterType{models.FilterStudentFriendly},
	},
	{
		ID:          "31",
		Title:       "Fish Tacos",
		Category:    "Fish",
		Cuisine:     "Mexican",
		Description: "Mexican · Fish",
		TotalTime:   20,
		Ingredients: []string{
			"150 g white fish fillet",
			"2 small corn tortillas",
			"1/4 cup shredded cabbage",
			"2 tbsp yogurt or sour cream",
			"1 tbsp lime juice",
			"Chili powder, salt",
		},
		Macros:  models.Macros{Calories: 480, Protein: 30, Carbs: 45, Fat: 16},
		Filters: []models.FilterType{models.FilterStudentFriendly},
	},
	{
		ID:          "32",
		Title:       "Tuna Salad Sandwich",
		Category:    "Fish",
		Cuisine:     "American",
		Description: "American · Fish",
		TotalTime:   10,
		Ingredients: []string{
			"1 can tuna in water (about 120 g drained)",
			"2 slices wholegrain bread",
			"1 tbsp mayonnaise",
			"Lettuce leaves",
			"Salt and pepper",
		},
		Macros:  models.Macros{Calories: 430, Protein: 30, Carbs: 34, Fat: 16},
		Filters: []models.FilterType{models.FilterDiet, models.FilterStudentFriendly},
	},
	{
		ID:          "33",
		Title:       "Garlic Butter Shrimp Pasta",
		Category:    "Seafood",
		Cuisine:     "Italian",
		Description: "Italian · Seafood",
		TotalTime:   25,
		Ingredients: []string{
			"150 g shrimp",
			"80 g spaghetti (dry)",
			"1 tbsp butter",
			"1 tbsp olive oil",
			"2 cloves garlic",
			"1 tbsp grated parmesan",
		},
		Macros:  models.Macros{Calories: 620, Protein: 32, Carbs: 65, Fat: 24},
		Filters: []models.FilterType{models.FilterGourmet},
	},
	{
		ID:          "36",
		Title:       "Shrimp Scampi",
		Category:    "Seafood",
		Cuisine:     "Italian",
		Description: "Italian · Seafood",
		TotalTime:   20,
		Ingredients: []string{
			"150 g shrimp",
			"80 g linguine (dry)",
			"2 tbsp butter",
			"2 cloves garlic",
			"1/4 cup white wine",
			"1 tbsp lemon juice",
		},
		Macros:  models.Macros{Calories: 580, Protein: 30, Carbs: 62, Fat: 20},
		Filters: []models.FilterType{models.FilterStudentFriendly},
	},
	{
		ID:          "39",
		Title:       "Tofu Vegetable Stir-Fry",
		Category:    "Vegetarian",
		Cuisine:     "Asian",
		Description: "Asian · Vegetarian",
		TotalTime:   20,
		Ingredients: []string{
			"150 g firm tofu, cubes",
			"1 cup mixed vegetables",
			"1 tbsp soy sauce",
			"1 tbsp vegetable oil",
			"1 clove garlic",
			"1 tsp ginger",
		},
		Macros:  models.Macros{Calories: 460, Protein: 22, Carbs: 30, Fat: 26},
		Filters: []models.FilterType{models.FilterStudentFriendly},
	},
	{
		ID:          "40",
		Title:       "Lentil Curry with Rice",
		Category:    "Vegan",
		Cuisine:     "Indian",
		Description: "Indian · Vegan",
		TotalTime:   30,
		Ingredients: []string{
			"1/2 cup dried lentils",
			"1/2 cup tomato puree",
			"1/2 cup coconut milk",
			"1 tsp curry powder",
			"1/4 onion, chopped",
			"1 cup cooked rice",
		},
		Macros:  models.Macros{Calories: 610, Protein: 22, Carbs: 90, Fat: 18},
		Filters: []models.FilterType{},
	},
	{
		ID:          "41",
		Title:       "Cauliflower Fried Rice with Chicken",
		Category:    "Keto",
		Cuisine:     "Chinese",
		Description: "Chinese · Keto",
		TotalTime:   30,
		Ingredients: []string{
			"Cauliflower (riced)",
			"Chicken breast",
			"Eggs",
			"Bell pepper",
			"Green peas",
			"Soy sauce (or tamari)",
			"Sesame oil",
			"Garlic",
			"Green onions",
		},
		Instructions: []string{
			"Heat 1 tablespoon of sesame oil in a large pan or wok over medium-high heat. Add minced garlic and sauté until fragrant (about 30 seconds).",
			"Add diced chicken breast to the pan and cook until no longer pink, about 5-6 minutes. Push the cooked chicken to one side of the pan.",
			"Crack the eggs into the other side of the pan and scramble them until just set. Mix the cooked eggs with the chicken.",
			"Stir in the riced cauliflower, diced bell pepper, and a handful of green peas. Cook everything for 5-7 minutes, stirring frequently, until the vegetables are tender-crisp.",
			"Drizzle soy sauce (or tamari for gluten-free) over the cauliflower rice and stir-fry for another 2-3 minutes, allowing the flavors to combine.",
			"Season with salt and pepper to taste. Remove from heat and garnish with sliced green onions before serving hot.",
		},
		Macros:  models.Macros{Calories: 320, Protein: 25, Carbs: 10, Fat: 18},
		Filters: []models.FilterType{models.FilterDiet},
	},
	{
		ID:          "42",
		Title:       "Zucchini Noodle Chicken Alfredo",
		Category:    "Keto",
		Cuisine:     "Italian",
		Description: "Italian · Keto",
		TotalTime:   25,
		Ingredients: []string{
			"Zucchini",
			"Chicken breast",
			"Heavy cream",
			"Parmesan cheese",
			"Butter",
			"Garlic",
			"Salt",
			"Black pepper",
		},
		Instructions: []string{
			"Spiralize the zucchini into noodles ('zoodles') and set aside. Pat the chicken breast dry and season with salt and pepper on both sides.",
			"Heat a tablespoon of butter in a skillet over medium heat. Add the chicken breast and cook for 5-6 minutes per side or until cooked through. Remove and slice the chicken.",
			"In the same skillet, add minced garlic and sauté for 30 seconds. Pour in the heavy cream and bring it to a gentle simmer, scraping up any browned bits from the pan.",
			"Stir in grated Parmesan cheese until it melts into the sauce. Let the sauce simmer for 2-3 minutes, stirring frequently, until slightly thickened.",
			"Add the zucchini noodles to the pan and toss gently in the Alfredo sauce for 2-3 minutes until they soften slightly (avoid overcooking).",
			"Serve the zucchini noodles topped with the sliced chicken. Spoon any extra Alfredo sauce over the top and garnish with additional Parmesan if desired.",
		},
		Macros:  models.Macros{Calories: 400, Protein: 30, Carbs: 8, Fat: 28},
		Filters: []models.FilterType{models.FilterDiet, models.FilterGourmet},
	},
	{
		ID:          "56",
		Title:       "Veggie Stir-Fry Noodles with Tofu",
		Category:    "Vegetarian",
		Cuisine:     "Chinese",
		Description: "Chinese · Vegetarian",
		TotalTime:   25,
		Ingredients: []string{
			"Tofu",
			"Mixed vegetables (bell pepper, broccoli, carrot)",
			"Soy sauce",
			"Ginger",
			"Garlic",
			"Rice noodles (or lo mein noodles)",
			"Sesame oil",
			"Green onions",
		},
		Instructions: []string{
			"Press the tofu to remove excess water, then cut it into cubes. Heat 1 tablespoon of sesame oil in a large pan or wok over medium-high heat.",
			"Add the tofu cubes and cook until lightly browned on all sides, about 5-6 minutes. Remove the tofu from the pan and set aside on a plate.",
			"In the same pan, add a bit more oil if needed. Add minced garlic and grated ginger, stirring for 30 seconds until fragrant.",
			"Toss in the mixed vegetables (sliced bell pepper, small broccoli florets, and julienned carrot). Stir-fry for 3-5 minutes until the veggies are crisp-tender.",
			"Meanwhile, cook the rice noodles according to package instructions (usually by soaking in hot water or boiling briefly). Drain well.",
			"Add the drained noodles to the pan with the vegetables, along with the browned tofu. Pour in soy sauce (about 2-3 tablespoons) and toss everything together for another 2 minutes on the heat, until the noodles and veggies are well combined.",
			"Remove from heat and sprinkle with chopped green onions. Serve hot, straight from the pan.",
		},
		Macros:  models.Macros{Calories: 400, Protein: 15, Carbs: 50, Fat: 10},
		Filters: []models.FilterType{models.FilterDiet},
	},
	{
		ID:          "57",
		Title:       "Chickpea & Spinach Curry",
		Category:    "Vegetarian",
		Cuisine:     "Indian",
		Description: "Indian · Vegetarian",
		TotalTime:   30,
		Ingredients: []string{
			"Chickpeas (canned)",
			"Spinach",
			"Tomatoes (diced or crushed)",
			"Onion",
			"Garlic",
			"Curry powder",
			"Cumin",
			"Coconut milk",
			"Oil",
			"Salt",
		},
		Instructions: []string{
			"Heat 1 tablespoon of oil in a pot over medium heat. Add a diced onion and sauté until translucent, about 3-4 minutes. Stir in minced garlic and cook for another 30 seconds.",
			"Mix in 2 teaspoons of curry powder and 1 teaspoon of ground cumin. Stir the spices with the onions and garlic for about 1 minute to release their aroma.",
			"Add a can of diced tomatoes (with juices) and a can of drained chickpeas to the pot. Stir everything together and bring to a simmer.",
			"Pour in 1/2 cup of coconut milk and stir. Add a pinch of salt. Simmer the curry for 10-15 minutes, allowing the flavors to meld and the sauce to thicken slightly.",
			"Stir in a few handfuls of fresh spinach leaves and cook for 2-3 minutes until the spinach wilts into the curry.",
			"Taste and adjust seasoning if needed. Serve the chickpea and spinach curry hot, on its own or over rice (if desired).",
		},
		Macros:  models.Macros{Calories: 320, Protein: 12, Carbs: 45, Fat: 12},
		Filters: []models.FilterType{models.FilterDiet},
	},
	{
		ID:          "71",
		Title:       "Grilled Chicken Quinoa Bowl",
		Category:    "High-Protein",
		Cuisine:     "American",
		Description: "American · High-Protein",
		TotalTime:   30,
		Ingredients: []string{
			"Chicken breast",
			"Quinoa",
			"Broccoli",
			"Bell pepper",
			"Olive oil",
			"Lemon",
			"Garlic powder",
			"Salt",
			"Black pepper",
		},
		Instructions: []string{
			"Rinse and cook 1 cup of quinoa according to package directions (usually simmered in 2 cups of water for about 15 minutes) until fluffy. Set aside.",
			"Meanwhile, preheat a grill or grill pan over medium-high heat. Pound the chicken breast to an even thickness and season with olive oil, garlic powder, salt, and pepper.",
			"Grill the chicken for about 5-6 minutes per side, or until fully cooked through. Remove from heat and let it rest for a few minutes, then slice into strips.",
			"Lightly steam or sauté bite-sized broccoli florets until crisp-tender, about 3-4 minutes. Also, chop the bell pepper into thin strips (you can grill or sauté it lightly if desired).",
			"Assemble the bowl: start with a base of cooked quinoa, then add the grilled chicken slices, broccoli, and bell pepper. Squeeze fresh lemon juice over the bowl and drizzle with a little olive oil for extra flavor.",
			"Season with additional salt and pepper if needed. Serve warm.",
		},
		Macros:  models.Macros{Calories: 450, Protein: 35, Carbs: 40, Fat: 10},
		Filters: []models.FilterType{models.FilterDiet, models.FilterHighProtein},
	},
	{
		ID:          "72",
		Title:       "Turkey Meatballs with Zucchini Noodles",
		Category:    "High-Protein",
		Cuisine:     "Italian",
		Description: "Italian · High-Protein",
		TotalTime:   35,
		Ingredients: []string{
			"Ground turkey",
			"Egg",
			"Parmesan cheese",
			"Italian seasoning",
			"Zucchini",
			"Marinara sauce",
			"Olive oil",
			"Garlic",
			"Salt",
			"Black pepper",
		},
		Instructions: []string{
			"In a bowl, combine ground turkey with a beaten egg, 1/4 cup grated Parmesan, 1 teaspoon Italian seasoning, minced garlic, salt, and pepper. Mix well and form into small meatballs (about 1 inch in diameter).",
			"Heat 1-2 tablespoons of olive oil in a large pan over medium heat. Add the turkey meatballs, cooking for about 8-10 minutes, turning occasionally, until they are browned on all sides and cooked through. Remove meatballs and set aside.",
			"In the same pan, pour in marinara sauce (about 2 cups). Bring it to a simmer, scraping any browned bits from the bottom. Return the meatballs to the sauce and let them simmer for 5 minutes.",
			"While the meatballs simmer, make zucchini noodles using a spiralizer or vegetable peeler. Lightly sauté the zucchini noodles in a separate pan with a little olive oil for 2-3 minutes until slightly tender (do not overcook).",
			"Serve the turkey meatballs and marinara over a bed of zucchini noodles. Sprinkle extra Parmesan on top if desired.",
		},
		Macros:  models.Macros{Calories: 300, Protein: 30, Carbs: 10, Fat: 15},
		Filters: []models.FilterType{models.FilterDiet, models.FilterGourmet},
	},
	{
		ID:          "81",
		Title:       "Vegan Buddha Bowl",
		Category:    "Vegan",
		Cuisine:     "Fusion",
		Description: "Fusion · Vegan",
		TotalTime:   30,
		Ingredients: []string{
			"Quinoa",
			"Sweet potato",
			"Chickpeas",
			"Spinach (or kale)",
			"Avocado",
			"Tahini",
			"Lemon",
			"Olive oil",
			"Salt",
			"Black pepper",
		},
		Instructions: []string{
			"Preheat oven to 400°F (200°C). Peel and dice a sweet potato into cubes. Toss the cubes with a bit of olive oil, salt, and pepper on a baking sheet. Roast for about 20-25 minutes until tender.",
			"Rinse and drain a can of chickpeas. Pat them dry, then toss in a little olive oil, salt, and pepper (you can add spices like paprika or cumin if desired). Spread on a baking sheet and roast in the oven alongside the sweet potatoes for 20 minutes, until slightly crispy.",
			"Meanwhile, cook 1/2 cup of quinoa in 1 cup of water (bring to boil, then simmer about 15 minutes) until fluffy. Set aside.",
			"Prepare the tahini dressing by mixing 2 tablespoons of tahini with the juice of half a lemon, a drizzle of olive oil, and a little warm water to thin. Stir until smooth and creamy.",
			"Assemble the Buddha bowl: in a bowl, add a scoop of cooked quinoa, a handful of fresh spinach or kale, the roasted sweet potato cubes, and roasted chickpeas. Add sliced avocado on top.",
			"Drizzle the tahini-lemon dressing over everything. Enjoy this colorful, nourishing bowl.",
		},
		Macros:  models.Macros{Calories: 500, Protein: 15, Carbs: 60, Fat: 20},
		Filters: []models.FilterType{},
	},
	{
		ID:          "82",
		Title:       "Vegan Tofu Veggie Stir-Fry",
		Category:    "Vegan",
		Cuisine:     "Chinese",
		Description: "Chinese · Vegan",
		TotalTime:   25,
		Ingredients: []string{
			"Tofu",
			"Broccoli",
			"Bell pepper",
			"Carrot",
			"Soy sauce (or tamari)",
			"Garlic",
			"Ginger",
			"Sesame oil",
			"Brown rice",
		},
		Instructions: []string{
			"Press the tofu for 10-15 minutes to remove excess moisture, then cut into cubes. In a large skillet or wok, heat 1 tablespoon of sesame oil over medium-high heat.",
			"Add the tofu cubes and fry until golden brown on most sides, about 5-6 minutes. Remove tofu and set aside.",
			"In the same pan, add a bit more oil if needed. Add minced garlic (2 cloves) and grated ginger (1 tsp), stir-frying for 30 seconds until fragrant.",
			"Add broccoli florets, sliced bell pepper, and thinly sliced carrot. Stir-fry for 3-5 minutes until the vegetables are tender but still crisp.",
			"Return the tofu to the pan. Pour in 2-3 tablespoons of soy sauce or tamari and toss everything together, cooking for another 1-2 minutes so the tofu and veggies absorb the sauce.",
			"Serve the tofu veggie stir-fry over cooked brown rice for a complete meal.",
		},
		Macros:  models.Macros{Calories: 350, Protein: 15, Carbs: 50, Fat: 10},
		Filters: []models.FilterType{models.FilterDiet},
	},
	{
		ID:          "86",
		Title:       "Greek Chicken Souvlaki with Tzatziki",
		Category:    "Mediterranean",
		Cuisine:     "Greek",
		Description: "Greek · Mediterranean",
		TotalTime:   45,
		Ingredients: []string{
			"Chicken breast",
			"Olive oil",
			"Lemon",
			"Garlic",
			"Oregano",
			"Yogurt",
			"Cucumber",
			"Dill",
			"Salt",
			"Black pepper",
		},
		Instructions: []string{
			"Cut the chicken breast into bite-sized pieces for skewers. In a bowl, make a marinade with 2 tablespoons olive oil, juice of one lemon, 2 minced garlic cloves, 1 teaspoon dried oregano, salt, and pepper. Add the chicken pieces and toss to coat. Let marinate for at least 15 minutes (or up to overnight in the fridge).",
			"If using wooden skewers, soak them in water for a few minutes. Thread the marinated chicken onto skewers.",
			"Grill the chicken skewers on a preheated grill or grill pan over medium-high heat, about 4-5 minutes per side, until cooked through and slightly charred.",
			"Meanwhile, prepare the tzatziki sauce: grate 1/2 a cucumber and squeeze out excess water. In a bowl, mix the cucumber with 1 cup of Greek yogurt, a minced garlic clove, a squeeze of lemon juice, a drizzle of olive oil, and a pinch of salt. Add chopped fresh dill or mint if available. Stir well.",
			"Serve the hot grilled chicken souvlaki with the cool tzatziki sauce on the side. You can accompany it with pita bread and a Greek salad if desired.",
		},
		Macros:  models.Macros{Calories: 400, Protein: 30, Carbs: 10, Fat: 25},
		Filters: []models.FilterType{models.FilterDiet},
	},
	{
		ID:          "87",
		Title:       "Mediterranean Grilled Salmon with Quinoa",
		Category:    "Mediterranean",
		Cuisine:     "Mediterranean",
		Description: "Mediterranean · Mediterranean",
		TotalTime:   30,
		Ingredients: []string{
			"Salmon fillets",
			"Quinoa",
			"Cherry tomatoes",
			"Cucumber",
			"Feta cheese",
			"Olive oil",
			"Lemon",
			"Oregano",
			"Salt",
			"Black pepper",
		},
		Instructions: []string{
			"Rinse and cook 1 cup of quinoa in 2 cups of water (bring to a boil, then simmer 15 minutes) until fluffy. Set aside and fluff with a fork.",
			"Season the salmon fillets with salt, pepper, dried oregano, and a drizzle of olive oil. Heat a grill pan or skillet over medium-high heat. Cook the salmon for about 4 minutes per side, or until it flakes easily with a fork. Squeeze a bit of lemon juice over the salmon after cooking.",
			"In a bowl, combine halved cherry tomatoes, diced cucumber, and crumbled feta cheese. Drizzle with olive oil and a little lemon juice, and toss gently to make a quick Mediterranean salsa.",
			"Serve the grilled salmon fillets over a bed of cooked quinoa. Top with the tomato-cucumber-feta mixture.",
			"Garnish with additional lemon wedges for squeezing. Enjoy the salmon immediately for best flavor.",
		},
		Macros:  models.Macros{Calories: 500, Protein: 35, Carbs: 30, Fat: 30},
		Filters: []models.FilterType{models.FilterHighProtein, models.FilterGourmet},
	},
	{
		ID:          "91",
		Title:       "Zucchini Lasagna (Gluten-Free)",
		Category:    "Gluten-Free",
		Cuisine:     "Italian",
		Description: "Italian · Gluten-Free",
		TotalTime:   60,
		Ingredients: []string{
			"Zucchini",
			"Ground beef",
			"Ricotta cheese",
			"Mozzarella cheese",
			"Parmesan cheese",
			"Tomato sauce",
			"Onion",
			"Garlic",
			"Italian seasoning",
			"Salt",
		},
		Instructions: []string{
			"Preheat oven to 375°F (190°C). Slice zucchini lengthwise into thin strips (these will be your 'noodles'). You can use a mandoline or a knife. Lightly salt the zucchini slices and set them aside for 10 minutes, then blot with a paper towel to remove excess moisture.",
			"In a skillet, heat a bit of oil over medium heat. Sauté a diced onion and minced garlic until softened. Add the ground beef and cook until browned, breaking it up (about 5-7 minutes). Drain excess fat.",
			"Stir in Italian seasoning and a jar (or about 2 cups) of tomato sauce. Simmer for 5 minutes. Season with salt and pepper to taste. This is your meat sauce.",
			"In a bowl, mix 1 cup of ricotta cheese with 1/4 cup grated Parmesan and a pinch of salt (you can also add an egg to help bind, optional).",
			"Assemble the lasagna in a baking dish: start with a thin layer of meat sauce, then a layer of zucchini slices (overlap slightly), spread a layer of the ricotta mixture, then sprinkle some shredded mozzarella. Repeat layers (sauce, zucchini, ricotta, mozzarella) until you fill the dish, ending with sauce and mozzarella on top.",
			"Bake the zucchini lasagna for about 30 minutes, until bubbly and the cheese on top is melted and lightly golden. Let it cool for 5-10 minutes before slicing and serving.",
		},
		Macros:  models.Macros{Calories: 380, Protein: 25, Carbs: 15, Fat: 25},
		Filters: []models.FilterType{models.FilterDiet, models.FilterGourmet},
	},
	{
		ID:          "92",
		Title:       "Almond-Crusted Chicken Tenders",
		Category:    "Gluten-Free",
		Cuisine:     "American",
		Description: "American · Gluten-Free",
		TotalTime:   30,
		Ingredients: []string{
			"Chicken tenders",
			"Almond flour",
			"Eggs",
			"Paprika",
			"Garlic powder",
			"Olive oil",
			"Salt",
			"Black pepper",
		},
		Instructions: []string{
			"Preheat oven to 400°F (200°C). Line a baking sheet with parchment paper or lightly grease it.",
			"Set up a breading station: in one bowl, beat 2 eggs. In another bowl, mix 1 cup of almond flour with 1 teaspoon paprika, 1/2 teaspoon garlic powder, 1/2 teaspoon salt, and 1/4 teaspoon black pepper.",
			"Dip each chicken tender in the beaten eggs, then roll it in the almond flour mixture to coat well. Place the coated tenders on the prepared baking sheet.",
			"Lightly drizzle or spray the coated chicken tenders with olive oil (this helps them crisp up).",
			"Bake for about 15-20 minutes, flipping halfway through, until the chicken tenders are golden brown and cooked through (juices run clear).",
			"Serve these gluten-free almond-crusted chicken tenders with your favorite dipping sauce.",
		},
		Macros:  models.Macros{Calories: 300, Protein: 28, Carbs: 5, Fat: 18},
		Filters: []models.FilterType{models.FilterDiet},
	},
	{
		ID:          "96",
		Title:       "Hearty Beef Stew (Paleo)",
		Category:    "Paleo",
		Cuisine:     "American",
		Description: "American · Paleo",
		TotalTime:   120,
		Ingredients: []string{
			"Stew beef chunks",
			"Sweet potatoes",
			"Carrots",
			"Celery",
			"Onion",
			"Beef broth",
			"Tomato paste",
			"Garlic",
			"Thyme",
			"Salt",
		},
		Instructions: []string{
			"Heat 2 tablespoons of oil in a large pot or Dutch oven over medium-high heat. Season the stew beef chunks with salt and pepper. Add them to the pot and brown on all sides (do this in batches if needed). Remove the beef and set aside.",
			"In the same pot, add a diced onion and sauté for 3-4 minutes. Add chopped carrots and celery, cooking for another 3 minutes. Add minced garlic (2 cloves) and cook 30 seconds more.",
			"Stir in 2 tablespoons of tomato paste and a teaspoon of dried thyme (or a few sprigs of fresh thyme). Cook for 1 minute with the vegetables.",
			"Return the browned beef to the pot. Pour in about 4 cups of beef broth, scraping up any browned bits from the bottom. Add two peeled, chopped sweet potatoes to the stew.",
			"Bring to a boil, then reduce heat to low, cover, and simmer for about 1.5 hours (90 minutes), or until the beef is very tender. Stir occasionally. If the stew gets too thick, add a bit more broth or water.",
			"Taste and adjust seasoning with salt and pepper. Serve the hearty beef stew hot. (It's Paleo-friendly with no flour or grains used for thickening.)",
		},
		Macros:  models.Macros{Calories: 400, Protein: 30, Carbs: 20, Fat: 20},
		Filters: []models.FilterType{models.FilterDiet},
	},
	{
		ID:          "97",
		Title:       "Sweet Potato & Beef Chili (Paleo)",
		Category:    "Paleo",
		Cuisine:     "American",
		Description: "American · Paleo",
		TotalTime:   60,
		Ingredients: []string{
			"Ground beef",
			"Sweet potatoes",
			"Tomato sauce",
			"Onion",
			"Bell pepper",
			"Chili powder",
			"Cumin",
			"Garlic powder",
			"Olive oil",
			"Salt",
		},
		Instructions: []string{
			"In a large pot or Dutch oven, heat 1 tablespoon of olive oil over medium heat. Add a diced onion and chopped bell pepper, cooking for 5 minutes until softened.",
			"Add 2 cloves minced garlic (or 1/2 teaspoon garlic powder) and cook for 30 seconds. Then add the ground beef. Cook, breaking it up with a spoon, until the beef is browned, about 5-7 minutes. Drain any excess fat if necessary.",
			"Stir in 2 tablespoons of chili powder and 1 teaspoon of cumin. Cook with the beef for a minute.",
			"Add one large sweet potato, peeled and cut into small cubes. Pour in a can of tomato sauce (15 oz) and one cup of water or beef broth. Stir to combine.",
			"Bring the chili to a simmer, then reduce heat to low. Cover and let it simmer for about 25-30 minutes, until the sweet potato pieces are tender and the chili has thickened. Stir occasionally to prevent sticking.",
			"Season with salt and pepper to taste. Serve the paleo chili hot. (Note: This chili is bean-free, using sweet potatoes for heartiness.)",
		},
		Macros:  models.Macros{Calories: 450, Protein: 25, Carbs: 30, Fat: 25},
		Filters: []models.FilterType{models.FilterDiet},
	},
}
