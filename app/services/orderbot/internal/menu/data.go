package menu

// allItems lists the catalog in menu-board order. The catalog keeps this
// order so substring matching stays deterministic.
var allItems = []Item{
	// Entrees
	{
		Name:        "Chicken Sandwich",
		PriceCents:  429,
		Ingredients: []string{"bun", "breaded chicken breast", "pickle slices", "butter"},
		Modifiable:  []string{"pickle slices"},
	},
	{
		Name:        "Deluxe Chicken Sandwich",
		PriceCents:  495,
		Ingredients: []string{"bun", "breaded chicken breast", "pickle slices", "lettuce", "tomato", "American cheese", "butter"},
		Modifiable:  []string{"pickle slices", "lettuce", "tomato", "American cheese"},
	},
	{
		Name:        "Spicy Chicken Sandwich",
		PriceCents:  469,
		Ingredients: []string{"bun", "spicy breaded chicken breast", "pickle slices", "butter"},
		Modifiable:  []string{"pickle slices"},
	},
	{
		Name:        "Spicy Deluxe Sandwich",
		PriceCents:  525,
		Ingredients: []string{"bun", "spicy breaded chicken breast", "pickle slices", "lettuce", "tomato", "Pepper Jack cheese", "butter"},
		Modifiable:  []string{"pickle slices", "lettuce", "tomato", "Pepper Jack cheese"},
	},
	{
		Name:        "Grilled Chicken Sandwich",
		PriceCents:  565,
		Ingredients: []string{"multigrain bun", "grilled chicken breast", "lettuce", "tomato", "honey roasted BBQ sauce"},
		Modifiable:  []string{"lettuce", "tomato", "honey roasted BBQ sauce"},
	},
	{
		Name:        "Grilled Chicken Club Sandwich",
		PriceCents:  725,
		Ingredients: []string{"multigrain bun", "grilled chicken breast", "Colby-Jack cheese", "bacon", "lettuce", "tomato", "honey roasted BBQ sauce"},
		Modifiable:  []string{"Colby-Jack cheese", "bacon", "lettuce", "tomato", "honey roasted BBQ sauce"},
	},
	{
		Name:        "Nuggets (8-count)",
		PriceCents:  405,
		Ingredients: []string{"bite-sized breaded chicken breast pieces", "seasoned breading", "peanut oil"},
	},
	{
		Name:        "Nuggets (12-count)",
		PriceCents:  595,
		Ingredients: []string{"bite-sized breaded chicken breast pieces", "seasoned breading", "peanut oil"},
	},
	{
		Name:        "Grilled Nuggets (8-count)",
		PriceCents:  525,
		Ingredients: []string{"bite-sized grilled chicken breast pieces", "seasoning"},
	},
	{
		Name:        "Grilled Nuggets (12-count)",
		PriceCents:  785,
		Ingredients: []string{"bite-sized grilled chicken breast pieces", "seasoning"},
	},
	{
		Name:        "Chick-n-Strips (3-count)",
		PriceCents:  435,
		Ingredients: []string{"breaded chicken breast strips", "seasoned breading", "peanut oil"},
	},
	{
		Name:        "Chick-n-Strips (4-count)",
		PriceCents:  519,
		Ingredients: []string{"breaded chicken breast strips", "seasoned breading", "peanut oil"},
	},
	{
		Name:        "Chick-fil-A Cool Wrap",
		PriceCents:  675,
		Ingredients: []string{"flaxseed flour flatbread", "grilled chicken breast", "lettuce", "shredded Monterey Jack and Cheddar cheeses", "red cabbage", "carrots"},
		Modifiable:  []string{"lettuce", "shredded Monterey Jack and Cheddar cheeses", "red cabbage", "carrots"},
	},
	{
		Name:        "Grilled Cool Wrap",
		PriceCents:  679,
		Ingredients: []string{"flaxseed flour flatbread", "grilled chicken breast", "lettuce", "shredded Monterey Jack and Cheddar cheeses", "red cabbage", "carrots"},
		Modifiable:  []string{"lettuce", "shredded Monterey Jack and Cheddar cheeses", "red cabbage", "carrots"},
	},

	// Salads
	{
		Name:        "Cobb Salad",
		PriceCents:  819,
		Ingredients: []string{"mixed greens", "breaded chicken nuggets", "roasted corn", "Monterey Jack and Cheddar cheeses", "bacon", "hard-boiled egg", "grape tomatoes", "crispy red bell peppers"},
		Modifiable:  []string{"breaded chicken nuggets", "roasted corn", "Monterey Jack and Cheddar cheeses", "bacon", "hard-boiled egg", "grape tomatoes", "crispy red bell peppers"},
	},
	{
		Name:        "Spicy Southwest Salad",
		PriceCents:  819,
		Ingredients: []string{"mixed greens", "grilled spicy chicken breast", "Monterey Jack and Cheddar cheeses", "grape tomatoes", "roasted corn and black bean blend", "poblano chiles", "red bell peppers"},
		Modifiable:  []string{"grilled spicy chicken breast", "Monterey Jack and Cheddar cheeses", "grape tomatoes", "roasted corn and black bean blend", "poblano chiles", "red bell peppers"},
	},
	{
		Name:        "Market Salad",
		PriceCents:  819,
		Ingredients: []string{"mixed greens", "grilled chicken breast", "blue cheese", "red and green apples", "strawberries", "blueberries", "harvest nut granola", "roasted almonds"},
		Modifiable:  []string{"grilled chicken breast", "blue cheese", "red and green apples", "strawberries", "blueberries", "harvest nut granola", "roasted almonds"},
	},
	{
		Name:        "Side Salad",
		PriceCents:  409,
		Ingredients: []string{"mixed greens", "Monterey Jack and Cheddar cheeses", "grape tomatoes", "crispy red bell peppers"},
		Modifiable:  []string{"Monterey Jack and Cheddar cheeses", "grape tomatoes", "crispy red bell peppers"},
	},

	// Sides
	{Name: "Waffle Potato Fries (Small)", PriceCents: 189, Ingredients: []string{"potatoes", "canola oil", "sea salt"}},
	{Name: "Waffle Potato Fries (Medium)", PriceCents: 215, Ingredients: []string{"potatoes", "canola oil", "sea salt"}},
	{Name: "Waffle Potato Fries (Large)", PriceCents: 245, Ingredients: []string{"potatoes", "canola oil", "sea salt"}},
	{Name: "Mac & Cheese (Small)", PriceCents: 299, Ingredients: []string{"macaroni pasta", "cheddar cheese", "parmesan cheese", "romano cheese", "milk", "butter"}},
	{Name: "Mac & Cheese (Medium)", PriceCents: 355, Ingredients: []string{"macaroni pasta", "cheddar cheese", "parmesan cheese", "romano cheese", "milk", "butter"}},
	{Name: "Mac & Cheese (Large)", PriceCents: 525, Ingredients: []string{"macaroni pasta", "cheddar cheese", "parmesan cheese", "romano cheese", "milk", "butter"}},
	{
		Name:        "Fruit Cup (Small)",
		PriceCents:  285,
		Ingredients: []string{"red apples", "green apples", "mandarin orange segments", "strawberries", "blueberries"},
		Modifiable:  []string{"red apples", "green apples", "mandarin orange segments", "strawberries", "blueberries"},
	},
	{
		Name:        "Fruit Cup (Medium)",
		PriceCents:  325,
		Ingredients: []string{"red apples", "green apples", "mandarin orange segments", "strawberries", "blueberries"},
		Modifiable:  []string{"red apples", "green apples", "mandarin orange segments", "strawberries", "blueberries"},
	},
	{
		Name:        "Fruit Cup (Large)",
		PriceCents:  425,
		Ingredients: []string{"red apples", "green apples", "mandarin orange segments", "strawberries", "blueberries"},
		Modifiable:  []string{"red apples", "green apples", "mandarin orange segments", "strawberries", "blueberries"},
	},
	{
		Name:        "Chicken Noodle Soup (Small)",
		PriceCents:  265,
		Ingredients: []string{"shredded chicken breast", "egg noodles", "celery", "carrots", "broth"},
		Modifiable:  []string{"shredded chicken breast", "egg noodles", "celery", "carrots"},
	},
	{
		Name:        "Chicken Noodle Soup (Large)",
		PriceCents:  465,
		Ingredients: []string{"shredded chicken breast", "egg noodles", "celery", "carrots", "broth"},
		Modifiable:  []string{"shredded chicken breast", "egg noodles", "celery", "carrots"},
	},
	{
		Name:        "Greek Yogurt Parfait",
		PriceCents:  345,
		Ingredients: []string{"vanilla Greek yogurt", "strawberries", "blueberries", "harvest nut granola or chocolate cookie crumbs"},
		Modifiable:  []string{"strawberries", "blueberries", "harvest nut granola or chocolate cookie crumbs"},
	},
	{
		Name:        "Side of Kale Crunch",
		PriceCents:  185,
		Ingredients: []string{"kale", "green cabbage", "apple cider and Dijon mustard vinaigrette", "roasted almonds"},
		Modifiable:  []string{"kale", "green cabbage", "roasted almonds"},
	},
	{Name: "Waffle Potato Chips", PriceCents: 189, Ingredients: []string{"potatoes", "canola oil", "sea salt"}},

	// Beverages
	{Name: "Freshly-Brewed Iced Tea Sweetened (Small)", PriceCents: 165, Ingredients: []string{"brewed black tea", "cane sugar", "water", "ice"}},
	{Name: "Freshly-Brewed Iced Tea Sweetened (Medium)", PriceCents: 185, Ingredients: []string{"brewed black tea", "cane sugar", "water", "ice"}},
	{Name: "Freshly-Brewed Iced Tea Sweetened (Large)", PriceCents: 215, Ingredients: []string{"brewed black tea", "cane sugar", "water", "ice"}},
	{Name: "Freshly-Brewed Iced Tea Unsweetened (Small)", PriceCents: 165, Ingredients: []string{"brewed black tea", "water", "ice"}},
	{Name: "Freshly-Brewed Iced Tea Unsweetened (Medium)", PriceCents: 185, Ingredients: []string{"brewed black tea", "water", "ice"}},
	{Name: "Freshly-Brewed Iced Tea Unsweetened (Large)", PriceCents: 215, Ingredients: []string{"brewed black tea", "water", "ice"}},
	{Name: "Chick-fil-A Lemonade (Small)", PriceCents: 199, Ingredients: []string{"water", "lemon juice", "cane sugar", "ice"}},
	{Name: "Chick-fil-A Lemonade (Medium)", PriceCents: 229, Ingredients: []string{"water", "lemon juice", "cane sugar", "ice"}},
	{Name: "Chick-fil-A Lemonade (Large)", PriceCents: 269, Ingredients: []string{"water", "lemon juice", "cane sugar", "ice"}},
	{Name: "Chick-fil-A Diet Lemonade (Small)", PriceCents: 199, Ingredients: []string{"water", "lemon juice", "Splenda® No Calorie Sweetener", "ice"}},
	{Name: "Chick-fil-A Diet Lemonade (Medium)", PriceCents: 229, Ingredients: []string{"water", "lemon juice", "Splenda® No Calorie Sweetener", "ice"}},
	{Name: "Chick-fil-A Diet Lemonade (Large)", PriceCents: 269, Ingredients: []string{"water", "lemon juice", "Splenda® No Calorie Sweetener", "ice"}},
	{Name: "Soft Drink (Small)", PriceCents: 165, Ingredients: []string{"carbonated water", "sweetener", "natural flavors", "ice"}},
	{Name: "Soft Drink (Medium)", PriceCents: 185, Ingredients: []string{"carbonated water", "sweetener", "natural flavors", "ice"}},
	{Name: "Soft Drink (Large)", PriceCents: 215, Ingredients: []string{"carbonated water", "sweetener", "natural flavors", "ice"}},
	{Name: "1% Chocolate Milk", PriceCents: 129, Ingredients: []string{"low-fat milk", "sugar", "cocoa", "vitamins"}},
	{Name: "1% White Milk", PriceCents: 129, Ingredients: []string{"low-fat milk", "vitamins"}},
	{Name: "Simply Orange Juice", PriceCents: 225, Ingredients: []string{"100% orange juice"}},
	{Name: "Bottled Water", PriceCents: 179, Ingredients: []string{"purified water"}},
	{Name: "Coffee", PriceCents: 165, Ingredients: []string{"coffee", "water"}},
	{Name: "Iced Coffee (Small)", PriceCents: 269, Ingredients: []string{"coffee", "2% milk", "cane syrup", "ice"}},
	{Name: "Iced Coffee (Large)", PriceCents: 309, Ingredients: []string{"coffee", "2% milk", "cane syrup", "ice"}},
	{Name: "Sunjoy (Small)", PriceCents: 199, Ingredients: []string{"lemonade", "unsweetened iced tea", "ice"}},
	{Name: "Sunjoy (Medium)", PriceCents: 229, Ingredients: []string{"lemonade", "unsweetened iced tea", "ice"}},
	{Name: "Sunjoy (Large)", PriceCents: 269, Ingredients: []string{"lemonade", "unsweetened iced tea", "ice"}},

	// Treats
	{Name: "Frosted Lemonade (Small)", PriceCents: 385, Ingredients: []string{"Icedream®", "lemonade", "ice"}},
	{Name: "Frosted Lemonade (Large)", PriceCents: 445, Ingredients: []string{"Icedream®", "lemonade", "ice"}},
	{Name: "Frosted Coffee (Small)", PriceCents: 385, Ingredients: []string{"Icedream®", "cold-brewed coffee", "ice"}},
	{Name: "Frosted Coffee (Large)", PriceCents: 445, Ingredients: []string{"Icedream®", "cold-brewed coffee", "ice"}},
	{
		Name:        "Milkshake (Small)",
		PriceCents:  345,
		Ingredients: []string{"Icedream®", "milk", "flavor syrup", "whipped cream", "cherry"},
		Modifiable:  []string{"whipped cream", "cherry"},
	},
	{
		Name:        "Milkshake (Large)",
		PriceCents:  425,
		Ingredients: []string{"Icedream®", "milk", "flavor syrup", "whipped cream", "cherry"},
		Modifiable:  []string{"whipped cream", "cherry"},
	},
	{
		Name:        "Peppermint Chocolate Chip Milkshake (Small)",
		PriceCents:  365,
		Ingredients: []string{"Icedream®", "milk", "peppermint flavor", "chocolate chips", "whipped cream", "cherry"},
		Modifiable:  []string{"whipped cream", "cherry"},
	},
	{
		Name:        "Peppermint Chocolate Chip Milkshake (Large)",
		PriceCents:  445,
		Ingredients: []string{"Icedream®", "milk", "peppermint flavor", "chocolate chips", "whipped cream", "cherry"},
		Modifiable:  []string{"whipped cream", "cherry"},
	},
	{Name: "Chocolate Chunk Cookie", PriceCents: 129, Ingredients: []string{"flour", "sugar", "butter", "oats", "dark and milk chocolate chunks", "eggs"}},
	{Name: "Chocolate Chunk Cookie (6-count)", PriceCents: 729, Ingredients: []string{"flour", "sugar", "butter", "oats", "dark and milk chocolate chunks", "eggs"}},
	{Name: "Icedream Cone", PriceCents: 139, Ingredients: []string{"Icedream®", "waffle cone"}},
	{Name: "Icedream Cup", PriceCents: 125, Ingredients: []string{"Icedream®"}},
	{Name: "Chocolate Fudge Brownie", PriceCents: 189, Ingredients: []string{"cocoa", "semi-sweet chocolate", "butter", "sugar", "eggs", "flour"}},

	// Kid's Meals
	{Name: "Nuggets Kid's Meal (4-count)", PriceCents: 335, Ingredients: []string{"bite-sized breaded chicken breast pieces", "seasoned breading", "peanut oil"}},
	{Name: "Nuggets Kid's Meal (6-count)", PriceCents: 405, Ingredients: []string{"bite-sized breaded chicken breast pieces", "seasoned breading", "peanut oil"}},
	{Name: "Grilled Nuggets Kid's Meal (4-count)", PriceCents: 375, Ingredients: []string{"bite-sized grilled chicken breast pieces", "seasoning"}},
	{Name: "Grilled Nuggets Kid's Meal (6-count)", PriceCents: 445, Ingredients: []string{"bite-sized grilled chicken breast pieces", "seasoning"}},
	{Name: "Chick-n-Strips Kid's Meal (1-count)", PriceCents: 325, Ingredients: []string{"breaded chicken breast strips", "seasoned breading", "peanut oil"}},
	{Name: "Chick-n-Strips Kid's Meal (2-count)", PriceCents: 395, Ingredients: []string{"breaded chicken breast strips", "seasoned breading", "peanut oil"}},

	// Breakfast
	{Name: "Chick-fil-A Chicken Biscuit", PriceCents: 309, Ingredients: []string{"buttermilk biscuit", "breaded chicken breast", "butter"}},
	{Name: "Spicy Chicken Biscuit", PriceCents: 329, Ingredients: []string{"buttermilk biscuit", "spicy breaded chicken breast", "butter"}},
	{Name: "Chick-n-Minis (4-count)", PriceCents: 449, Ingredients: []string{"mini yeast rolls", "breaded chicken nuggets", "honey butter spread"}},
	{
		Name:        "Egg White Grill",
		PriceCents:  435,
		Ingredients: []string{"multigrain English muffin", "grilled chicken breast", "egg whites", "American cheese"},
		Modifiable:  []string{"grilled chicken breast", "egg whites", "American cheese"},
	},
	{
		Name:        "Hash Brown Scramble Burrito",
		PriceCents:  375,
		Ingredients: []string{"tortilla", "scrambled eggs", "hash browns", "Monterey Jack and Cheddar cheeses", "nuggets or sausage"},
		Modifiable:  []string{"scrambled eggs", "hash browns", "Monterey Jack and Cheddar cheeses", "nuggets or sausage"},
	},
	{
		Name:        "Hash Brown Scramble Bowl",
		PriceCents:  465,
		Ingredients: []string{"scrambled eggs", "hash browns", "Monterey Jack and Cheddar cheeses", "nuggets or sausage"},
		Modifiable:  []string{"scrambled eggs", "hash browns", "Monterey Jack and Cheddar cheeses", "nuggets or sausage"},
	},
	{Name: "Sausage Biscuit", PriceCents: 219, Ingredients: []string{"buttermilk biscuit", "sausage patty", "butter"}},
	{
		Name:        "Bacon, Egg & Cheese Biscuit",
		PriceCents:  359,
		Ingredients: []string{"buttermilk biscuit", "bacon", "scrambled egg", "American cheese", "butter"},
		Modifiable:  []string{"bacon", "scrambled egg", "American cheese"},
	},
	{
		Name:        "Sausage, Egg & Cheese Biscuit",
		PriceCents:  379,
		Ingredients: []string{"buttermilk biscuit", "sausage patty", "scrambled egg", "American cheese", "butter"},
		Modifiable:  []string{"sausage patty", "scrambled egg", "American cheese"},
	},
	{
		Name:        "Chicken, Egg & Cheese Bagel",
		PriceCents:  479,
		Ingredients: []string{"toasted sunflower multigrain bagel", "breaded chicken breast", "folded egg", "American cheese"},
		Modifiable:  []string{"folded egg", "American cheese"},
	},
	{Name: "Hash Browns", PriceCents: 109, Ingredients: []string{"potatoes", "canola oil", "sea salt"}},
	{
		Name:        "Greek Yogurt Parfait (Breakfast)",
		PriceCents:  345,
		Ingredients: []string{"vanilla Greek yogurt", "strawberries", "blueberries", "harvest nut granola or chocolate cookie crumbs"},
		Modifiable:  []string{"strawberries", "blueberries", "harvest nut granola or chocolate cookie crumbs"},
	},
	{
		Name:        "Fruit Cup (Breakfast, Small)",
		PriceCents:  285,
		Ingredients: []string{"red apples", "green apples", "mandarin orange segments", "strawberries", "blueberries"},
		Modifiable:  []string{"red apples", "green apples", "mandarin orange segments", "strawberries", "blueberries"},
	},

	// Sauces
	{Name: "Chick-fil-A Sauce", PriceCents: 0, Ingredients: []string{"soybean oil", "sugar", "BBQ sauce", "mustard", "egg yolk", "vinegar", "lemon juice"}},
	{Name: "Polynesian Sauce", PriceCents: 0, Ingredients: []string{"sugar", "soybean oil", "corn syrup", "tomato paste", "vinegar"}},
	{Name: "Garden Herb Ranch Sauce", PriceCents: 0, Ingredients: []string{"soybean oil", "buttermilk", "egg yolk", "vinegar", "herbs"}},
	{Name: "Zesty Buffalo Sauce", PriceCents: 0, Ingredients: []string{"distilled vinegar", "cayenne red pepper", "salt", "garlic"}},
	{Name: "Honey Mustard Sauce", PriceCents: 0, Ingredients: []string{"honey", "mustard", "vinegar", "soybean oil", "spices"}},
	{Name: "Barbeque Sauce", PriceCents: 0, Ingredients: []string{"tomato paste", "vinegar", "corn syrup", "molasses", "spices"}},
	{Name: "Sweet and Spicy Sriracha Sauce", PriceCents: 0, Ingredients: []string{"sugar", "water", "red chili peppers", "vinegar", "garlic"}},
	{Name: "Honey Roasted BBQ Sauce", PriceCents: 0, Ingredients: []string{"soybean oil", "honey", "BBQ sauce", "mustard", "vinegar"}},

	// Dressings
	{Name: "Avocado Lime Ranch Dressing", PriceCents: 0, Ingredients: []string{"soybean oil", "buttermilk", "avocado", "lime juice", "herbs"}},
	{Name: "Fat-Free Honey Mustard Dressing", PriceCents: 0, Ingredients: []string{"water", "honey", "mustard", "vinegar", "spices"}},
	{Name: "Garden Herb Ranch Dressing", PriceCents: 0, Ingredients: []string{"soybean oil", "buttermilk", "egg yolk", "vinegar", "herbs"}},
	{Name: "Light Balsamic Vinaigrette Dressing", PriceCents: 0, Ingredients: []string{"water", "balsamic vinegar", "olive oil", "spices"}},
	{Name: "Light Italian Dressing", PriceCents: 0, Ingredients: []string{"water", "vinegar", "olive oil", "lemon juice", "spices"}},
	{Name: "Zesty Apple Cider Vinaigrette Dressing", PriceCents: 0, Ingredients: []string{"apple cider vinegar", "olive oil", "orange juice", "spices"}},
}

// aliasTable maps informal phrases to the catalog name (or family base) they
// stand for. Lookup is case-insensitive; substring matching against catalog
// keys runs only after these fail.
var aliasTable = map[string]string{
	"waffle fries":    "Waffle Potato Fries",
	"fries":           "Waffle Potato Fries",
	"chips":           "Waffle Potato Chips",
	"drink":           "Soft Drink",
	"soda":            "Soft Drink",
	"pop":             "Soft Drink",
	"beverage":        "Soft Drink",
	"coke":            "Soft Drink",
	"diet coke":       "Soft Drink",
	"sprite":          "Soft Drink",
	"dr pepper":       "Soft Drink",
	"spicy":           "Spicy Chicken Sandwich",
	"spicy sandwich":  "Spicy Chicken Sandwich",
	"sandwich":        "Chicken Sandwich",
	"club":            "Grilled Chicken Club Sandwich",
	"salad":           "Cobb Salad",
	"cobb":            "Cobb Salad",
	"southwest salad": "Spicy Southwest Salad",
	"shake":           "Milkshake",
	"lemonade":        "Chick-fil-A Lemonade",
	"diet lemonade":   "Chick-fil-A Diet Lemonade",
	"tea":             "Freshly-Brewed Iced Tea Sweetened",
	"iced tea":        "Freshly-Brewed Iced Tea Sweetened",
	"sweet tea":       "Freshly-Brewed Iced Tea Sweetened",
	"unsweet tea":     "Freshly-Brewed Iced Tea Unsweetened",
	"unsweetened tea": "Freshly-Brewed Iced Tea Unsweetened",
	"water":           "Bottled Water",
	"oj":              "Simply Orange Juice",
	"orange juice":    "Simply Orange Juice",
	"chocolate milk":  "1% Chocolate Milk",
	"milk":            "1% White Milk",
	"mac and cheese":  "Mac & Cheese",
	"soup":            "Chicken Noodle Soup",
	"wrap":            "Chick-fil-A Cool Wrap",
	"cool wrap":       "Chick-fil-A Cool Wrap",
	"parfait":         "Greek Yogurt Parfait",
	"kale crunch":     "Side of Kale Crunch",
	"brownie":         "Chocolate Fudge Brownie",
	"cone":            "Icedream Cone",
	"icedream":        "Icedream Cup",
	"biscuit":         "Chick-fil-A Chicken Biscuit",
	"minis":           "Chick-n-Minis",
	"burrito":         "Hash Brown Scramble Burrito",
}

// sizeFamilies maps every spoken form of a size-required base to the
// canonical base whose "(Small|Medium|Large)" variants live in the catalog.
var sizeFamilies = map[string]string{
	"waffle potato fries":                 "Waffle Potato Fries",
	"mac & cheese":                        "Mac & Cheese",
	"fruit cup":                           "Fruit Cup",
	"chicken noodle soup":                 "Chicken Noodle Soup",
	"freshly-brewed iced tea sweetened":   "Freshly-Brewed Iced Tea Sweetened",
	"freshly-brewed iced tea unsweetened": "Freshly-Brewed Iced Tea Unsweetened",
	"chick-fil-a lemonade":                "Chick-fil-A Lemonade",
	"chick-fil-a diet lemonade":           "Chick-fil-A Diet Lemonade",
	"soft drink":                          "Soft Drink",
	"iced coffee":                         "Iced Coffee",
	"sunjoy":                              "Sunjoy",
	"frosted lemonade":                    "Frosted Lemonade",
	"frosted coffee":                      "Frosted Coffee",
	"milkshake":                           "Milkshake",
	"peppermint milkshake":                "Peppermint Chocolate Chip Milkshake",
	"peppermint chocolate chip milkshake": "Peppermint Chocolate Chip Milkshake",
}

// countFamilies maps spoken forms of count-qualified items to the canonical
// base whose "(<N>-count)" variants live in the catalog. Bases that also
// exist as standalone items (the single cookie) resolve directly when no
// count is given.
var countFamilies = map[string]string{
	"nuggets":                "Nuggets",
	"nugget":                 "Nuggets",
	"chicken nuggets":        "Nuggets",
	"grilled nuggets":        "Grilled Nuggets",
	"strips":                 "Chick-n-Strips",
	"chicken strips":         "Chick-n-Strips",
	"tenders":                "Chick-n-Strips",
	"chick-n-strips":         "Chick-n-Strips",
	"cookie":                 "Chocolate Chunk Cookie",
	"cookies":                "Chocolate Chunk Cookie",
	"chocolate chunk cookie": "Chocolate Chunk Cookie",
	"chick-n-minis":          "Chick-n-Minis",
}
