package catalog

var allYear = []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

// Foods is the raw-ingredient table. Months are 0-based (January = 0).
var Foods = []FoodItem{
	{ID: "p1", Name: "Petto di Pollo", Category: FoodProtein, Months: allYear,
		Benefits: []string{"high-protein", "leucine"}, Unit: "g", DefaultQty: 200, Section: "Macelleria"},
	{ID: "p2", Name: "Salmone Selvaggio", Category: FoodProtein, Months: allYear,
		Benefits: []string{"omega-3", "anti-inflammatory"}, Unit: "g", DefaultQty: 150, Section: "Pescheria"},
	{ID: "p3", Name: "Uova Bio", Category: FoodProtein, Months: allYear,
		Benefits: []string{"choline", "healthy-fats"}, Unit: "pz", DefaultQty: 2, Section: "Uova & Latticini"},
	{ID: "p4", Name: "Merluzzo", Category: FoodProtein, Months: []int{0, 1, 2, 9, 10, 11},
		Benefits: []string{"low-fat", "iodine"}, Unit: "g", DefaultQty: 200, Section: "Pescheria"},
	{ID: "p5", Name: "Tacchino", Category: FoodProtein, Months: allYear,
		Benefits: []string{"lean-protein"}, Unit: "g", DefaultQty: 180, Section: "Macelleria"},

	{ID: "v1", Name: "Broccoli", Category: FoodVeg, Months: []int{0, 1, 2, 3, 9, 10, 11},
		Benefits: []string{"anti-estrogen", "indole-3-carbinol", "fiber"}, Unit: "g", DefaultQty: 200, Section: "Ortofrutta"},
	{ID: "v2", Name: "Spinaci", Category: FoodVeg, Months: []int{0, 1, 2, 3, 4, 9, 10, 11},
		Benefits: []string{"iron", "magnesium"}, Unit: "g", DefaultQty: 150, Section: "Ortofrutta"},
	{ID: "v3", Name: "Asparagi", Category: FoodVeg, Months: []int{2, 3, 4, 5},
		Benefits: []string{"diuretic", "fiber"}, Unit: "mazzo", DefaultQty: 1, Section: "Ortofrutta"},
	{ID: "v4", Name: "Zucchine", Category: FoodVeg, Months: []int{5, 6, 7, 8},
		Benefits: []string{"low-cal", "potassium"}, Unit: "g", DefaultQty: 200, Section: "Ortofrutta"},
	{ID: "v5", Name: "Cavolfiore", Category: FoodVeg, Months: []int{0, 1, 2, 9, 10, 11},
		Benefits: []string{"anti-estrogen", "fiber"}, Unit: "g", DefaultQty: 200, Section: "Ortofrutta"},
	{ID: "v6", Name: "Finocchi", Category: FoodVeg, Months: []int{0, 1, 2, 3, 9, 10, 11},
		Benefits: []string{"digestive", "diuretic"}, Unit: "pz", DefaultQty: 1, Section: "Ortofrutta"},

	{ID: "c1", Name: "Avena", Category: FoodCarb, Months: allYear,
		Benefits: []string{"beta-glucan", "satiety"}, Unit: "g", DefaultQty: 60, Section: "Cereali & Colazione"},
	{ID: "c2", Name: "Quinoa", Category: FoodCarb, Months: allYear,
		Benefits: []string{"complete-protein", "fiber"}, Unit: "g", DefaultQty: 70, Section: "Pasta & Riso"},
	{ID: "c3", Name: "Riso Basmati/Venere", Category: FoodCarb, Months: allYear,
		Benefits: []string{"digestible"}, Unit: "g", DefaultQty: 80, Section: "Pasta & Riso"},
	{ID: "c4", Name: "Patate Dolci", Category: FoodCarb, Months: []int{8, 9, 10, 11, 0, 1},
		Benefits: []string{"vitamin-a", "fiber"}, Unit: "g", DefaultQty: 200, Section: "Ortofrutta"},

	{ID: "f1", Name: "Olio EVO", Category: FoodFat, Months: allYear,
		Benefits: []string{"healthy-fats"}, Unit: "ml", DefaultQty: 15, Section: "Condimenti"},
	{ID: "f2", Name: "Avocado", Category: FoodFat, Months: []int{0, 1, 2, 3, 10, 11},
		Benefits: []string{"potassium", "fiber"}, Unit: "frutto", DefaultQty: 0.5, Section: "Ortofrutta"},
	{ID: "f3", Name: "Noci/Mandorle", Category: FoodFat, Months: []int{8, 9, 10, 11, 0, 1},
		Benefits: []string{"omega-3", "zinc"}, Unit: "g", DefaultQty: 30, Section: "Frutta Secca"},
	{ID: "f4", Name: "Semi di Zucca", Category: FoodFat, Months: allYear,
		Benefits: []string{"zinc", "prostate-health", "testosterone-support"}, Unit: "g", DefaultQty: 20, Section: "Frutta Secca"},

	{ID: "fr1", Name: "Frutti di Bosco", Category: FoodFruit, Months: []int{5, 6, 7, 8},
		Benefits: []string{"antioxidant", "low-sugar"}, Unit: "g", DefaultQty: 100, Section: "Ortofrutta"},
	{ID: "fr2", Name: "Mele", Category: FoodFruit, Months: []int{8, 9, 10, 11, 0, 1, 2},
		Benefits: []string{"fiber", "pectin"}, Unit: "pz", DefaultQty: 1, Section: "Ortofrutta"},
	{ID: "fr3", Name: "Arance/Agrumi", Category: FoodFruit, Months: []int{10, 11, 0, 1, 2, 3},
		Benefits: []string{"vitamin-c"}, Unit: "pz", DefaultQty: 1, Section: "Ortofrutta"},
	{ID: "fr4", Name: "Kiwi", Category: FoodFruit, Months: []int{10, 11, 0, 1, 2, 3, 4},
		Benefits: []string{"vitamin-c", "fiber"}, Unit: "pz", DefaultQty: 2, Section: "Ortofrutta"},
}
