package catalog

// Recipes is the bundled recipe table. Ingredient quantities are per person;
// SearchQuery links an ingredient to an external recipe-lookup page.
var Recipes = []Recipe{
	{
		ID:          "bi1",
		Title:       "Pancake Proteico Bimby",
		Description: "Pancake soffici e proteici preparati in un attimo con il Bimby. Perfetti per una colazione fit.",
		Category:    "Quick",
		Device:      "Bimby TM5",
		Brand:       "bimby",
		PrepMinutes: 10,
		MealTypes:   []MealType{MealBreakfast},
		Ingredients: []Ingredient{
			{Name: "Albumi", Qty: 200, Unit: "ml", Category: "Latticini"},
			{Name: "Farina d'avena", Qty: 80, Unit: "g", Category: "Cereali"},
			{Name: "Yogurt Greco 0%", Qty: 50, Unit: "g", Category: "Latticini"},
			{Name: "Lievito per dolci", Qty: 0.5, Unit: "bustina", Category: "Dispensa"},
		},
		Steps: []string{
			"Inserire nel boccale tutti gli ingredienti: albumi, farina d'avena, yogurt greco e lievito.",
			"Frullare 30 sec. vel. 5.",
			"Raccogliere sul fondo con la spatola e frullare ancora 10 sec. vel. 5.",
			"Scaldare una padella antiaderente e cuocere i pancake 2 minuti per lato finché dorati.",
		},
		Macros:  Macros{Cal: 450, Protein: 35, Carb: 60, Fat: 5},
		Tags:    []string{"High-Protein", "Breakfast", "Bimby"},
		Seasons: []Season{SeasonAll},
	},
	{
		ID:          "bi2",
		Title:       "Vellutata Detox di Verdure",
		Description: "Un classico Bimby: vellutata leggera e depurativa, ideale per cene invernali o post-abbuffata.",
		Category:    "Detox",
		Device:      "Bimby TM5",
		Brand:       "bimby",
		PrepMinutes: 30,
		MealTypes:   []MealType{MealDinner},
		Ingredients: []Ingredient{
			{Name: "Verdure Miste (Zucchine, Carote, Sedano)", Qty: 400, Unit: "g", Category: "Verdura"},
			{Name: "Cipolla", Qty: 1, Unit: "pz", Category: "Verdura"},
			{Name: "Olio EVO", Qty: 10, Unit: "g", Category: "Dispensa"},
			{Name: "Acqua", Qty: 400, Unit: "ml", Category: "Bevande"},
		},
		Steps: []string{
			"Mettere nel boccale le verdure a pezzi e la cipolla: tritare 5 sec. vel. 5.",
			"Aggiungere l'olio e insaporire: 3 min. 100° vel. 1.",
			"Aggiungere l'acqua e un pizzico di sale (o dado vegetale bimby): cuocere 20 min. 100° vel. 1.",
			"A cottura ultimata, attendere qualche istante e omogeneizzare: 1 min. vel. progressiva 5-10.",
			"Servire calda con un filo d'olio a crudo.",
		},
		Macros:  Macros{Cal: 250, Protein: 5, Carb: 30, Fat: 12},
		Tags:    []string{"Detox", "Vegan", "Dinner", "Bimby"},
		Seasons: []Season{SeasonWinter, SeasonAutumn},
	},
	{
		ID:          "bi3",
		Title:       "Hummus di Ceci Light",
		Description: "Crema di ceci speziata e gustosa, pronta in pochi secondi. Ottima fonte di proteine vegetali.",
		Category:    "Nourish",
		Device:      "Bimby TM5",
		Brand:       "bimby",
		PrepMinutes: 5,
		MealTypes:   []MealType{MealSnack, MealDinner},
		Ingredients: []Ingredient{
			{Name: "Ceci precotti (scolati)", Qty: 250, Unit: "g", Category: "Dispensa"},
			{Name: "Tahina (pasta di sesamo)", Qty: 30, Unit: "g", Category: "Dispensa"},
			{Name: "Succo di Limone", Qty: 0.5, Unit: "pz", Category: "Ortofrutta"},
			{Name: "Aglio", Qty: 0.5, Unit: "spicchio", Category: "Verdura"},
			{Name: "Olio EVO", Qty: 10, Unit: "g", Category: "Dispensa"},
			{Name: "Cumino", Qty: 1, Unit: "pizzico", Category: "Spezie"},
		},
		Steps: []string{
			"Inserire nel boccale l'aglio e tritare: 3 sec. vel. 7.",
			"Aggiungere ceci, tahina, succo di limone, olio, cumino e un pizzico di sale.",
			"Frullare 30 sec. vel. 5.",
			"Se necessario, aggiungere un cucchiaio di acqua ghiacciata per rendere più cremoso e frullare altri 20 sec. vel. 5-7.",
			"Servire con verdure crude o pane integrale.",
		},
		Macros:  Macros{Cal: 380, Protein: 15, Carb: 35, Fat: 20},
		Tags:    []string{"Vegan", "High-Protein", "Snack", "Bimby"},
		Seasons: []Season{SeasonAll},
	},
	{
		ID:          "nc1",
		Title:       "Oreo Protein Blast",
		Description: "Gelato proteico gusto Cookies & Cream, cremoso e con 40g+ di proteine. Perfetto post-workout o come dessert serale.",
		Category:    "Dessert Fit",
		Device:      "Ninja Creami",
		Brand:       "ninja",
		PrepMinutes: 5,
		MealTypes:   []MealType{MealSnack},
		Ingredients: []Ingredient{
			{Name: "Latte Proteico (es. Fairlife/Carb Killa)", Qty: 400, Unit: "ml", Category: "Latticini"},
			{Name: "Proteine in polvere (Vaniglia/Cookies)", Qty: 30, Unit: "g", Category: "Integratori"},
			{Name: "Budino istantaneo senza zucchero (Vaniglia)", Qty: 10, Unit: "g", Category: "Dolci"},
			{Name: "Oreo (o simili)", Qty: 2, Unit: "biscotti", Category: "Dolci"},
		},
		Steps: []string{
			"Mescolare latte, proteine e budino in polvere nel barattolo Creami.",
			"Congelare per 24 ore.",
			"Processare con funzione \"Lite Ice Cream\".",
			"Se farinoso, aggiungere un goccio di latte e fare \"Re-Spin\".",
			"Creare un buco al centro, aggiungere i biscotti sbriciolati e usare funzione \"Mix-In\".",
		},
		Macros:  Macros{Cal: 350, Protein: 45, Carb: 25, Fat: 8},
		Tags:    []string{"High-Protein", "Post-Workout", "Sweet-Tooth"},
		Seasons: []Season{SeasonAll},
	},
	{
		ID:          "nc2",
		Title:       "Strawberry Cheesecake Fit",
		Description: "Gelato ricco di proteine grazie ai fiocchi di latte (Cottage Cheese), gusto cheesecake alla fragola.",
		Category:    "Dessert Fit",
		Device:      "Ninja Creami",
		PrepMinutes: 5,
		MealTypes:   []MealType{MealSnack, MealBreakfast},
		Ingredients: []Ingredient{
			{Name: "Fiocchi di Latte (Cottage Cheese)", Qty: 200, Unit: "g", Category: "Latticini"},
			{Name: "Fragole congelate", Qty: 150, Unit: "g", Category: "Frutta"},
			{Name: "Miele o Dolcificante", Qty: 1, Unit: "tbsp", Category: "Condimenti"},
			{Name: "Latte di Mandorla", Qty: 50, Unit: "ml", Category: "Latticini"},
		},
		Steps: []string{
			"Frullare fiocchi di latte, dolcificante e fragole finché liscio.",
			"Versare nel barattolo Creami e congelare per 24 ore.",
			"Processare con funzione \"Lite Ice Cream\".",
			"Opzionale: aggiungere biscotti integrali sbriciolati come Mix-In.",
		},
		Macros:  Macros{Cal: 280, Protein: 25, Carb: 30, Fat: 6},
		Tags:    []string{"High-Protein", "Cheesecake", "Fruit"},
		Seasons: []Season{SeasonSpring, SeasonSummer},
	},
	{
		ID:          "nc3",
		Title:       "Mango Lime Sorbet",
		Description: "Sorbetto rinfrescante e leggerissimo, solo frutta e zero grassi.",
		Category:    "Dessert Fit",
		Device:      "Ninja Creami",
		PrepMinutes: 5,
		MealTypes:   []MealType{MealSnack},
		Ingredients: []Ingredient{
			{Name: "Mango (fresco o in scatola al naturale)", Qty: 300, Unit: "g", Category: "Frutta"},
			{Name: "Succo di Lime", Qty: 1, Unit: "lime", Category: "Frutta"},
			{Name: "Acqua di Cocco (o acqua)", Qty: 50, Unit: "ml", Category: "Bevande"},
		},
		Steps: []string{
			"Frullare il mango con il lime e l'acqua.",
			"Versare nel barattolo Creami e congelare per 24 ore.",
			"Processare con funzione \"Sorbet\".",
		},
		Macros:  Macros{Cal: 180, Protein: 2, Carb: 45, Fat: 0},
		Tags:    []string{"Vegan", "Low-Fat", "Refreshing"},
		Seasons: []Season{SeasonSummer},
	},
	{
		ID:          "ne1",
		Title:       "Ultimate Green Detox",
		Description: "Il succo verde definitivo per depurare e sgonfiare. Ricco di antiossidanti e povero di zuccheri.",
		Category:    "Detox",
		Device:      "Ninja Estrattore",
		Brand:       "ninja",
		PrepMinutes: 5,
		MealTypes:   []MealType{MealBreakfast, MealSnack},
		Ingredients: []Ingredient{
			{Name: "Spinaci freschi", Qty: 50, Unit: "g", Category: "Verdura"},
			{Name: "Mela Verde", Qty: 1, Unit: "pz", Category: "Frutta"},
			{Name: "Cetriolo", Qty: 0.5, Unit: "pz", Category: "Verdura"},
			{Name: "Sedano", Qty: 1, Unit: "gambo", Category: "Verdura"},
			{Name: "Limone (pelato)", Qty: 0.5, Unit: "pz", Category: "Frutta"},
			{Name: "Zenzero fresco", Qty: 2, Unit: "cm", Category: "Verdura"},
		},
		Steps: []string{
			"Lavare bene tutti gli ingredienti.",
			"Tagliare la mela e il cetriolo a pezzi adatti all'imbocco.",
			"Inserire nell'estrattore alternando foglie e pezzi duri.",
			"Bere immediatamente per massimizzare le vitamine.",
		},
		Macros:  Macros{Cal: 120, Protein: 3, Carb: 25, Fat: 0},
		Tags:    []string{"Detox", "Vegan", "Immunity"},
		Seasons: []Season{SeasonAll},
	},
	{
		ID:          "ne2",
		Title:       "Metabolic Fire Shot",
		Description: "Un estratto potente per attivare il metabolismo e la termogenesi. Gusto intenso e speziato.",
		Category:    "Extract",
		Device:      "Ninja Estrattore",
		PrepMinutes: 5,
		MealTypes:   []MealType{MealBreakfast},
		Ingredients: []Ingredient{
			{Name: "Carote", Qty: 2, Unit: "pz", Category: "Verdura"},
			{Name: "Arancia (pelata)", Qty: 1, Unit: "pz", Category: "Frutta"},
			{Name: "Curcuma fresca", Qty: 2, Unit: "cm", Category: "Verdura"},
			{Name: "Pepe nero", Qty: 1, Unit: "pizzico", Category: "Condimenti"},
			{Name: "Limone", Qty: 0.5, Unit: "pz", Category: "Frutta"},
		},
		Steps: []string{
			"Inserire carote, arancia, curcuma e limone nell'estrattore.",
			"Aggiungere un pizzico di pepe nero al succo finale (aumenta l'assorbimento della curcumina).",
		},
		Macros:  Macros{Cal: 90, Protein: 2, Carb: 20, Fat: 0},
		Tags:    []string{"Fat-Burner", "Anti-Inflammatory", "Morning-Kick"},
		Seasons: []Season{SeasonWinter, SeasonAutumn},
	},
	{
		ID:          "ne3",
		Title:       "PB&J Power Smoothie",
		Description: "Un frullato completo che sa di pane, burro di arachidi e marmellata. Ottimo per massa pulita.",
		Category:    "Nourish",
		Device:      "Ninja Estrattore",
		PrepMinutes: 3,
		MealTypes:   []MealType{MealBreakfast, MealSnack},
		Ingredients: []Ingredient{
			{Name: "Latte (o bevanda vegetale)", Qty: 250, Unit: "ml", Category: "Bevande"},
			{Name: "Frutti di bosco congelati", Qty: 100, Unit: "g", Category: "Frutta"},
			{Name: "Burro di Arachidi", Qty: 1, Unit: "tbsp", Category: "Condimenti"},
			{Name: "Avena istantanea", Qty: 30, Unit: "g", Category: "Cereali"},
			{Name: "Proteine Vaniglia", Qty: 30, Unit: "g", Category: "Integratori"},
		},
		Steps: []string{
			"Inserire tutti gli ingredienti nel bicchiere del frullatore Ninja.",
			"Frullare con funzione \"Smoothie\" o \"Blend\" per 45-60 secondi.",
			"Servire freddo.",
		},
		Macros:  Macros{Cal: 450, Protein: 35, Carb: 40, Fat: 15},
		Tags:    []string{"Bulking", "Tasty", "Breakfast"},
		Seasons: []Season{SeasonAll},
	},
	{
		ID:          "h1",
		Title:       "Broccoli & Beef \"Testo-Booster\"",
		Description: "Pasto strategico: i broccoli contengono Indolo-3-Carbinolo che aiuta a eliminare gli estrogeni, il manzo fornisce zinco e grassi saturi per il testosterone.",
		Category:    "Athlete",
		Device:      "Padella",
		PrepMinutes: 15,
		MealTypes:   []MealType{MealLunch, MealDinner},
		Ingredients: []Ingredient{
			{Name: "Macinato Magro Manzo", Qty: 200, Unit: "g", Category: "Carne"},
			{Name: "Broccoli", Qty: 200, Unit: "g", Category: "Verdura"},
			{Name: "Aglio", Qty: 1, Unit: "spicchio", Category: "Verdura"},
			{Name: "Olio EVO", Qty: 10, Unit: "g", Category: "Condimenti"},
		},
		Steps: []string{
			"Sbollentare i broccoli per 3-4 minuti.",
			"Rosolare il manzo in padella con aglio finché ben cotto.",
			"Unire i broccoli e saltare per altri 2 minuti.",
			"Condire a crudo con olio EVO.",
		},
		Macros:  Macros{Cal: 550, Protein: 45, Carb: 10, Fat: 35},
		Tags:    []string{"Anti-Estrogen", "High-Protein", "Keto-Friendly"},
		Seasons: []Season{SeasonAll},
	},
	{
		ID:          "b1",
		Title:       "Colazione del Campione (CR7 Style)",
		Description: "La classica colazione salata ad alto valore biologico usata dagli atleti d'élite.",
		Category:    "Athlete",
		Device:      "Padella",
		PrepMinutes: 10,
		MealTypes:   []MealType{MealBreakfast},
		Ingredients: []Ingredient{
			{Name: "Uova Bio", Qty: 2, Unit: "pz", Category: "Uova & Latticini"},
			{Name: "Albume", Qty: 100, Unit: "ml", Category: "Uova & Latticini"},
			{Name: "Avocado", Qty: 50, Unit: "g", Category: "Ortofrutta"},
			{Name: "Pane di Segale", Qty: 50, Unit: "g", Category: "Panetteria"},
		},
		Steps: []string{
			"Scaldare una padella antiaderente senza grassi aggiunti.",
			"Versare gli albumi e cuocere per 2 minuti finché bianchi.",
			"Aggiungere le uova intere al centro e cuocere all'occhio di bue (o strapazzate se preferisci).",
			"Tostare il pane di segale e spalmare l'avocado schiacciato con un pizzico di sale e limone.",
			"Servire le uova sopra il pane.",
		},
		Macros:  Macros{Cal: 420, Protein: 28, Carb: 25, Fat: 22},
		Tags:    []string{"High-Protein", "Testosterone-Support"},
		Seasons: []Season{SeasonAll},
	},
	{
		ID:          "b2",
		Title:       "Porridge \"Michelin\" alla Cannella",
		Description: "Avena cotta come un risotto per una cremosità superiore, senza zuccheri.",
		Category:    "Michelin",
		Device:      "Padella",
		PrepMinutes: 15,
		MealTypes:   []MealType{MealBreakfast},
		Ingredients: []Ingredient{
			{Name: "Fiocchi d'Avena", Qty: 60, Unit: "g", Category: "Cereali"},
			{Name: "Latte di Mandorla (0 zuccheri)", Qty: 200, Unit: "ml", Category: "Bevande"},
			{Name: "Proteine in polvere (Vaniglia)", Qty: 30, Unit: "g", Category: "Integratori"},
			{Name: "Frutti di Bosco", Qty: 100, Unit: "g", Category: "Ortofrutta"},
			{Name: "Cannella", Qty: 1, Unit: "pizzico", Category: "Spezie"},
		},
		Steps: []string{
			"Tostare l'avena a secco in un pentolino per 2 minuti per sprigionare l'aroma (tecnica risottata).",
			"Aggiungere il latte di mandorla poco alla volta, mescolando continuamente.",
			"A fuoco spento, mantecare con le proteine in polvere sciolte in un goccio d'acqua.",
			"Impiattare decorando con frutti di bosco freschi e una spolverata di cannella.",
		},
		Macros:  Macros{Cal: 380, Protein: 32, Carb: 45, Fat: 8},
		Tags:    []string{"Gourmet", "Fibre"},
		Seasons: []Season{SeasonWinter, SeasonAutumn, SeasonSpring},
	},
	{
		ID:          "l1",
		Title:       "Risotto di Quinoa e Zafferano",
		Description: "Un \"finto\" risotto iper-proteico e a basso indice glicemico.",
		Category:    "Quick",
		Device:      "Bimby TM5",
		PrepMinutes: 25,
		MealTypes:   []MealType{MealLunch},
		Ingredients: []Ingredient{
			{Name: "Quinoa", Qty: 80, Unit: "g", Category: "Cereali"},
			{Name: "Zucchine", Qty: 150, Unit: "g", Category: "Ortofrutta"},
			{Name: "Gamberetti", Qty: 150, Unit: "g", Category: "Pescheria"},
			{Name: "Zafferano", Qty: 1, Unit: "bustina", Category: "Spezie"},
			{Name: "Brodo Vegetale", Qty: 300, Unit: "ml", Category: "Dispensa"},
		},
		Steps: []string{
			"Inserire nel boccale le zucchine: 5 sec, vel 4. Mettere da parte.",
			"Inserire 500g acqua nel boccale, posizionare cestello con quinoa: 15 min, Varoma, vel 1.",
			"Nel Varoma cuocere i gamberetti contemporaneamente.",
			"Svuotare il boccale, unire quinoa, gamberi, zucchine e zafferano sciolto in poca acqua calda.",
			"Mantecare 2 min, 100°, antiorario, vel soft.",
		},
		Macros:  Macros{Cal: 450, Protein: 35, Carb: 55, Fat: 10},
		Tags:    []string{"Low-GI", "Bimby"},
		Seasons: []Season{SeasonSpring, SeasonSummer},
	},
	{
		ID:          "l2",
		Title:       "Pollo \"Sous-Vide\" con Verdure Croccanti",
		Description: "Petto di pollo tenerissimo cotto a bassa temperatura (simulata).",
		Category:    "Michelin",
		Device:      "Padella",
		PrepMinutes: 20,
		MealTypes:   []MealType{MealLunch},
		Ingredients: []Ingredient{
			{Name: "Petto di Pollo", Qty: 200, Unit: "g", Category: "Macelleria"},
			{Name: "Broccoli", Qty: 200, Unit: "g", Category: "Ortofrutta"},
			{Name: "Olio EVO", Qty: 10, Unit: "ml", Category: "Condimenti"},
			{Name: "Riso Basmati", Qty: 60, Unit: "g", Category: "Cereali"},
		},
		Steps: []string{
			"Battere il pollo per renderlo di spessore uniforme.",
			"Cuocere in padella a fuoco bassissimo con coperchio per 12 minuti (non deve rosolare, deve rimanere bianco e succoso).",
			"Scottare i broccoli in acqua bollente per 3 minuti e passarli subito in acqua e ghiaccio (shock termico per colore verde brillante).",
			"Servire con riso basmati e un filo d'olio a crudo.",
		},
		Macros:  Macros{Cal: 550, Protein: 50, Carb: 50, Fat: 15},
		Tags:    []string{"Anti-Estrogen", "Clean"},
		Seasons: []Season{SeasonWinter, SeasonAutumn},
	},
	{
		ID:          "s1",
		Title:       "Gelato Proteico \"Creami\" al Cioccolato",
		Description: "Voluminoso, saziante e perfetto per la voglia di dolce.",
		Category:    "Dessert Fit",
		Device:      "Ninja Creami",
		PrepMinutes: 5,
		MealTypes:   []MealType{MealSnack},
		Ingredients: []Ingredient{
			{Name: "Latte Proteico Cioccolato", Qty: 250, Unit: "ml", Category: "Latticini"},
			{Name: "Cacao Amaro", Qty: 10, Unit: "g", Category: "Dispensa"},
			{Name: "Dolcificante (Eritritolo)", Qty: 10, Unit: "g", Category: "Dispensa"},
		},
		Steps: []string{
			"Mescolare gli ingredienti e congelare nel barattolo Ninja per 24h.",
			"Processare con funzione \"Lite Ice Cream\".",
			"Se farinoso, aggiungere un cucchiaio di latte e fare \"Re-Spin\".",
		},
		Macros:  Macros{Cal: 180, Protein: 25, Carb: 10, Fat: 5},
		Tags:    []string{"Ninja", "High-Volume"},
		Seasons: []Season{SeasonSummer, SeasonSpring, SeasonAll},
	},
	{
		ID:          "s2",
		Title:       "Green Juice \"Detox Viscerale\"",
		Description: "Mix di vegetali specifici per ridurre l'infiammazione.",
		Category:    "Smoothie",
		Device:      "Ninja Estrattore",
		PrepMinutes: 5,
		MealTypes:   []MealType{MealSnack},
		Ingredients: []Ingredient{
			{Name: "Sedano", Qty: 2, Unit: "gambi", Category: "Ortofrutta"},
			{Name: "Mela Verde", Qty: 1, Unit: "pz", Category: "Ortofrutta"},
			{Name: "Zenzero", Qty: 2, Unit: "cm", Category: "Ortofrutta"},
			{Name: "Limone", Qty: 0.5, Unit: "pz", Category: "Ortofrutta"},
			{Name: "Cetriolo", Qty: 1, Unit: "pz", Category: "Ortofrutta"},
		},
		Steps: []string{
			"Lavare accuratamente tutte le verdure.",
			"Inserire nell'estrattore alternando consistenze dure e morbide.",
			"Bere immediatamente per massimizzare gli enzimi.",
		},
		Macros:  Macros{Cal: 90, Protein: 2, Carb: 20, Fat: 0},
		Tags:    []string{"Detox", "Vitamins"},
		Seasons: []Season{SeasonAll},
	},
	{
		ID:          "d1",
		Title:       "Salmone \"Nourish\" Bowl",
		Description: "Ricca di Omega-3 e grassi sani per l'assetto ormonale notturno.",
		Category:    "Nourish",
		Device:      "Forno",
		PrepMinutes: 25,
		MealTypes:   []MealType{MealDinner},
		Ingredients: []Ingredient{
			{Name: "Salmone Selvaggio", Qty: 200, Unit: "g", Category: "Pescheria"},
			{Name: "Asparagi", Qty: 200, Unit: "g", Category: "Ortofrutta"},
			{Name: "Olio EVO", Qty: 10, Unit: "ml", Category: "Condimenti"},
			{Name: "Semi di Sesamo", Qty: 5, Unit: "g", Category: "Dispensa"},
		},
		Steps: []string{
			"Disporre il salmone e gli asparagi su una teglia con carta forno.",
			"Spennellare con olio e cospargere di sesamo.",
			"Cuocere a 180°C per 15-18 minuti.",
			"Condire con limone fresco prima di servire.",
		},
		Macros:  Macros{Cal: 480, Protein: 45, Carb: 8, Fat: 28},
		Tags:    []string{"Omega-3", "Keto-Friendly"},
		Seasons: []Season{SeasonSpring},
	},
	{
		ID:          "d2",
		Title:       "Vellutata \"Bimby\" Anti-Gonfiore",
		Description: "Finocchi e Zucchine per favorire la digestione e ridurre il girovita.",
		Category:    "Quick",
		Device:      "Bimby TM5",
		PrepMinutes: 25,
		MealTypes:   []MealType{MealDinner},
		Ingredients: []Ingredient{
			{Name: "Finocchi", Qty: 300, Unit: "g", Category: "Ortofrutta"},
			{Name: "Patata", Qty: 50, Unit: "g", Category: "Ortofrutta"},
			{Name: "Merluzzo (a parte)", Qty: 150, Unit: "g", Category: "Pescheria"},
			{Name: "Acqua", Qty: 400, Unit: "ml", Category: "Dispensa"},
		},
		Steps: []string{
			"Inserire verdure nel boccale: 5 sec, vel 5.",
			"Aggiungere acqua e sale: 20 min, 100°, vel 1.",
			"Nel frattempo cuocere il merluzzo al vapore (Varoma) o in padella.",
			"Omogeneizzare la vellutata: 1 min, vel 10.",
			"Servire la vellutata con il merluzzo sbriciolato dentro.",
		},
		Macros:  Macros{Cal: 350, Protein: 35, Carb: 25, Fat: 5},
		Tags:    []string{"Digestive", "Light"},
		Seasons: []Season{SeasonWinter, SeasonAutumn},
	},
	{
		ID:          "n1",
		Title:       "Nourish Bowl \"All-in-One\" con Salmone e Riso Nero",
		Description: "Pasto completo bilanciato cotto interamente nel Bimby su 3 livelli.",
		Category:    "Nourish",
		Device:      "Bimby TM5",
		PrepMinutes: 30,
		MealTypes:   []MealType{MealLunch, MealDinner},
		Ingredients: []Ingredient{
			{Name: "Riso Venere", Qty: 70, Unit: "g", Category: "Cereali"},
			{Name: "Salmone Fresco", Qty: 150, Unit: "g", Category: "Pescheria"},
			{Name: "Zucchine", Qty: 100, Unit: "g", Category: "Ortofrutta"},
			{Name: "Carote", Qty: 100, Unit: "g", Category: "Ortofrutta"},
			{Name: "Acqua", Qty: 1000, Unit: "ml", Category: "Dispensa"},
		},
		Steps: []string{
			"Inserire 1L di acqua nel boccale.",
			"Mettere il riso venere nel cestello e inserirlo nel boccale.",
			"Posizionare il Varoma con le verdure tagliate a bastoncino nel recipiente inferiore.",
			"Posizionare il vassoio Varoma superiore con il salmone condito con limone.",
			"Cuocere: 25 min, Varoma, Vel 1.",
			"Servire componendo la bowl con un filo d'olio a crudo.",
		},
		Macros:  Macros{Cal: 520, Protein: 35, Carb: 55, Fat: 18},
		Tags:    []string{"Bimby-Varoma", "Omega-3", "Complete"},
		Seasons: []Season{SeasonAll},
	},
	{
		ID:          "n2",
		Title:       "Golden Hummus Bowl con Pollo Grigliato",
		Description: "Bowl nutriente con hummus fatto in casa (Bimby) e pollo speziato.",
		Category:    "Nourish",
		Device:      "Bimby TM5",
		PrepMinutes: 20,
		MealTypes:   []MealType{MealLunch, MealDinner},
		Ingredients: []Ingredient{
			{Name: "Hummus di Ceci", Qty: 80, Unit: "g", Category: "Dispensa", SearchQuery: "hummus di ceci"},
			{Name: "Petto di Pollo", Qty: 150, Unit: "g", Category: "Macelleria"},
			{Name: "Carote", Qty: 100, Unit: "g", Category: "Ortofrutta"},
			{Name: "Cetrioli", Qty: 100, Unit: "g", Category: "Ortofrutta"},
			{Name: "Pane Pita Integrale", Qty: 1, Unit: "pz", Category: "Dispensa"},
		},
		Steps: []string{
			"Preparare l'hummus nel Bimby (vedi link ingrediente) o usare quello pronto.",
			"Grigliare il petto di pollo tagliato a striscioline con paprika e curcuma.",
			"Tagliare le verdure a bastoncino.",
			"Comporre la bowl con l'hummus al centro, il pollo e le verdure intorno.",
			"Servire con la pita tostata.",
		},
		Macros:  Macros{Cal: 550, Protein: 40, Carb: 45, Fat: 20},
		Tags:    []string{"High-Protein", "Bimby-Sauce", "Nourish"},
		Seasons: []Season{SeasonSpring, SeasonSummer, SeasonAutumn},
	},
	{
		ID:          "n3",
		Title:       "Polpette al Sugo Bimby con Purè Light",
		Description: "Un classico comfort food rivisitato in chiave bilanciata.",
		Category:    "Nourish",
		Device:      "Bimby TM5",
		PrepMinutes: 40,
		MealTypes:   []MealType{MealDinner, MealLunch},
		Ingredients: []Ingredient{
			{Name: "Carne Macinata Magra", Qty: 150, Unit: "g", Category: "Macelleria"},
			{Name: "Sugo di Pomodoro", Qty: 150, Unit: "g", Category: "Dispensa", SearchQuery: "sugo al pomodoro basilico"},
			{Name: "Patate", Qty: 200, Unit: "g", Category: "Ortofrutta", SearchQuery: "pure di patate"},
			{Name: "Latte Scremato", Qty: 50, Unit: "ml", Category: "Frigo"},
			{Name: "Parmigiano", Qty: 10, Unit: "g", Category: "Frigo"},
		},
		Steps: []string{
			"Preparare il sugo nel boccale (vedi link).",
			"Nel frattempo formare le polpette e cuocerle nel Varoma mentre il sugo cuoce (20 min, Varoma, Vel 1).",
			"A parte, preparare il purè (vedi link) o cuocere le patate al vapore nel cestello se ci stanno.",
			"Unire le polpette al sugo e servire con il purè.",
		},
		Macros:  Macros{Cal: 580, Protein: 38, Carb: 50, Fat: 22},
		Tags:    []string{"Comfort-Food", "Bimby-Complete", "Family"},
		Seasons: []Season{SeasonWinter, SeasonAutumn},
	},
	{
		ID:          "n4",
		Title:       "Fusilli Integrali con Pesto di Zucchine e Gamberi",
		Description: "Primo piatto fresco e leggero con pesto alternativo fatto al Bimby.",
		Category:    "Nourish",
		Device:      "Bimby TM5",
		PrepMinutes: 25,
		MealTypes:   []MealType{MealLunch},
		Ingredients: []Ingredient{
			{Name: "Fusilli Integrali", Qty: 80, Unit: "g", Category: "Cereali"},
			{Name: "Gamberi Sgusciati", Qty: 150, Unit: "g", Category: "Pescheria"},
			{Name: "Pesto di Zucchine", Qty: 60, Unit: "g", Category: "Condimenti", SearchQuery: "pesto di zucchine"},
			{Name: "Pomodorini", Qty: 100, Unit: "g", Category: "Ortofrutta"},
			{Name: "Pinoli", Qty: 5, Unit: "g", Category: "Dispensa"},
		},
		Steps: []string{
			"Preparare il pesto di zucchine nel Bimby (vedi link). Tenere da parte.",
			"Nel boccale pulito (o senza lavare troppo) mettere acqua per la pasta: 10 min, 100°, Vel 1.",
			"Buttare la pasta e cuocere tempo indicato.",
			"Nel frattempo saltare i gamberi in padella o cuocerli nel Varoma mentre bolle l'acqua.",
			"Scolare la pasta e condire con pesto e gamberi.",
		},
		Macros:  Macros{Cal: 510, Protein: 30, Carb: 65, Fat: 12},
		Tags:    []string{"Light-Pasta", "Bimby-Sauce", "Summer"},
		Seasons: []Season{SeasonSpring, SeasonSummer},
	},
	{
		ID:          "n5",
		Title:       "Hummus \"Golden\" alla Curcuma (Snack)",
		Description: "Potente antinfiammatorio naturale, perfetto come snack o accompagnamento.",
		Category:    "Nourish",
		Device:      "Bimby TM5",
		PrepMinutes: 5,
		MealTypes:   []MealType{MealSnack, MealLunch},
		Ingredients: []Ingredient{
			{Name: "Ceci Cotti", Qty: 240, Unit: "g", Category: "Legumi"},
			{Name: "Tahina", Qty: 30, Unit: "g", Category: "Condimenti"},
			{Name: "Curcuma", Qty: 1, Unit: "cucchiaino", Category: "Spezie"},
			{Name: "Limone", Qty: 0.5, Unit: "succo", Category: "Ortofrutta"},
			{Name: "Aglio", Qty: 1, Unit: "spicchio", Category: "Ortofrutta"},
		},
		Steps: []string{
			"Inserire lo spicchio d'aglio nel boccale: 3 sec, Vel 7. Riunire sul fondo.",
			"Aggiungere ceci, tahina, succo di limone, curcuma, sale e pepe.",
			"Frullare: 1 min, Vel 5 aumentando fino a Vel 10.",
			"Se troppo denso, aggiungere un goccio d'acqua e emulsionare 10 sec, Vel 4.",
			"Servire con verdure crude in pinzimonio.",
		},
		Macros:  Macros{Cal: 320, Protein: 12, Carb: 35, Fat: 14},
		Tags:    []string{"Anti-Inflammatory", "Plant-Based"},
		Seasons: []Season{SeasonAll},
	},
	{
		ID:          "n7",
		Title:       "Polpette di Tacchino e Zucchine al Varoma",
		Description: "Secondo piatto leggerissimo, senza frittura, che rimane succoso grazie alla cottura a vapore.",
		Category:    "Nourish",
		Device:      "Bimby TM5",
		PrepMinutes: 25,
		MealTypes:   []MealType{MealLunch, MealDinner},
		Ingredients: []Ingredient{
			{Name: "Petto di Tacchino", Qty: 300, Unit: "g", Category: "Macelleria"},
			{Name: "Zucchine", Qty: 150, Unit: "g", Category: "Ortofrutta"},
			{Name: "Albume", Qty: 30, Unit: "g", Category: "Uova"},
			{Name: "Erbe Aromatiche", Qty: 1, Unit: "mazzetto", Category: "Ortofrutta"},
		},
		Steps: []string{
			"Inserire tacchino a cubetti e zucchine nel boccale: 10 sec, Vel 7.",
			"Aggiungere albume, sale, erbe: 10 sec, Vel 4 Antiorario.",
			"Formare le polpette e disporle nel Varoma unto leggermente.",
			"Mettere 500g acqua nel boccale (o approfittarne per cuocere una zuppa sotto).",
			"Cuocere: 20 min, Varoma, Vel 1.",
			"Servire con una salsa allo yogurt.",
		},
		Macros:  Macros{Cal: 380, Protein: 65, Carb: 5, Fat: 8},
		Tags:    []string{"High-Protein", "Low-Carb", "Bimby-Varoma"},
		Seasons: []Season{SeasonAll},
	},
	{
		ID:          "n8",
		Title:       "Dahl di Lenticchie Rosse e Spinaci",
		Description: "Comfort food ricco di fibre e ferro, cremoso senza panna.",
		Category:    "Nourish",
		Device:      "Bimby TM5",
		PrepMinutes: 20,
		MealTypes:   []MealType{MealLunch, MealDinner},
		Ingredients: []Ingredient{
			{Name: "Lenticchie Rosse Decorticate", Qty: 150, Unit: "g", Category: "Legumi"},
			{Name: "Latte di Cocco Light", Qty: 100, Unit: "ml", Category: "Dispensa"},
			{Name: "Spinaci Freschi", Qty: 100, Unit: "g", Category: "Ortofrutta"},
			{Name: "Pomodori Pelati", Qty: 200, Unit: "g", Category: "Dispensa"},
			{Name: "Curry", Qty: 1, Unit: "cucchiaino", Category: "Spezie"},
		},
		Steps: []string{
			"Tritare cipolla/aglio (opzionali): 3 sec, Vel 7. Rosolare 3 min, 100°, Vel 1.",
			"Aggiungere lenticchie (sciacquate), pelati, latte di cocco e curry.",
			"Cuocere: 15 min, 100°, Vel Soft Antiorario.",
			"Aggiungere gli spinaci dal foro del coperchio.",
			"Cuocere ancora: 3 min, 100°, Vel Soft Antiorario.",
			"Lasciare riposare 2 minuti prima di servire.",
		},
		Macros:  Macros{Cal: 450, Protein: 22, Carb: 55, Fat: 12},
		Tags:    []string{"Vegan", "Fiber-Rich", "Comfort-Food"},
		Seasons: []Season{SeasonWinter, SeasonAutumn},
	},
	{
		ID:          "n9",
		Title:       "Vellutata Super-Green Detox",
		Description: "Un concentrato di clorofilla e vitamine per depurare l'organismo.",
		Category:    "Nourish",
		Device:      "Bimby TM5",
		PrepMinutes: 20,
		MealTypes:   []MealType{MealDinner},
		Ingredients: []Ingredient{
			{Name: "Piselli Surgelati", Qty: 200, Unit: "g", Category: "Surgelati"},
			{Name: "Zucchine", Qty: 200, Unit: "g", Category: "Ortofrutta"},
			{Name: "Menta Fresca", Qty: 5, Unit: "foglie", Category: "Ortofrutta"},
			{Name: "Yogurt Greco", Qty: 50, Unit: "g", Category: "Latticini"},
			{Name: "Brodo Vegetale", Qty: 400, Unit: "ml", Category: "Dispensa"},
		},
		Steps: []string{
			"Inserire piselli, zucchine a pezzi e brodo nel boccale.",
			"Cuocere: 18 min, 100°, Vel 1.",
			"Aggiungere la menta fresca.",
			"Omogeneizzare: 1 min, portando gradualmente a Vel 10.",
			"Servire con un cucchiaio di yogurt greco al centro per cremosità e proteine extra.",
		},
		Macros:  Macros{Cal: 280, Protein: 18, Carb: 35, Fat: 2},
		Tags:    []string{"Detox", "Low-Cal", "Vitamin-Boost"},
		Seasons: []Season{SeasonSpring, SeasonSummer},
	},
	{
		ID:          "n6",
		Title:       "Risotto \"Viola\" al Cavolo Cappuccio",
		Description: "Ricco di antociani e antiossidanti, con un colore spettacolare.",
		Category:    "Nourish",
		Device:      "Bimby TM5",
		PrepMinutes: 20,
		MealTypes:   []MealType{MealLunch},
		Ingredients: []Ingredient{
			{Name: "Riso Carnaroli", Qty: 80, Unit: "g", Category: "Cereali"},
			{Name: "Cavolo Cappuccio Viola", Qty: 150, Unit: "g", Category: "Ortofrutta"},
			{Name: "Parmigiano", Qty: 20, Unit: "g", Category: "Latticini"},
			{Name: "Vino Bianco", Qty: 30, Unit: "ml", Category: "Bevande"},
			{Name: "Brodo Vegetale", Qty: 300, Unit: "ml", Category: "Dispensa"},
		},
		Steps: []string{
			"Tritare il cavolo viola: 5 sec, Vel 5. Mettere da parte metà.",
			"Rosolare metà cavolo con un filo d'olio: 3 min, 100°, Vel 1.",
			"Aggiungere il riso e tostare: 3 min, 100°, Vel 1 Antiorario (senza misurino).",
			"Sfumare col vino: 1 min, 100°, Vel 1 Antiorario.",
			"Aggiungere brodo e l'altra metà del cavolo: Cuocere per il tempo indicato sulla confezione (ca 13-14 min), 100°, Vel 1 Antiorario.",
			"Mantecare con parmigiano a fuoco spento.",
		},
		Macros:  Macros{Cal: 480, Protein: 14, Carb: 75, Fat: 10},
		Tags:    []string{"Antioxidant", "Gourmet"},
		Seasons: []Season{SeasonWinter, SeasonAutumn},
	},
	{
		ID:          "dx1",
		Title:       "Golden Milk \"Thermogenic\"",
		Description: "Bevanda antica potenziata per attivare il metabolismo e ridurre l'infiammazione.",
		Category:    "Detox",
		Device:      "Padella",
		PrepMinutes: 5,
		MealTypes:   []MealType{MealSnack, MealBreakfast},
		Ingredients: []Ingredient{
			{Name: "Latte di Cocco (light)", Qty: 200, Unit: "ml", Category: "Bevande"},
			{Name: "Curcuma in polvere", Qty: 1, Unit: "cucchiaino", Category: "Spezie"},
			{Name: "Zenzero fresco", Qty: 1, Unit: "cm", Category: "Ortofrutta"},
			{Name: "Pepe Nero", Qty: 1, Unit: "pizzico", Category: "Spezie"},
			{Name: "Olio di Cocco", Qty: 0.5, Unit: "cucchiaino", Category: "Condimenti"},
		},
		Steps: []string{
			"Scaldare il latte in un pentolino senza portarlo a bollore.",
			"Aggiungere curcuma, pepe nero (fondamentale per l'assorbimento) e zenzero grattugiato.",
			"Unire l'olio di cocco e mescolare energicamente.",
			"Bere caldo, preferibilmente al mattino a digiuno o prima di dormire.",
		},
		Macros:  Macros{Cal: 120, Protein: 1, Carb: 4, Fat: 10},
		Tags:    []string{"Anti-Inflammatory", "Fat-Burner", "Immunity"},
		Seasons: []Season{SeasonWinter, SeasonAutumn},
	},
	{
		ID:          "dx2",
		Title:       "Insalata \"Metabolism Booster\"",
		Description: "Mix di ingredienti amari e acidi per stimolare fegato e metabolismo.",
		Category:    "Detox",
		Device:      "None",
		PrepMinutes: 10,
		MealTypes:   []MealType{MealLunch, MealDinner},
		Ingredients: []Ingredient{
			{Name: "Pompelmo Rosa", Qty: 0.5, Unit: "pz", Category: "Ortofrutta"},
			{Name: "Finocchio", Qty: 1, Unit: "pz", Category: "Ortofrutta"},
			{Name: "Rucola", Qty: 50, Unit: "g", Category: "Ortofrutta"},
			{Name: "Noci", Qty: 15, Unit: "g", Category: "Frutta Secca"},
			{Name: "Aceto di Mele", Qty: 1, Unit: "cucchiaio", Category: "Condimenti"},
		},
		Steps: []string{
			"Pelare il pompelmo a vivo e tagliarlo a spicchi.",
			"Affettare il finocchio sottilissimo (usare mandolina se possibile).",
			"Unire rucola, pompelmo e finocchio in una bowl.",
			"Condire con aceto di mele (stabilizza la glicemia) e un filo d'olio.",
			"Guarnire con le noci spezzettate.",
		},
		Macros:  Macros{Cal: 210, Protein: 4, Carb: 15, Fat: 14},
		Tags:    []string{"Liver-Support", "Fat-Burner", "Low-Cal"},
		Seasons: []Season{SeasonWinter, SeasonSpring},
	},
	{
		ID:          "dx3",
		Title:       "Zuppa \"Spicy\" alla Zucca e Zenzero",
		Description: "L'effetto termogenico del peperoncino unito alle fibre della zucca.",
		Category:    "Detox",
		Device:      "Bimby TM5",
		PrepMinutes: 25,
		MealTypes:   []MealType{MealDinner},
		Ingredients: []Ingredient{
			{Name: "Zucca Delica", Qty: 300, Unit: "g", Category: "Ortofrutta"},
			{Name: "Zenzero", Qty: 3, Unit: "cm", Category: "Ortofrutta"},
			{Name: "Peperoncino", Qty: 1, Unit: "pizzico", Category: "Spezie"},
			{Name: "Brodo Vegetale", Qty: 300, Unit: "ml", Category: "Dispensa"},
			{Name: "Semi di Zucca", Qty: 10, Unit: "g", Category: "Dispensa"},
		},
		Steps: []string{
			"Inserire zenzero nel boccale: 3 sec, Vel 7.",
			"Aggiungere zucca a cubetti e brodo.",
			"Cuocere: 20 min, 100°, Vel 1.",
			"Aggiungere peperoncino e frullare: 1 min, Vel 10.",
			"Servire con semi di zucca tostati per la parte croccante.",
		},
		Macros:  Macros{Cal: 180, Protein: 5, Carb: 30, Fat: 6},
		Tags:    []string{"Thermogenic", "Satiety", "Vegan"},
		Seasons: []Season{SeasonAutumn, SeasonWinter},
	},
	{
		ID:          "dx4",
		Title:       "Smoothie \"Belly-Melt\" all'Ananas",
		Description: "La bromelina dell'ananas aiuta a digerire le proteine e ridurre il gonfiore.",
		Category:    "Detox",
		Device:      "Ninja Estrattore",
		PrepMinutes: 5,
		MealTypes:   []MealType{MealSnack},
		Ingredients: []Ingredient{
			{Name: "Ananas Fresco", Qty: 150, Unit: "g", Category: "Ortofrutta"},
			{Name: "Cetriolo", Qty: 0.5, Unit: "pz", Category: "Ortofrutta"},
			{Name: "Limone", Qty: 0.5, Unit: "pz", Category: "Ortofrutta"},
			{Name: "Acqua di Cocco", Qty: 100, Unit: "ml", Category: "Bevande"},
			{Name: "Pepe di Cayenna", Qty: 1, Unit: "pizzico", Category: "Spezie"},
		},
		Steps: []string{
			"Pulire l'ananas (tenere il cuore centrale che è ricco di bromelina).",
			"Inserire tutto nel bicchiere del Ninja.",
			"Frullare fino a ottenere una consistenza liscia.",
			"Il pizzico di cayenna attiva il metabolismo senza alterare troppo il gusto.",
		},
		Macros:  Macros{Cal: 110, Protein: 1, Carb: 25, Fat: 0},
		Tags:    []string{"Digestive", "Anti-Bloat", "Enzymatic"},
		Seasons: []Season{SeasonSpring, SeasonSummer, SeasonAll},
	},
	{
		ID:          "sm1",
		Title:       "Matcha \"Metabolism\" Bomb",
		Description: "Il tè Matcha è il re degli antiossidanti e stimola la termogenesi.",
		Category:    "Smoothie",
		Device:      "Bimby TM5",
		PrepMinutes: 5,
		MealTypes:   []MealType{MealSnack, MealBreakfast},
		Ingredients: []Ingredient{
			{Name: "Latte di Mandorla", Qty: 200, Unit: "ml", Category: "Bevande"},
			{Name: "Tè Matcha in polvere", Qty: 1, Unit: "cucchiaino", Category: "Dispensa"},
			{Name: "Spinaci Baby", Qty: 30, Unit: "g", Category: "Ortofrutta"},
			{Name: "Banana Congelata", Qty: 0.5, Unit: "pz", Category: "Ortofrutta"},
			{Name: "Proteine Vaniglia", Qty: 20, Unit: "g", Category: "Integratori"},
		},
		Steps: []string{
			"Inserire tutti gli ingredienti nel boccale.",
			"Frullare: 30 sec, Vel 10.",
			"La banana congelata dona una consistenza cremosa tipo gelato.",
		},
		Macros:  Macros{Cal: 180, Protein: 22, Carb: 18, Fat: 4},
		Tags:    []string{"Thermogenic", "Antioxidant", "Energy"},
		Seasons: []Season{SeasonAll},
	},
	{
		ID:          "sm2",
		Title:       "Caffè \"Ketogenico\" Brucia Grassi",
		Description: "Perfetto pre-workout per dare energia e mobilizzare i grassi.",
		Category:    "Smoothie",
		Device:      "None",
		PrepMinutes: 2,
		MealTypes:   []MealType{MealBreakfast, MealSnack},
		Ingredients: []Ingredient{
			{Name: "Caffè Espresso Lungo", Qty: 1, Unit: "tazza", Category: "Bevande"},
			{Name: "Olio MCT o Cocco", Qty: 1, Unit: "cucchiaino", Category: "Condimenti"},
			{Name: "Cannella", Qty: 1, Unit: "pizzico", Category: "Spezie"},
			{Name: "Ghiaccio", Qty: 3, Unit: "cubetti", Category: "Surgelati"},
			{Name: "Proteine Cioccolato", Qty: 25, Unit: "g", Category: "Integratori"},
		},
		Steps: []string{
			"Preparare il caffè e lasciarlo intiepidire leggermente.",
			"Frullare con ghiaccio, proteine e olio MCT.",
			"L'olio MCT viene convertito rapidamente in chetoni per energia immediata.",
		},
		Macros:  Macros{Cal: 160, Protein: 20, Carb: 2, Fat: 8},
		Tags:    []string{"Pre-Workout", "Keto", "Focus"},
		Seasons: []Season{SeasonAll},
	},
	{
		ID:          "ex1",
		Title:       "Estratto \"Sgonfia Pancia\" al Sedano",
		Description: "Il segreto delle star per un addome piatto. Drenante potentissimo.",
		Category:    "Extract",
		Device:      "Ninja Estrattore",
		PrepMinutes: 5,
		MealTypes:   []MealType{MealSnack},
		Ingredients: []Ingredient{
			{Name: "Sedano", Qty: 4, Unit: "gambi", Category: "Ortofrutta"},
			{Name: "Limone (con buccia se bio)", Qty: 0.5, Unit: "pz", Category: "Ortofrutta"},
			{Name: "Cetriolo", Qty: 1, Unit: "pz", Category: "Ortofrutta"},
			{Name: "Prezzemolo", Qty: 1, Unit: "mazzetto", Category: "Ortofrutta"},
		},
		Steps: []string{
			"Lavare bene le verdure.",
			"Tagliare a pezzi adatti all'estrattore.",
			"Estrarre il succo e bere immediatamente a stomaco vuoto.",
		},
		Macros:  Macros{Cal: 45, Protein: 2, Carb: 8, Fat: 0},
		Tags:    []string{"Diuretic", "Flat-Belly", "Detox"},
		Seasons: []Season{SeasonAll},
	},
	{
		ID:          "ex2",
		Title:       "Red \"Nitric Oxide\" Booster",
		Description: "Migliora la circolazione e l'ossigenazione dei tessuti grazie alla barbabietola.",
		Category:    "Extract",
		Device:      "Ninja Estrattore",
		PrepMinutes: 8,
		MealTypes:   []MealType{MealSnack},
		Ingredients: []Ingredient{
			{Name: "Barbabietola Cruda", Qty: 1, Unit: "pz", Category: "Ortofrutta"},
			{Name: "Carota", Qty: 2, Unit: "pz", Category: "Ortofrutta"},
			{Name: "Mela Verde", Qty: 1, Unit: "pz", Category: "Ortofrutta"},
			{Name: "Zenzero", Qty: 2, Unit: "cm", Category: "Ortofrutta"},
		},
		Steps: []string{
			"Pelare la barbabietola e le carote.",
			"Inserire nell'estrattore alternando con la mela.",
			"Ottimo prima dell'allenamento per il \"pump\" muscolare naturale.",
		},
		Macros:  Macros{Cal: 110, Protein: 2, Carb: 26, Fat: 0},
		Tags:    []string{"Performance", "Circulation", "Vitamins"},
		Seasons: []Season{SeasonAutumn, SeasonWinter},
	},
	{
		ID:          "ex3",
		Title:       "Shot \"Immuno-Fire\" Zenzero e Limone",
		Description: "Un concentrato piccante per svegliare il metabolismo e alzare le difese.",
		Category:    "Extract",
		Device:      "Ninja Estrattore",
		PrepMinutes: 5,
		MealTypes:   []MealType{MealBreakfast},
		Ingredients: []Ingredient{
			{Name: "Zenzero Fresco", Qty: 50, Unit: "g", Category: "Ortofrutta"},
			{Name: "Limone", Qty: 1, Unit: "pz", Category: "Ortofrutta"},
			{Name: "Pepe di Cayenna", Qty: 1, Unit: "pizzico", Category: "Spezie"},
		},
		Steps: []string{
			"Rimuovere la buccia del limone ma lasciare quella bianca (albedo) ricca di fibre.",
			"Estrarre il succo di zenzero e limone.",
			"Aggiungere il pepe di cayenna e bere tutto d'un fiato (è forte!).",
		},
		Macros:  Macros{Cal: 30, Protein: 0, Carb: 7, Fat: 0},
		Tags:    []string{"Immunity", "Metabolism", "Shot"},
		Seasons: []Season{SeasonWinter, SeasonAutumn},
	},
}
