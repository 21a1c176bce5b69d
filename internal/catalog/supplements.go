package catalog

var Supplements = []Supplement{
	{
		ID:          "s1",
		Name:        "Proteine Whey Isolate",
		Description: "Proteine a rapido assorbimento per il recupero muscolare.",
		Dosage:      "30g",
		Timing:      "Post-workout o a colazione",
		Goal:        "Muscle Recovery",
	},
	{
		ID:          "s2",
		Name:        "Caffeina Anidra / Termogenico",
		Description: "Stimolante metabolico per aumentare il dispendio calorico.",
		Dosage:      "200mg",
		Timing:      "Pre-workout (non dopo le 16:00)",
		Goal:        "Fat Loss",
		Warning:     "Evitare in caso di ipertensione o ansia.",
	},
	{
		ID:          "s3",
		Name:        "Omega-3 (Olio di Pesce)",
		Description: "Acidi grassi essenziali per la salute cardiovascolare e antinfiammatoria.",
		Dosage:      "2g",
		Timing:      "Ai pasti principali",
		Goal:        "General Health",
	},
	{
		ID:          "s4",
		Name:        "Multivitaminico Sport",
		Description: "Micro-nutrienti essenziali per supportare il metabolismo attivo.",
		Dosage:      "1 compressa",
		Timing:      "Colazione",
		Goal:        "General Health",
	},
	{
		ID:          "s5",
		Name:        "EAA (Aminoacidi Essenziali)",
		Description: "Mattoni fondamentali per la sintesi proteica.",
		Dosage:      "10g",
		Timing:      "Intra-workout",
		Goal:        "Muscle Preservation",
	},
	{
		ID:          "s6",
		Name:        "Zinco Picolinato + DIM",
		Description: "Supporto ormonale chiave per ottimizzare il testosterone e metabolizzare gli estrogeni in eccesso.",
		Dosage:      "30mg Zinco / 200mg DIM",
		Timing:      "Prima di dormire",
		Goal:        "Hormonal Balance",
		Warning:     "Non superare le dosi consigliate.",
	},
}

func SupplementByID(id string) (Supplement, bool) {
	for _, s := range Supplements {
		if s.ID == id {
			return s, true
		}
	}
	return Supplement{}, false
}
