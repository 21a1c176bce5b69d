package catalog

// Workouts is the bundled workout table. Workouts without sections are
// video-only routines followed along on the linked video.
var Workouts = []Workout{
	{
		ID: "ch1", Title: "Complete 15 Min Abs",
		Description: "Allenamento completo per addominali scolpiti. Risultati garantiti con costanza.",
		Creator:     "Chris Heria", DurationMin: 15, Level: "Intermedio", Category: "Core",
		Calories: 180, Equipment: []string{"None"}, VideoID: "0yZDVWab_dI",
	},
	{
		ID: "ch_gyno_shred", Title: "Anti-Ginecomastia Chest Sculpt",
		Description: "Protocollo specifico per definire il petto basso e bruciare il grasso localizzato.",
		Creator:     "Chris Heria", DurationMin: 10, Level: "Intermedio", Category: "Upper Body",
		Calories: 150, Equipment: []string{"None"}, VideoID: "vm1WpTAtPH0",
	},
	{
		ID: "w_gyno_focus", Title: "Lower Chest & Hormonal Boost",
		Description: "Esercizi multi-articolari per massimizzare il testosterone e scolpire la parte bassa del petto.",
		Creator:     "Chris Heria", DurationMin: 35, Level: "Avanzato", Category: "Upper Body",
		Calories: 320, Equipment: []string{"Dip Station", "Decline Bench"},
		Sections: []WorkoutSection{
			{Title: "Main Workout", Exercises: []Exercise{
				{ID: "e_dip", Name: "Dips alle Parallele", Sets: 4, Reps: "12-15", RestSec: 90, Notes: "Busto inclinato in avanti per focus petto", VideoID: "U7HeutDqS_w"},
				{ID: "e_dec_push", Name: "Decline Pushups", Sets: 4, Reps: "15-20", RestSec: 60, Notes: "Piedi su rialzo, mani a terra", VideoID: "5hW08uR8gWc"},
				{ID: "e_hiit_sprint", Name: "Sprints (High Knees)", Sets: 6, Reps: "30 sec", RestSec: 30, Notes: "Max velocità per boost metabolico", VideoID: "h8F60yG97l8"},
				{ID: "e_fly", Name: "High-to-Low Flys", Sets: 3, Reps: "15", RestSec: 45, Notes: "Usa elastici o cavi, chiusura in basso", VideoID: "I5tJ7y_i6t8"},
			}},
		},
	},
	{
		ID: "ch2", Title: "10 Min Fat Burn",
		Description: "Brucia grassi veloce ed efficace senza attrezzi.",
		Creator:     "Chris Heria", DurationMin: 10, Level: "Principiante", Category: "Cardio",
		Calories: 200, Equipment: []string{"None"}, VideoID: "UheajlsZ72E",
	},
	{
		ID: "ch3", Title: "8 Min Abs Anywhere",
		Description: "Routine addominali da fare ovunque.",
		Creator:     "Chris Heria", DurationMin: 8, Level: "Intermedio", Category: "Core",
		Calories: 100, Equipment: []string{"None"}, VideoID: "PhMwhb0rsVg",
	},
	{
		ID: "ch4", Title: "12 Min Shredded",
		Description: "Allenamento ad alta intensità per definirsi.",
		Creator:     "Chris Heria", DurationMin: 12, Level: "Avanzato", Category: "Full Body",
		Calories: 250, Equipment: []string{"None"}, VideoID: "EhY6cGS7F-c",
	},
	{
		ID: "ch5", Title: "10 Min 6-Pack + Burn",
		Description: "Combinazione letale di esercizi addominali e cardio.",
		Creator:     "Chris Heria", DurationMin: 10, Level: "Avanzato", Category: "Core",
		Calories: 190, Equipment: []string{"None"}, VideoID: "ofTiKY3hYdE",
	},
	{
		ID: "ch6", Title: "10 Min HIIT Cardio",
		Description: "HIIT esplosivo per sostituire il cardio stazionario.",
		Creator:     "Chris Heria", DurationMin: 10, Level: "Intermedio", Category: "Cardio",
		Calories: 220, Equipment: []string{"None"}, VideoID: "edIK5SZYMZo",
	},
	{
		ID: "ch7", Title: "5 Min Abs No Rest",
		Description: "5 minuti intensi senza pause.",
		Creator:     "Chris Heria", DurationMin: 5, Level: "Tutti", Category: "Core",
		Calories: 80, Equipment: []string{"None"}, VideoID: "vhcyvcbVBQQ",
	},
	{
		ID: "ch_abs_supreme", Title: "Supreme 6-Pack Abs",
		Description: "La guida definitiva per addominali scolpiti. Tutti i distretti muscolari in 20 minuti.",
		Creator:     "Chris Heria", DurationMin: 20, Level: "Avanzato", Category: "Core",
		Calories: 220, Equipment: []string{"None", "Pull-up Bar"}, VideoID: "0yZDVWab_dI",
		Sections: []WorkoutSection{
			{Title: "Warm Up", Exercises: []Exercise{
				{ID: "ch_wu1", Name: "Jumping Jacks", Sets: 2, Reps: "45 sec", RestSec: 15},
				{ID: "ch_wu2", Name: "High Knees", Sets: 2, Reps: "30 sec", RestSec: 30},
			}},
			{Title: "6-Pack Circuit", Exercises: []Exercise{
				{ID: "ch_a1", Name: "Hanging Leg Raises", Sets: 3, Reps: "12-15", RestSec: 45, Notes: "Focus addome basso"},
				{ID: "ch_a2", Name: "Russian Twists", Sets: 3, Reps: "20", RestSec: 30, Notes: "Obliqui"},
				{ID: "ch_a3", Name: "Weighted Crunches", Sets: 3, Reps: "15", RestSec: 45, Notes: "Usa un peso o zaino"},
				{ID: "ch_a4", Name: "Bicycle Crunches", Sets: 3, Reps: "20", RestSec: 30, Notes: "Controllo totale"},
				{ID: "ch_a5", Name: "Plank Hold", Sets: 3, Reps: "60 sec", RestSec: 60, Notes: "Stabilità"},
			}},
			{Title: "Cool Down", Exercises: []Exercise{
				{ID: "ch_cd1", Name: "Cobra Stretch", Sets: 1, Reps: "60 sec", RestSec: 0},
				{ID: "ch_cd2", Name: "Child Pose", Sets: 1, Reps: "60 sec", RestSec: 0},
			}},
		},
	},

	{
		ID: "midas1", Title: "20 Min Full Body Dumbbell",
		Description: "Allenamento completo con manubri per forza e definizione.",
		Creator:     "Midas Movement", DurationMin: 20, Level: "Intermedio", Category: "Full Body",
		Calories: 220, Equipment: []string{"Dumbbells"}, VideoID: "eV-5FWDf0f8",
	},
	{
		ID: "midas_chest_arms", Title: "Perfect Chest & Arms",
		Description: "Routine focalizzata su petto massiccio e braccia definite. I migliori esercizi valutati dalla community.",
		Creator:     "Midas Movement", DurationMin: 35, Level: "Intermedio", Category: "Upper Body",
		Calories: 300, Equipment: []string{"Dumbbells", "Bench"}, VideoID: "rPZLkqr429g",
		Sections: []WorkoutSection{
			{Title: "Warm Up", Exercises: []Exercise{
				{ID: "m_wu1", Name: "Arm Circles", Sets: 2, Reps: "30 sec", RestSec: 15},
				{ID: "m_wu2", Name: "Push-ups", Sets: 2, Reps: "15", RestSec: 30},
			}},
			{Title: "Chest & Arms Destruction", Exercises: []Exercise{
				{ID: "m_ca1", Name: "Dumbbell Bench Press", Sets: 4, Reps: "10-12", RestSec: 90, Notes: "Controllo eccentrico"},
				{ID: "m_ca2", Name: "Incline Dumbbell Flys", Sets: 3, Reps: "12-15", RestSec: 60, Notes: "Focus parte alta petto"},
				{ID: "m_ca3", Name: "Diamond Push-ups", Sets: 3, Reps: "Max", RestSec: 60, Notes: "Focus tricipiti e petto interno"},
				{ID: "m_ca4", Name: "Hammer Curls", Sets: 4, Reps: "12", RestSec: 60, Notes: "Braccia possenti"},
				{ID: "m_ca5", Name: "Tricep Dips (Bench)", Sets: 3, Reps: "15", RestSec: 45, Notes: "Bruciore finale"},
			}},
			{Title: "Cool Down", Exercises: []Exercise{
				{ID: "m_cd1", Name: "Chest Stretch", Sets: 1, Reps: "60 sec", RestSec: 0},
				{ID: "m_cd2", Name: "Tricep Stretch", Sets: 1, Reps: "30 sec/arm", RestSec: 0},
			}},
		},
	},
	{
		ID: "midas2", Title: "10 Min Total Abs",
		Description: "Circuito addominali intenso per un core d'acciaio.",
		Creator:     "Midas Movement", DurationMin: 10, Level: "Tutti", Category: "Core",
		Calories: 120, Equipment: []string{"None"}, VideoID: "aNsCuLD07WA",
	},
	{
		ID: "midas3", Title: "45 Min Build & Burn",
		Description: "Sessione lunga per costruire muscolo e bruciare grassi.",
		Creator:     "Midas Movement", DurationMin: 45, Level: "Avanzato", Category: "Full Body",
		Calories: 450, Equipment: []string{"Dumbbells"}, VideoID: "2D1195bkPHs",
	},
	{
		ID: "midas4", Title: "20 Min Abs & Cardio",
		Description: "Mix perfetto di cardio e addome.",
		Creator:     "Midas Movement", DurationMin: 20, Level: "Intermedio", Category: "Cardio",
		Calories: 250, Equipment: []string{"None"}, VideoID: "k4ruquag5zY",
	},

	{
		ID: "next_abs_master", Title: "Ultimate 6-Pack (15 Min)",
		Description: "Routine addominale completa e scientifica. Esercizi selezionati per massima attivazione.",
		Creator:     "NEXT Workout", DurationMin: 15, Level: "Avanzato", Category: "Core",
		Calories: 180, Equipment: []string{"None"}, VideoID: "hdng3Cm1x_c",
		Sections: []WorkoutSection{
			{Title: "Activation", Exercises: []Exercise{
				{ID: "n_a1", Name: "Plank", Sets: 1, Reps: "60 sec", RestSec: 15},
				{ID: "n_a2", Name: "Dead Bug", Sets: 2, Reps: "10/side", RestSec: 30},
			}},
			{Title: "Core Destruction", Exercises: []Exercise{
				{ID: "n_a3", Name: "Hanging Leg Raises", Sets: 3, Reps: "12-15", RestSec: 45, Notes: "Re dell'addome basso"},
				{ID: "n_a4", Name: "Cable Crunches (o Band)", Sets: 3, Reps: "15-20", RestSec: 45, Notes: "Focus addome alto"},
				{ID: "n_a5", Name: "Russian Twists", Sets: 3, Reps: "20", RestSec: 30, Notes: "Obliqui in fuoco"},
				{ID: "n_a6", Name: "Ab Wheel Rollout", Sets: 3, Reps: "10", RestSec: 60, Notes: "Stabilità totale"},
			}},
		},
	},
	{
		ID: "next1", Title: "Push Day Mastery",
		Description: "Focus su petto, spalle e tricipiti con tecnica perfetta.",
		Creator:     "NEXT Workout", DurationMin: 45, Level: "Intermedio", Category: "Upper Body",
		Calories: 350, Equipment: []string{"Barbell", "Dumbbells", "Bench"},
		Sections: []WorkoutSection{
			{Title: "Warm Up", Exercises: []Exercise{
				{ID: "wu1", Name: "Arm Circles", Sets: 2, Reps: "30 sec", RestSec: 0},
				{ID: "wu2", Name: "Push-ups", Sets: 2, Reps: "10", RestSec: 30},
			}},
			{Title: "Main Workout", Exercises: []Exercise{
				{ID: "n1", Name: "Bench Press", Sets: 4, Reps: "8-10", RestSec: 90, VideoID: "vcBig73ojpE"},
				{ID: "n2", Name: "Overhead Press", Sets: 3, Reps: "10-12", RestSec: 90, VideoID: "2yjwXTZQDDI"},
				{ID: "n3", Name: "Incline Dumbbell Press", Sets: 3, Reps: "12", RestSec: 60, VideoID: "8iPEnn-ltbc"},
				{ID: "n4", Name: "Lateral Raises", Sets: 3, Reps: "15", RestSec: 45, VideoID: "3VcKaXpzqRo"},
				{ID: "n5", Name: "Tricep Pushdowns", Sets: 3, Reps: "12-15", RestSec: 45, VideoID: "2-LAMcpzODU"},
			}},
		},
	},
	{
		ID: "next2", Title: "Pull Day Power",
		Description: "Schiena spessa e bicipiti scolpiti.",
		Creator:     "NEXT Workout", DurationMin: 50, Level: "Intermedio", Category: "Upper Body",
		Calories: 380, Equipment: []string{"Pull-up Bar", "Barbell", "Dumbbells"},
		Sections: []WorkoutSection{
			{Title: "Main Workout", Exercises: []Exercise{
				{ID: "n6", Name: "Deadlift", Sets: 4, Reps: "5-8", RestSec: 120, VideoID: "op9kVnSso6Q"},
				{ID: "n7", Name: "Pull-ups", Sets: 3, Reps: "Max", RestSec: 90, VideoID: "eGo4IYlbE5g"},
				{ID: "n8", Name: "Barbell Row", Sets: 3, Reps: "10-12", RestSec: 90, VideoID: "G8l_8chR5BE"},
				{ID: "n9", Name: "Face Pulls", Sets: 3, Reps: "15", RestSec: 60, VideoID: "rep-w6d3pD8"},
				{ID: "n10", Name: "Barbell Curls", Sets: 3, Reps: "10-12", RestSec: 60, VideoID: "kwG2ipFRgfo"},
			}},
		},
	},
	{
		ID: "next3", Title: "Legs & Core Crusher",
		Description: "Costruisci gambe forti e un core stabile.",
		Creator:     "NEXT Workout", DurationMin: 50, Level: "Avanzato", Category: "Lower Body",
		Calories: 450, Equipment: []string{"Barbell", "Dumbbells"},
		Sections: []WorkoutSection{
			{Title: "Main Workout", Exercises: []Exercise{
				{ID: "n11", Name: "Squat", Sets: 4, Reps: "6-10", RestSec: 120, VideoID: "SW_C1A-rejs"},
				{ID: "n12", Name: "Romanian Deadlift", Sets: 3, Reps: "10-12", RestSec: 90, VideoID: "JCXUYuzwNrM"},
				{ID: "n13", Name: "Lunges", Sets: 3, Reps: "12 per leg", RestSec: 60, VideoID: "D7KaRcUTQeE"},
				{ID: "n14", Name: "Calf Raises", Sets: 4, Reps: "15-20", RestSec: 45, VideoID: "-M4-G8p8fmc"},
				{ID: "n15", Name: "Hanging Leg Raises", Sets: 3, Reps: "12-15", RestSec: 60, VideoID: "hdng3Cm1x_c"},
			}},
		},
	},
	{
		ID: "next4", Title: "Full Body HIIT",
		Description: "Brucia calorie e migliora la resistenza.",
		Creator:     "NEXT Workout", DurationMin: 30, Level: "Intermedio", Category: "Cardio",
		Calories: 400, Equipment: []string{"None"}, VideoID: "edIK5SZYMZo",
		Sections: []WorkoutSection{
			{Title: "HIIT Circuit", Exercises: []Exercise{
				{ID: "n16", Name: "Burpees", Sets: 4, Reps: "45 sec", RestSec: 15},
				{ID: "n17", Name: "Jump Squats", Sets: 4, Reps: "45 sec", RestSec: 15},
				{ID: "n18", Name: "Mountain Climbers", Sets: 4, Reps: "45 sec", RestSec: 15},
				{ID: "n19", Name: "Plank Jacks", Sets: 4, Reps: "45 sec", RestSec: 15},
			}},
		},
	},
	{
		ID: "next5", Title: "Mobility & Skills",
		Description: "Migliora la flessibilità e impara nuove skill.",
		Creator:     "NEXT Workout", DurationMin: 40, Level: "Intermedio", Category: "Mobility",
		Calories: 200, Equipment: []string{"None"},
		Sections: []WorkoutSection{
			{Title: "Flow", Exercises: []Exercise{
				{ID: "n20", Name: "World Greatest Stretch", Sets: 3, Reps: "60 sec", RestSec: 30},
				{ID: "n21", Name: "Cat Cow", Sets: 3, Reps: "60 sec", RestSec: 30},
				{ID: "n22", Name: "Deep Squat Hold", Sets: 3, Reps: "60 sec", RestSec: 30},
				{ID: "n23", Name: "Crow Pose Practice", Sets: 5, Reps: "Max hold", RestSec: 60},
			}},
		},
	},
	{
		ID: "next6", Title: "Active Rest",
		Description: "Recupero attivo per rigenerare i muscoli.",
		Creator:     "NEXT Workout", DurationMin: 30, Level: "Principiante", Category: "Mobility",
		Calories: 150, Equipment: []string{"None"}, VideoID: "UheajlsZ72E",
		Sections: []WorkoutSection{
			{Title: "Recovery", Exercises: []Exercise{
				{ID: "n24", Name: "Light Walk / Jog", Sets: 1, Reps: "20 min", RestSec: 0},
				{ID: "n25", Name: "Foam Rolling", Sets: 1, Reps: "10 min", RestSec: 0},
			}},
		},
	},

	{
		ID: "wm1", Title: "Quest: Chest Chest",
		Description: "Completa la quest per ottenere il Chest Badge.",
		Creator:     "WildMoose", DurationMin: 40, Level: "Intermedio", Category: "Upper Body",
		Calories: 300, Equipment: []string{"Dumbbells", "Bench"}, VideoID: "EhY6cGS7F-c",
		Gamify: &Gamification{XP: 500, Badge: "Chest Guardian"},
		Sections: []WorkoutSection{
			{Title: "Boss Battle", Exercises: []Exercise{
				{ID: "wm_e1", Name: "Dumbbell Bench Press", Sets: 4, Reps: "10", RestSec: 60},
				{ID: "wm_e2", Name: "Incline Flys", Sets: 3, Reps: "12", RestSec: 60},
				{ID: "wm_e3", Name: "Push-up Finisher", Sets: 1, Reps: "Max", RestSec: 0},
			}},
		},
	},
	{
		ID: "wm_hero_quest", Title: "Hero's Full Body Quest",
		Description: "Un viaggio epico attraverso tutti i gruppi muscolari. Bilanciamento perfetto tra forza e resistenza.",
		Creator:     "WildMoose", DurationMin: 45, Level: "Intermedio", Category: "Full Body",
		Calories: 400, Equipment: []string{"Dumbbells"}, VideoID: "UheajlsZ72E",
		Gamify: &Gamification{XP: 800, Badge: "True Hero"},
		Sections: []WorkoutSection{
			{Title: "Preparation Phase", Exercises: []Exercise{
				{ID: "wm_hq1", Name: "Dynamic Stretching", Sets: 1, Reps: "3 min", RestSec: 0},
				{ID: "wm_hq2", Name: "Light Jog in Place", Sets: 1, Reps: "2 min", RestSec: 60},
			}},
			{Title: "The Adventure", Exercises: []Exercise{
				{ID: "wm_hq3", Name: "Goblet Squats", Sets: 3, Reps: "12", RestSec: 60, Notes: "Gambe potenti"},
				{ID: "wm_hq4", Name: "Push-ups", Sets: 3, Reps: "15", RestSec: 60, Notes: "Spinta"},
				{ID: "wm_hq5", Name: "Dumbbell Rows", Sets: 3, Reps: "12/side", RestSec: 60, Notes: "Trazione"},
				{ID: "wm_hq6", Name: "Overhead Press", Sets: 3, Reps: "10", RestSec: 60, Notes: "Spalle forti"},
				{ID: "wm_hq7", Name: "Walking Lunges", Sets: 3, Reps: "20 steps", RestSec: 90, Notes: "Resistenza"},
			}},
			{Title: "Victory Rest", Exercises: []Exercise{
				{ID: "wm_hq8", Name: "Full Body Stretch", Sets: 1, Reps: "5 min", RestSec: 0},
			}},
		},
	},
	{
		ID: "wm2", Title: "Quest: Back Attack",
		Description: "Sconfiggi il mal di schiena e costruisci un dorso possente.",
		Creator:     "WildMoose", DurationMin: 45, Level: "Intermedio", Category: "Upper Body",
		Calories: 320, Equipment: []string{"Pull-up Bar", "Dumbbells"}, VideoID: "eGo4IYlbE5g",
		Gamify: &Gamification{XP: 550, Badge: "Back Ranger"},
		Sections: []WorkoutSection{
			{Title: "Main Quest", Exercises: []Exercise{
				{ID: "wm_e4", Name: "Pull-ups", Sets: 3, Reps: "Max", RestSec: 90},
				{ID: "wm_e5", Name: "Dumbbell Rows", Sets: 4, Reps: "10", RestSec: 60},
				{ID: "wm_e6", Name: "Renegade Rows", Sets: 3, Reps: "10", RestSec: 60},
			}},
		},
	},
	{
		ID: "wm3", Title: "Quest: Leg Day Survival",
		Description: "Sopravvivi al giorno delle gambe per ottenere la pozione di velocità.",
		Creator:     "WildMoose", DurationMin: 50, Level: "Avanzato", Category: "Lower Body",
		Calories: 400, Equipment: []string{"Dumbbells"}, VideoID: "SW_C1A-rejs",
		Gamify: &Gamification{XP: 600, Badge: "Leg Legend"},
		Sections: []WorkoutSection{
			{Title: "The Gauntlet", Exercises: []Exercise{
				{ID: "wm_e7", Name: "Goblet Squats", Sets: 4, Reps: "12", RestSec: 90},
				{ID: "wm_e8", Name: "Walking Lunges", Sets: 3, Reps: "20 steps", RestSec: 60},
				{ID: "wm_e9", Name: "Bulgarian Split Squats", Sets: 3, Reps: "10/leg", RestSec: 90},
			}},
		},
	},
	{
		ID: "wm4", Title: "Quest: Shoulder Boulder",
		Description: "Costruisci spalle larghe come macigni.",
		Creator:     "WildMoose", DurationMin: 35, Level: "Intermedio", Category: "Upper Body",
		Calories: 250, Equipment: []string{"Dumbbells"}, VideoID: "3VcKaXpzqRo",
		Gamify: &Gamification{XP: 450, Badge: "Boulder Shoulders"},
		Sections: []WorkoutSection{
			{Title: "Summit Climb", Exercises: []Exercise{
				{ID: "wm_e10", Name: "Overhead Press", Sets: 4, Reps: "10", RestSec: 90},
				{ID: "wm_e11", Name: "Lateral Raises", Sets: 4, Reps: "15", RestSec: 45},
				{ID: "wm_e12", Name: "Face Pulls", Sets: 3, Reps: "15", RestSec: 60},
			}},
		},
	},
	{
		ID: "wm5", Title: "Quest: Arms Race",
		Description: "Bicipiti e tricipiti pronti per la battaglia.",
		Creator:     "WildMoose", DurationMin: 30, Level: "Intermedio", Category: "Upper Body",
		Calories: 200, Equipment: []string{"Dumbbells"}, VideoID: "2-LAMcpzODU",
		Gamify: &Gamification{XP: 400, Badge: "Arm Armory"},
		Sections: []WorkoutSection{
			{Title: "Weapon Sharpening", Exercises: []Exercise{
				{ID: "wm_e13", Name: "Hammer Curls", Sets: 3, Reps: "12", RestSec: 60},
				{ID: "wm_e14", Name: "Skullcrushers", Sets: 3, Reps: "12", RestSec: 60},
				{ID: "wm_e15", Name: "Concentration Curls", Sets: 2, Reps: "15", RestSec: 45},
			}},
		},
	},
	{
		ID: "wm6", Title: "Quest: Full Body Boss",
		Description: "Lo scontro finale. Tutto il corpo in un solo allenamento.",
		Creator:     "WildMoose", DurationMin: 60, Level: "Avanzato", Category: "Full Body",
		Calories: 500, Equipment: []string{"Dumbbells", "Pull-up Bar"}, VideoID: "EhY6cGS7F-c",
		Gamify: &Gamification{XP: 1000, Badge: "Boss Slayer"},
		Sections: []WorkoutSection{
			{Title: "Final Boss", Exercises: []Exercise{
				{ID: "wm_e16", Name: "Man Makers", Sets: 5, Reps: "10", RestSec: 90},
				{ID: "wm_e17", Name: "Pull-ups", Sets: 4, Reps: "Max", RestSec: 90},
				{ID: "wm_e18", Name: "Jump Squats", Sets: 4, Reps: "20", RestSec: 60},
			}},
		},
	},
	{
		ID: "wm7", Title: "Quest: Recovery Potion",
		Description: "Rigenera i tuoi HP con stretching e mobilità.",
		Creator:     "WildMoose", DurationMin: 20, Level: "Principiante", Category: "Mobility",
		Calories: 100, Equipment: []string{"None"}, VideoID: "vhcyvcbVBQQ",
		Gamify: &Gamification{XP: 200, Badge: "Zen Master"},
		Sections: []WorkoutSection{
			{Title: "Healing Pool", Exercises: []Exercise{
				{ID: "wm_e19", Name: "Child Pose", Sets: 1, Reps: "2 min", RestSec: 0},
				{ID: "wm_e20", Name: "Pigeon Pose", Sets: 1, Reps: "2 min/leg", RestSec: 0},
				{ID: "wm_e21", Name: "Downward Dog", Sets: 1, Reps: "2 min", RestSec: 0},
			}},
		},
	},
}
