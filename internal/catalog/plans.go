package catalog

// ApprovedCreators gates which workouts are exposed to list and plan
// commands.
var ApprovedCreators = []string{"Chris Heria", "Midas Movement", "NEXT Workout", "WildMoose", "Smart Mix"}

// DefaultCreator is the plan used when settings carry no active plan or an
// unknown one.
const DefaultCreator = "Chris Heria"

// WeeklyPlans maps a creator to its fixed 7-day schedule, Monday first.
var WeeklyPlans = map[string][]PlanDay{
	"Chris Heria": {
		{Day: "Lunedì", WorkoutID: "ch1", Focus: "Abs Definition"},
		{Day: "Martedì", WorkoutID: "ch2", Focus: "Fat Burning"},
		{Day: "Mercoledì", WorkoutID: "w_gyno_focus", Focus: "Lower Chest Sculpt"},
		{Day: "Giovedì", WorkoutID: "ch4", Focus: "HIIT Cardio"},
		{Day: "Venerdì", WorkoutID: "ch_gyno_shred", Focus: "Anti-Gyno Video"},
		{Day: "Sabato", WorkoutID: "ch6", Focus: "Intense Cardio"},
		{Day: "Domenica", WorkoutID: "ch7", Focus: "Quick Abs"},
	},
	"Midas Movement": {
		{Day: "Lunedì", WorkoutID: "midas1", Focus: "Full Body Tone"},
		{Day: "Martedì", WorkoutID: "midas2", Focus: "Core Strength"},
		{Day: "Mercoledì", WorkoutID: "midas3", Focus: "Build & Burn"},
		{Day: "Giovedì", WorkoutID: "midas4", Focus: "Abs & Cardio"},
		{Day: "Venerdì", WorkoutID: "midas1", Focus: "Full Body Pump"},
		{Day: "Sabato", WorkoutID: "midas3", Focus: "Max Hypertrophy"},
		{Day: "Domenica", WorkoutID: "midas2", Focus: "Active Recovery"},
	},
	"NEXT Workout": {
		{Day: "Lunedì", WorkoutID: "next1", Focus: "Push (Petto/Spalle/Tricipiti)"},
		{Day: "Martedì", WorkoutID: "next2", Focus: "Pull (Schiena/Bicipiti)"},
		{Day: "Mercoledì", WorkoutID: "next3", Focus: "Legs & Core"},
		{Day: "Giovedì", WorkoutID: "next4", Focus: "Full Body HIIT"},
		{Day: "Venerdì", WorkoutID: "next1", Focus: "Upper Body Power"},
		{Day: "Sabato", WorkoutID: "next5", Focus: "Mobility & Skills"},
		{Day: "Domenica", WorkoutID: "next6", Focus: "Active Rest"},
	},
	"WildMoose": {
		{Day: "Lunedì", WorkoutID: "wm1", Focus: "Quest: Chest Chest"},
		{Day: "Martedì", WorkoutID: "wm2", Focus: "Quest: Back Attack"},
		{Day: "Mercoledì", WorkoutID: "wm3", Focus: "Quest: Leg Day Survival"},
		{Day: "Giovedì", WorkoutID: "wm4", Focus: "Quest: Shoulder Boulder"},
		{Day: "Venerdì", WorkoutID: "wm5", Focus: "Quest: Arms Race"},
		{Day: "Sabato", WorkoutID: "wm6", Focus: "Quest: Full Body Boss"},
		{Day: "Domenica", WorkoutID: "wm7", Focus: "Quest: Recovery Potion"},
	},
	"Smart Mix": {
		{Day: "Lunedì", WorkoutID: "next1", Focus: "Upper Strength (NEXT)"},
		{Day: "Martedì", WorkoutID: "wm2", Focus: "Back & Core (WildMoose)"},
		{Day: "Mercoledì", WorkoutID: "midas4", Focus: "Cardio & Abs (Midas)"},
		{Day: "Giovedì", WorkoutID: "wm3", Focus: "Leg Day (WildMoose)"},
		{Day: "Venerdì", WorkoutID: "ch4", Focus: "HIIT Shred (Chris Heria)"},
		{Day: "Sabato", WorkoutID: "midas1", Focus: "Full Body Tone (Midas)"},
		{Day: "Domenica", WorkoutID: "next6", Focus: "Recovery (NEXT)"},
	},
}
