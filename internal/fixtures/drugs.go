package fixtures

import (
	"strings"

	"aura-portal/internal/domain"
)

var interactions = []domain.DrugInteraction{
	{
		DrugA:       "warfarin",
		DrugB:       "aspirin",
		Severity:    "major",
		Description: "Concurrent use increases bleeding risk. Monitor INR closely and watch for signs of hemorrhage.",
	},
	{
		DrugA:       "lisinopril",
		DrugB:       "spironolactone",
		Severity:    "moderate",
		Description: "Both agents raise serum potassium. Monitor for hyperkalemia, especially with renal impairment.",
	},
	{
		DrugA:       "metformin",
		DrugB:       "iodinated contrast",
		Severity:    "major",
		Description: "Risk of lactic acidosis with contrast-induced renal impairment. Hold metformin around imaging.",
	},
	{
		DrugA:       "albuterol",
		DrugB:       "propranolol",
		Severity:    "moderate",
		Description: "Non-selective beta blockers blunt bronchodilation and may provoke bronchospasm in asthma.",
	},
	{
		DrugA:       "simvastatin",
		DrugB:       "clarithromycin",
		Severity:    "major",
		Description: "CYP3A4 inhibition raises statin levels and myopathy risk. Suspend the statin during treatment.",
	},
}

// Interactions returns a copy of the full interaction reference table.
func Interactions() []domain.DrugInteraction {
	out := make([]domain.DrugInteraction, len(interactions))
	copy(out, interactions)
	return out
}

// InteractionBetween looks up the interaction row for a drug pair. The pair
// is unordered and matching is case-insensitive.
func InteractionBetween(a, b string) (domain.DrugInteraction, bool) {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return domain.DrugInteraction{}, false
	}
	for _, in := range interactions {
		if (in.DrugA == a && in.DrugB == b) || (in.DrugA == b && in.DrugB == a) {
			return in, true
		}
	}
	return domain.DrugInteraction{}, false
}
