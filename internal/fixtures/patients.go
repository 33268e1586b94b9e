// Package fixtures holds the hand-authored portal data. Everything here is
// immutable: the slices are defined once at process start and accessors hand
// out copies so callers can never mutate the shared literals.
package fixtures

import "aura-portal/internal/domain"

var patients = []domain.Patient{
	{
		ID:              1,
		Name:            "Alice Johnson",
		Age:             8,
		Gender:          "Female",
		MedicalHistory:  "No significant past medical history. Up to date on vaccinations.",
		CurrentSymptoms: "Fever (101.5F), cough for 3 days, runny nose, decreased appetite. Mother reports child seems tired and fussy.",
		Medications:     []string{},
		Allergies:       []string{},
	},
	{
		ID:              2,
		Name:            "Bobby Chen",
		Age:             12,
		Gender:          "Male",
		MedicalHistory:  "Mild asthma, uses albuterol inhaler as needed. No recent hospitalizations.",
		CurrentSymptoms: "Wheezing, shortness of breath after playing soccer. Used inhaler twice today with minimal relief.",
		Medications:     []string{"Albuterol inhaler (as needed)"},
		Allergies:       []string{"Penicillin"},
	},
	{
		ID:              3,
		Name:            "Maria Rodriguez",
		Age:             5,
		Gender:          "Female",
		MedicalHistory:  "Born at 36 weeks, no complications. Normal development milestones.",
		CurrentSymptoms: "Ear pain, pulling at right ear, low-grade fever (100.2F), irritability especially when lying down.",
		Medications:     []string{},
		Allergies:       []string{},
	},
	{
		ID:              4,
		Name:            "Priya Natarajan",
		Age:             34,
		Gender:          "Female",
		MedicalHistory:  "Hypertension and type 2 diabetes, both diet-controlled until last year. Family history of heart disease (father) and diabetes (mother).",
		CurrentSymptoms: "Intermittent headaches and fatigue over the past two weeks. Blood pressure at home readings around 130/85.",
		Medications:     []string{"Lisinopril 10mg", "Metformin 500mg"},
		Allergies:       []string{"Penicillin", "Shellfish"},
	},
}

// Patients returns a copy of every patient record.
func Patients() []domain.Patient {
	out := make([]domain.Patient, len(patients))
	copy(out, patients)
	return out
}

// PatientByID returns the patient with the given ID, or false when no
// fixture defines it.
func PatientByID(id int) (domain.Patient, bool) {
	for _, p := range patients {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Patient{}, false
}
