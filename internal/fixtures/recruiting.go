package fixtures

import "aura-portal/internal/domain"

var jobs = []domain.JobPosting{
	{
		ID:             101,
		Title:          "Registered Nurse, Pediatrics",
		Department:     "Nursing",
		Location:       "Boston, MA",
		EmploymentType: "Full-time",
		Description:    "Provide bedside care on the pediatric ward and coordinate with attending physicians on care plans.",
		Requirements:   []string{"Active RN license", "2+ years pediatric experience", "BLS certification"},
	},
	{
		ID:             102,
		Title:          "Clinical Data Analyst",
		Department:     "Health Informatics",
		Location:       "Remote",
		EmploymentType: "Full-time",
		Description:    "Build reporting pipelines over EHR exports and support quality-of-care dashboards.",
		Requirements:   []string{"SQL", "Experience with HL7 or FHIR data", "Dashboarding tools"},
	},
	{
		ID:             103,
		Title:          "Medical Receptionist",
		Department:     "Front Office",
		Location:       "Boston, MA",
		EmploymentType: "Part-time",
		Description:    "Schedule appointments, greet patients, and manage intake paperwork for a busy family practice.",
		Requirements:   []string{"Customer service experience", "Familiarity with scheduling software"},
	},
}

var candidates = []domain.Candidate{
	{
		ID:              501,
		Name:            "Dana Whitfield",
		Headline:        "Pediatric RN with 6 years of acute care experience",
		JobID:           101,
		Skills:          []string{"Pediatric nursing", "Triage", "Patient education"},
		YearsExperience: 6,
		Status:          "Interviewing",
	},
	{
		ID:              502,
		Name:            "Marcus Oyelaran",
		Headline:        "Data analyst focused on clinical quality metrics",
		JobID:           102,
		Skills:          []string{"SQL", "Python", "FHIR"},
		YearsExperience: 4,
		Status:          "Screening",
	},
	{
		ID:              503,
		Name:            "Elena Petrova",
		Headline:        "Front-desk coordinator, multilingual",
		JobID:           199, // references a posting no fixture defines
		Skills:          []string{"Scheduling", "Spanish", "Russian"},
		YearsExperience: 3,
		Status:          "Applied",
	},
}

// Jobs returns a copy of every job posting.
func Jobs() []domain.JobPosting {
	out := make([]domain.JobPosting, len(jobs))
	copy(out, jobs)
	return out
}

// JobByID returns the posting with the given ID, or false when no fixture
// defines it.
func JobByID(id int) (domain.JobPosting, bool) {
	for _, j := range jobs {
		if j.ID == id {
			return j, true
		}
	}
	return domain.JobPosting{}, false
}

// Candidates returns a copy of every candidate record.
func Candidates() []domain.Candidate {
	out := make([]domain.Candidate, len(candidates))
	copy(out, candidates)
	return out
}
