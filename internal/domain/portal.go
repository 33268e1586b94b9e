package domain

// Patient is a single patient-portal record. Fixture data only; records are
// created at process start and never mutated.
type Patient struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Age             int      `json:"age"`
	Gender          string   `json:"gender"`
	MedicalHistory  string   `json:"medicalHistory"`
	CurrentSymptoms string   `json:"currentSymptoms"`
	Medications     []string `json:"medications"`
	Allergies       []string `json:"allergies"`
}

// JobPosting is a single recruiter-portal opening.
type JobPosting struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	Department     string   `json:"department"`
	Location       string   `json:"location"`
	EmploymentType string   `json:"employmentType"`
	Description    string   `json:"description"`
	Requirements   []string `json:"requirements"`
}

// Candidate is a recruiter-portal applicant. JobID may reference a posting
// that no fixture defines; nothing enforces the relationship.
type Candidate struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Headline        string   `json:"headline"`
	JobID           int      `json:"jobId"`
	Skills          []string `json:"skills"`
	YearsExperience int      `json:"yearsExperience"`
	Status          string   `json:"status"`
}

// DrugInteraction is one row of the static interaction reference table.
// The pair is unordered; lookups match either direction.
type DrugInteraction struct {
	DrugA       string `json:"drugA"`
	DrugB       string `json:"drugB"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}
