package fixtures

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPatientByID(t *testing.T) {
	p, ok := PatientByID(1)
	require.True(t, ok)
	require.Equal(t, "Alice Johnson", p.Name)

	_, ok = PatientByID(999)
	require.False(t, ok)
}

func TestPatients_ReturnsCopy(t *testing.T) {
	first := Patients()
	first[0].Name = "mutated"

	again := Patients()
	require.Equal(t, "Alice Johnson", again[0].Name)
}

func TestJobByID(t *testing.T) {
	j, ok := JobByID(101)
	require.True(t, ok)
	require.Equal(t, "Registered Nurse, Pediatrics", j.Title)

	_, ok = JobByID(999)
	require.False(t, ok)
}

func TestCandidates_MayReferenceUnknownJob(t *testing.T) {
	// Nothing enforces the candidate->job relationship; a dangling JobID is
	// allowed and must survive round-tripping through the accessors.
	var dangling bool
	for _, c := range Candidates() {
		if _, ok := JobByID(c.JobID); !ok {
			dangling = true
		}
	}
	require.True(t, dangling)
}

func TestInteractionBetween(t *testing.T) {
	in, ok := InteractionBetween("warfarin", "aspirin")
	require.True(t, ok)
	require.Equal(t, "major", in.Severity)

	// order-insensitive and case-insensitive
	in, ok = InteractionBetween("Aspirin", " WARFARIN ")
	require.True(t, ok)
	require.Equal(t, "major", in.Severity)

	_, ok = InteractionBetween("warfarin", "")
	require.False(t, ok)

	_, ok = InteractionBetween("warfarin", "acetaminophen")
	require.False(t, ok)
}
