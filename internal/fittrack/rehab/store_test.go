package rehab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditions(t *testing.T) {
	assert.Equal(t, []string{
		"ac_joint_arthritis",
		"ankle_post_surgery",
		"bicep_tendonitis",
		"cervical_spine_arthritis",
		"meniscus_post_surgery",
		"scapular_winging",
	}, Conditions())
}

func TestGet(t *testing.T) {
	protocol, err := Get("ac_joint_arthritis")
	require.NoError(t, err)
	assert.Equal(t, "AC Joint Arthritis Rehabilitation", protocol.Name)
	assert.NotEmpty(t, protocol.Overview)
	assert.Len(t, protocol.Phases, 4)
	assert.NotEmpty(t, protocol.KeyPrinciples)
}

func TestGet_NotFound(t *testing.T) {
	_, err := Get("unknown_condition")
	require.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "unknown_condition")
}

func TestGetPhase(t *testing.T) {
	phase, err := GetPhase("ac_joint_arthritis", 2)
	require.NoError(t, err)

	assert.Equal(t, 2, phase.Phase)
	assert.Equal(t, "Strengthening & Scapular Control (Weeks 3-6)", phase.Name)
	assert.Len(t, phase.Exercises, 5)
	assert.Len(t, phase.Restrictions, 2)
	assert.Equal(t, "Serratus anterior wall slides", phase.Exercises[0].Name)
	assert.Equal(t, "Face pulls", phase.Exercises[2].Name)
}

func TestGetPhase_OutOfRange(t *testing.T) {
	for _, phaseNum := range []int{0, 5, -1} {
		_, err := GetPhase("ac_joint_arthritis", phaseNum)
		require.ErrorIs(t, err, ErrPhaseOutOfRange, "phase %d", phaseNum)
		assert.ErrorContains(t, err, "valid: 1-4")
	}
}

func TestGetPhase_UnknownCondition(t *testing.T) {
	_, err := GetPhase("unknown_condition", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProtocols_AllHaveFourContiguousPhases(t *testing.T) {
	for _, condition := range Conditions() {
		t.Run(condition, func(t *testing.T) {
			protocol, err := Get(condition)
			require.NoError(t, err)

			require.Len(t, protocol.Phases, 4)
			for i, phase := range protocol.Phases {
				assert.Equal(t, i+1, phase.Phase)
				assert.NotEmpty(t, phase.Name)
				assert.NotEmpty(t, phase.Goals)
				assert.NotEmpty(t, phase.Exercises)
				for _, exercise := range phase.Exercises {
					assert.NotEmpty(t, exercise.Name)
					assert.NotEmpty(t, exercise.Sets)
					assert.NotEmpty(t, exercise.Reps)
				}
			}
			assert.NotEmpty(t, protocol.KeyPrinciples)
		})
	}
}

func TestMeniscusProtocol_AdditionalNotes(t *testing.T) {
	protocol, err := Get("meniscus_post_surgery")
	require.NoError(t, err)

	require.Contains(t, protocol.AdditionalNotes, "partial_meniscectomy")
	require.Contains(t, protocol.AdditionalNotes, "repair_variations")

	// only meniscus carries additional notes
	for _, condition := range Conditions() {
		if condition == "meniscus_post_surgery" {
			continue
		}
		other, err := Get(condition)
		require.NoError(t, err)
		assert.Empty(t, other.AdditionalNotes, condition)
	}
}
