// Package rehab holds the static physical therapy protocol store: six
// conditions, four phases each. The tables are process-wide constants built
// once at init and never mutated.
package rehab

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrNotFound        = errors.New("protocol not found")
	ErrPhaseOutOfRange = errors.New("phase out of range")
)

// Exercise is one prescribed exercise within a phase. Sets and reps are
// free-form strings: the protocol data mixes literal counts ("3") with
// descriptive text ("30 sec", "N/A", "Varies", "Throughout day").
type Exercise struct {
	Name      string `json:"name"`
	Sets      string `json:"sets"`
	Reps      string `json:"reps"`
	Frequency string `json:"frequency"`
	Notes     string `json:"notes"`
}

// Phase is a time-bounded stage of a protocol, addressable by its 1-based number.
type Phase struct {
	Phase        int        `json:"phase"`
	Name         string     `json:"name"`
	Goals        []string   `json:"goals"`
	Exercises    []Exercise `json:"exercises"`
	Restrictions []string   `json:"restrictions"`
}

// Protocol is the full rehab program for one condition.
type Protocol struct {
	Name            string            `json:"name"`
	Overview        string            `json:"overview"`
	Phases          []Phase           `json:"phases"`
	AdditionalNotes map[string]string `json:"additional_notes,omitempty"`
	KeyPrinciples   []string          `json:"key_principles"`
}

// Conditions returns the known condition identifiers, sorted.
func Conditions() []string {
	conditions := make([]string, 0, len(protocols))
	for c := range protocols {
		conditions = append(conditions, c)
	}
	sort.Strings(conditions)
	return conditions
}

// Get returns the whole protocol for a condition, or ErrNotFound.
// The returned value is a shared read-only view, callers must not mutate it.
func Get(condition string) (Protocol, error) {
	protocol, ok := protocols[condition]
	if !ok {
		return Protocol{}, fmt.Errorf("%w: %s", ErrNotFound, condition)
	}
	return protocol, nil
}

// GetPhase returns one phase of a protocol by its 1-based number. The phase
// bound is validated upstream too, but the accessor defends it itself.
func GetPhase(condition string, phaseNum int) (Phase, error) {
	protocol, err := Get(condition)
	if err != nil {
		return Phase{}, err
	}
	if phaseNum < 1 || phaseNum > len(protocol.Phases) {
		return Phase{}, fmt.Errorf("%w: %d (valid: 1-%d)", ErrPhaseOutOfRange, phaseNum, len(protocol.Phases))
	}
	return protocol.Phases[phaseNum-1], nil
}

var protocols = map[string]Protocol{
	"ac_joint_arthritis": {
		Name:     "AC Joint Arthritis Rehabilitation",
		Overview: "Evidence-based protocol for managing AC joint osteoarthritis. Focus on scapular stabilization, pain reduction, and avoiding overhead/cross-body movements.",
		Phases: []Phase{
			{
				Phase: 1,
				Name:  "Pain Control & Initial Mobility (Weeks 1-3)",
				Goals: []string{"Reduce inflammation", "Restore pain-free ROM", "Begin gentle scapular activation"},
				Exercises: []Exercise{
					{Name: "Pendulum exercises", Sets: "3", Reps: "20", Frequency: "3x/day", Notes: "Gentle, pain-free circles"},
					{Name: "Supine shoulder flexion with dowel", Sets: "3", Reps: "15", Frequency: "Daily", Notes: "Use unaffected arm to assist"},
					{Name: "Scapular retraction (isometric)", Sets: "3", Reps: "10-sec hold", Frequency: "2x/day", Notes: "Squeeze shoulder blades together"},
					{Name: "Wall slides", Sets: "3", Reps: "10", Frequency: "Daily", Notes: "Keep back flat against wall"},
				},
				Restrictions: []string{"Avoid overhead reaching", "No cross-body movements", "Limit weight-bearing through arm"},
			},
			{
				Phase: 2,
				Name:  "Strengthening & Scapular Control (Weeks 3-6)",
				Goals: []string{"Improve scapular muscle balance", "Progress ROM", "Begin rotator cuff strengthening"},
				Exercises: []Exercise{
					{Name: "Serratus anterior wall slides", Sets: "3", Reps: "12", Frequency: "Daily", Notes: "Focus on protraction"},
					{Name: "Lower trap Y-raises (prone)", Sets: "3", Reps: "12", Frequency: "3x/week", Notes: "Light weight, thumbs up"},
					{Name: "Face pulls", Sets: "3", Reps: "15", Frequency: "3x/week", Notes: "Safe AC joint exercise"},
					{Name: "External rotation (side-lying)", Sets: "3", Reps: "15", Frequency: "3x/week", Notes: "Light resistance"},
					{Name: "Scapular plane elevation", Sets: "3", Reps: "12", Frequency: "3x/week", Notes: "30-45° angle, not directly overhead"},
				},
				Restrictions: []string{"Keep elevation < 90° initially", "Avoid bench press/dips"},
			},
			{
				Phase: 3,
				Name:  "Progressive Loading (Weeks 6-12)",
				Goals: []string{"Increase strength", "Improve endurance", "Return to functional activities"},
				Exercises: []Exercise{
					{Name: "Landmine press", Sets: "3", Reps: "10", Frequency: "2-3x/week", Notes: "AC-joint safe pressing"},
					{Name: "Cable rows (all variations)", Sets: "3", Reps: "12", Frequency: "2-3x/week", Notes: "Maintain scapular control"},
					{Name: "Neutral-grip DB press", Sets: "3", Reps: "10", Frequency: "2x/week", Notes: "Scapular plane"},
					{Name: "TRX/suspension trainer rows", Sets: "3", Reps: "15", Frequency: "2x/week", Notes: "Body weight progression"},
					{Name: "Bear crawls", Sets: "3", Reps: "30 sec", Frequency: "2x/week", Notes: "Serratus activation"},
				},
				Restrictions: []string{"Progress weight slowly", "Monitor for pain flare-ups"},
			},
			{
				Phase: 4,
				Name:  "Return to Training (Week 12+)",
				Goals: []string{"Maintain strength gains", "Prevent reinjury", "Full functional capacity"},
				Exercises: []Exercise{
					{Name: "Continue Phase 3 exercises", Sets: "3", Reps: "8-12", Frequency: "2-3x/week", Notes: "Progressive overload via RPE"},
					{Name: "Sport-specific movements", Sets: "3", Reps: "Varies", Frequency: "As needed", Notes: "Gradually reintroduce activities"},
				},
				Restrictions: []string{"Permanently avoid flat bench press", "Minimize cross-body loading"},
			},
		},
		KeyPrinciples: []string{
			"Scapular stabilization is foundation",
			"Avoid provocative movements (overhead press, wide-grip bench)",
			"Progressive loading matched to tissue tolerance",
			"RPE-based progression (start RPE 6-7, progress to 8-9)",
		},
	},

	"bicep_tendonitis": {
		Name:     "Bicep Tendonitis Rehabilitation",
		Overview: "Multimodal approach: eccentric loading, manual therapy, scapular strengthening. Progressive loading matched to pain/irritability.",
		Phases: []Phase{
			{
				Phase: 1,
				Name:  "Pain Management & Load Tolerance (Weeks 1-2)",
				Goals: []string{"Reduce pain/inflammation", "Avoid tendon aggravation", "Begin isometric training"},
				Exercises: []Exercise{
					{Name: "Isometric bicep hold (90° elbow)", Sets: "3", Reps: "30-45 sec", Frequency: "Daily", Notes: "Sub-maximal, pain-free"},
					{Name: "Scapular retraction", Sets: "3", Reps: "15", Frequency: "2x/day", Notes: "Reduce anterior shoulder stress"},
					{Name: "Pec minor stretch (doorway)", Sets: "3", Reps: "30 sec", Frequency: "2x/day", Notes: "Open anterior thorax"},
					{Name: "Ice after activity", Sets: "1", Reps: "15 min", Frequency: "As needed", Notes: "Reduce inflammation"},
				},
				Restrictions: []string{"Avoid overhead activities", "No heavy lifting", "Limit cross-body movements"},
			},
			{
				Phase: 2,
				Name:  "Eccentric Loading & Mobility (Weeks 2-6)",
				Goals: []string{"Progressive tendon loading", "Improve tissue capacity", "Restore ROM"},
				Exercises: []Exercise{
					{Name: "Eccentric bicep curls", Sets: "3", Reps: "10", Frequency: "3x/week", Notes: "Slow 4-5 sec negative, light weight"},
					{Name: "Bicep stretch (arm extended)", Sets: "3", Reps: "30 sec", Frequency: "Daily", Notes: "Gentle, pain-free"},
					{Name: "Shoulder flexion ROM", Sets: "3", Reps: "15", Frequency: "Daily", Notes: "Progress overhead gradually"},
					{Name: "Rotator cuff strengthening", Sets: "3", Reps: "12", Frequency: "3x/week", Notes: "Light bands/dumbbells"},
				},
				Restrictions: []string{"Avoid explosive movements", "Long-lever arm exercises only with clearance"},
			},
			{
				Phase: 3,
				Name:  "Progressive Resistance (Weeks 6-12)",
				Goals: []string{"Build tendon resilience", "Return to functional strength", "Improve shoulder complex coordination"},
				Exercises: []Exercise{
					{Name: "Heavy slow resistance curls", Sets: "4", Reps: "6-8", Frequency: "2-3x/week", Notes: "Controlled tempo, full ROM"},
					{Name: "Hammer curls", Sets: "3", Reps: "10", Frequency: "2x/week", Notes: "Neutral grip reduces stress"},
					{Name: "Scapular strengthening (all planes)", Sets: "3", Reps: "12", Frequency: "3x/week", Notes: "Rows, Y-raises, T-raises"},
					{Name: "Closed-chain exercises", Sets: "3", Reps: "10", Frequency: "2x/week", Notes: "Push-up variations, planks"},
				},
				Restrictions: []string{"Monitor pain/irritability", "Adjust load if symptoms increase"},
			},
			{
				Phase: 4,
				Name:  "Return to Activity (Week 12+)",
				Goals: []string{"Maintain tendon health", "Full functional capacity", "Prevent recurrence"},
				Exercises: []Exercise{
					{Name: "Continue Phase 3 exercises", Sets: "3", Reps: "8-12", Frequency: "2-3x/week", Notes: "Maintenance program"},
					{Name: "Sport-specific training", Sets: "Varies", Reps: "Varies", Frequency: "As needed", Notes: "Gradual return"},
				},
				Restrictions: []string{"Avoid sudden increases in training volume"},
			},
		},
		KeyPrinciples: []string{
			"Eccentric exercise is most effective intervention",
			"Progressive loading matched to tissue capacity",
			"Address scapular dysfunction (common comorbidity)",
			"Consider dry needling if available",
		},
	},

	"cervical_spine_arthritis": {
		Name:     "Cervical Spine Arthritis & Cervical Radiculopathy",
		Overview: "Exercise therapy, manual therapy, and postural training. Focus on deep neck flexor/extensor strengthening and ROM.",
		Phases: []Phase{
			{
				Phase: 1,
				Name:  "Pain Reduction & Postural Awareness (Weeks 1-2)",
				Goals: []string{"Reduce pain/inflammation", "Improve posture", "Begin gentle ROM"},
				Exercises: []Exercise{
					{Name: "Chin tucks", Sets: "3", Reps: "15", Frequency: "3-4x/day", Notes: "Tuck chin without flexing head forward"},
					{Name: "Isometric neck flexion", Sets: "3", Reps: "10-sec hold", Frequency: "2x/day", Notes: "Press hand against forehead, resist"},
					{Name: "Isometric neck extension", Sets: "3", Reps: "10-sec hold", Frequency: "2x/day", Notes: "Press hand against back of head"},
					{Name: "Gentle neck rotation", Sets: "3", Reps: "10", Frequency: "Daily", Notes: "Pain-free ROM only"},
					{Name: "Postural correction cues", Sets: "Throughout day", Reps: "N/A", Frequency: "Hourly", Notes: "Neutral spine, avoid forward head posture"},
				},
				Restrictions: []string{"Avoid prolonged neck flexion (looking down at phone)", "No heavy lifting overhead"},
			},
			{
				Phase: 2,
				Name:  "Strengthening & Mobility (Weeks 2-6)",
				Goals: []string{"Strengthen deep neck flexors/extensors", "Improve ROM all planes", "Build endurance"},
				Exercises: []Exercise{
					{Name: "Deep neck flexor training", Sets: "3", Reps: "20-30 sec", Frequency: "Daily", Notes: "Supine, nod head without lifting"},
					{Name: "Neck extension strengthening", Sets: "3", Reps: "12", Frequency: "3x/week", Notes: "Prone or seated with resistance"},
					{Name: "Cervical rotation with resistance", Sets: "3", Reps: "10", Frequency: "3x/week", Notes: "Use light band"},
					{Name: "Scapular retraction rows", Sets: "3", Reps: "15", Frequency: "3x/week", Notes: "Reduce cervical load"},
					{Name: "Thoracic spine extension", Sets: "3", Reps: "10", Frequency: "Daily", Notes: "Foam roller or prone cobras"},
				},
				Restrictions: []string{"Avoid end-range extension if radiculopathy present"},
			},
			{
				Phase: 3,
				Name:  "Progressive Loading & Function (Weeks 6-12)",
				Goals: []string{"Increase strength/endurance", "Return to normal activities", "Improve cardiovascular fitness"},
				Exercises: []Exercise{
					{Name: "Neck endurance training (isometric)", Sets: "3", Reps: "60+ sec", Frequency: "3x/week", Notes: "Multiple angles"},
					{Name: "Upper trap/levator scapulae strengthening", Sets: "3", Reps: "12", Frequency: "2x/week", Notes: "Shrugs with control"},
					{Name: "Postural strengthening (standing)", Sets: "3", Reps: "15", Frequency: "3x/week", Notes: "Wall angels, band pull-aparts"},
					{Name: "Cardiovascular training", Sets: "1", Reps: "20-30 min", Frequency: "3-5x/week", Notes: "Walking, cycling (proper neck position)"},
				},
				Restrictions: []string{"Maintain neutral spine during all activities"},
			},
			{
				Phase: 4,
				Name:  "Maintenance & Prevention (Week 12+)",
				Goals: []string{"Sustain gains", "Prevent recurrence", "Optimize ergonomics"},
				Exercises: []Exercise{
					{Name: "Continue Phase 3 exercises", Sets: "2-3", Reps: "10-15", Frequency: "2-3x/week", Notes: "Maintenance program"},
					{Name: "Ergonomic adjustments", Sets: "N/A", Reps: "N/A", Frequency: "Ongoing", Notes: "Workstation setup, sleep position"},
				},
				Restrictions: []string{"Avoid prolonged static postures"},
			},
		},
		KeyPrinciples: []string{
			"Deep neck flexor strengthening is key",
			"Address thoracic spine mobility (often restricted)",
			"Postural correction crucial for long-term success",
			"Manual therapy effective adjunct (if available)",
		},
	},

	"scapular_winging": {
		Name:     "Scapular Winging Rehabilitation",
		Overview: "Conservative management for serratus anterior, trapezius, or rhomboid weakness. Focus on scapular stabilization, ROM maintenance, and gradual strengthening.",
		Phases: []Phase{
			{
				Phase: 1,
				Name:  "Protection & ROM (Weeks 1-6)",
				Goals: []string{"Maintain ROM", "Prevent contracture", "Avoid stretching paralyzed muscle"},
				Exercises: []Exercise{
					{Name: "Supine shoulder flexion (passive)", Sets: "3", Reps: "15", Frequency: "Daily", Notes: "Body weight prevents winging"},
					{Name: "Shoulder rolls", Sets: "3", Reps: "15", Frequency: "2x/day", Notes: "Gentle, pain-free"},
					{Name: "Scapular protraction (wall)", Sets: "3", Reps: "12", Frequency: "Daily", Notes: "Push-plus position"},
					{Name: "Avoid serratus stretching", Sets: "N/A", Reps: "N/A", Frequency: "N/A", Notes: "Do NOT stretch affected muscle"},
				},
				Restrictions: []string{"No overhead activities", "Avoid heavy lifting", "Consider scapular brace (if tolerated)"},
			},
			{
				Phase: 2,
				Name:  "Reinnervation & Initial Strengthening (Weeks 6-24)",
				Goals: []string{"Promote nerve recovery", "Begin strengthening after reinnervation signs", "Improve motor control"},
				Exercises: []Exercise{
					{Name: "Serratus wall slides (if reinnervation present)", Sets: "3", Reps: "10", Frequency: "Daily", Notes: "Only after muscle activation"},
					{Name: "Scapular push-ups (modified)", Sets: "3", Reps: "8", Frequency: "3x/week", Notes: "Wall or elevated surface"},
					{Name: "Bear crawl hold", Sets: "3", Reps: "15-30 sec", Frequency: "3x/week", Notes: "Serratus activation"},
					{Name: "Compensatory strengthening (trap/rhomboids)", Sets: "3", Reps: "12", Frequency: "3x/week", Notes: "Support scapular position"},
				},
				Restrictions: []string{"Progress only with evidence of reinnervation", "Avoid overstressing recovering muscle"},
			},
			{
				Phase: 3,
				Name:  "Progressive Strengthening (6-24 months)",
				Goals: []string{"Build strength/endurance", "Improve functional capacity", "Compensatory strengthening"},
				Exercises: []Exercise{
					{Name: "Push-up progressions", Sets: "3", Reps: "As able", Frequency: "3x/week", Notes: "Elevate to floor push-ups"},
					{Name: "Rows (all variations)", Sets: "3", Reps: "12", Frequency: "3x/week", Notes: "Strengthen scapular retractors"},
					{Name: "Plank variations", Sets: "3", Reps: "30-60 sec", Frequency: "3x/week", Notes: "Serratus endurance"},
					{Name: "Upper trap/levator scapulae work", Sets: "3", Reps: "12", Frequency: "2x/week", Notes: "Compensatory muscles"},
				},
				Restrictions: []string{"Recovery is slow (6-24 months)", "Some cases may not fully recover"},
			},
			{
				Phase: 4,
				Name:  "Functional Return (24+ months or surgical consideration)",
				Goals: []string{"Maximize function", "Determine need for surgical intervention", "Adaptations"},
				Exercises: []Exercise{
					{Name: "Continue Phase 3 exercises", Sets: "3", Reps: "10-15", Frequency: "2-3x/week", Notes: "Maintenance"},
					{Name: "Task-specific training", Sets: "Varies", Reps: "Varies", Frequency: "As needed", Notes: "Functional activities"},
				},
				Restrictions: []string{"If no recovery by 24 months, surgical options considered"},
			},
		},
		KeyPrinciples: []string{
			"Conservative management for 6-24 months minimum",
			"Do NOT stretch paralyzed muscle (impairs recovery)",
			"Strengthen compensatory muscles",
			"Scapular brace may help but compliance often poor",
			"Spontaneous recovery 21-78% depending on cause",
		},
	},

	"ankle_post_surgery": {
		Name:     "Post-Ankle Surgery Rehabilitation",
		Overview: "Phased protocol for ankle ORIF, ligament repair, or arthroscopy. Progressive weight-bearing, ROM, and strengthening.",
		Phases: []Phase{
			{
				Phase: 1,
				Name:  "Immediate Post-Op (Weeks 0-6)",
				Goals: []string{"Control swelling", "Protect healing structures", "Maintain proximal strength"},
				Exercises: []Exercise{
					{Name: "Ankle pumps", Sets: "3", Reps: "20", Frequency: "Every 2 hours", Notes: "Toe up, toe down—reduce swelling"},
					{Name: "Isometric quad sets", Sets: "3", Reps: "15", Frequency: "3x/day", Notes: "Maintain quad strength"},
					{Name: "Straight leg raises", Sets: "3", Reps: "15", Frequency: "2x/day", Notes: "Hip flexor strength"},
					{Name: "Towel stretches (gentle)", Sets: "3", Reps: "30 sec", Frequency: "Daily", Notes: "Begin plantar/dorsiflexion ROM"},
					{Name: "Ice/elevation", Sets: "Multiple", Reps: "15-20 min", Frequency: "3-4x/day", Notes: "Control swelling"},
				},
				Restrictions: []string{"Non-weight-bearing (NWB) per MD orders", "Boot/cast immobilization", "No driving"},
			},
			{
				Phase: 2,
				Name:  "Progressive Weight-Bearing (Weeks 6-12)",
				Goals: []string{"Progress to full weight-bearing", "Restore ROM", "Begin strengthening"},
				Exercises: []Exercise{
					{Name: "Gait training with assistive device", Sets: "Multiple", Reps: "As tolerated", Frequency: "Daily", Notes: "Partial → full WB"},
					{Name: "AAROM (alphabet tracing)", Sets: "3", Reps: "3x alphabet", Frequency: "2x/day", Notes: "Improve ROM"},
					{Name: "Calf raises (bilateral)", Sets: "3", Reps: "10", Frequency: "Daily", Notes: "Progress to single-leg"},
					{Name: "Theraband resistance (all planes)", Sets: "3", Reps: "15", Frequency: "Daily", Notes: "DF, PF, inversion, eversion"},
					{Name: "Balance exercises (bilateral)", Sets: "3", Reps: "30 sec", Frequency: "Daily", Notes: "Single-leg as able"},
				},
				Restrictions: []string{"No running/jumping", "Protected WB per protocol"},
			},
			{
				Phase: 3,
				Name:  "Strengthening & Proprioception (Weeks 12-16)",
				Goals: []string{"Build strength/endurance", "Improve balance/proprioception", "Prepare for functional activities"},
				Exercises: []Exercise{
					{Name: "Single-leg calf raises", Sets: "3", Reps: "15", Frequency: "3x/week", Notes: "Full ankle strength"},
					{Name: "Single-leg balance (unstable surface)", Sets: "3", Reps: "60 sec", Frequency: "Daily", Notes: "Progress to eyes closed"},
					{Name: "Lateral band walks", Sets: "3", Reps: "15", Frequency: "3x/week", Notes: "Hip/ankle stability"},
					{Name: "Step-ups/step-downs", Sets: "3", Reps: "12", Frequency: "3x/week", Notes: "Eccentric control"},
					{Name: "Heel-toe walking", Sets: "3", Reps: "20 steps", Frequency: "Daily", Notes: "ROM + balance"},
				},
				Restrictions: []string{"No high-impact activities yet"},
			},
			{
				Phase: 4,
				Name:  "Return to Activity (Week 16+)",
				Goals: []string{"Return to sport/activity", "Prevent reinjury", "Full functional capacity"},
				Exercises: []Exercise{
					{Name: "Running progression", Sets: "Varies", Reps: "Varies", Frequency: "Per protocol", Notes: "Walk/jog intervals → full run"},
					{Name: "Agility drills", Sets: "3", Reps: "Varies", Frequency: "3x/week", Notes: "Cone drills, cutting"},
					{Name: "Plyometrics (box jumps, hops)", Sets: "3", Reps: "10", Frequency: "2x/week", Notes: "Power development"},
					{Name: "Sport-specific training", Sets: "Varies", Reps: "Varies", Frequency: "As needed", Notes: "Gradual return"},
				},
				Restrictions: []string{"Functional testing (hop tests) before full return", "Brace/taping as needed"},
			},
		},
		KeyPrinciples: []string{
			"Early ankle mobilization (post-immobilization) improves outcomes",
			"Progressive weight-bearing protocols vary by surgery type",
			"Proprioception training critical for reinjury prevention",
			"Expect 4-6 months for full return to high-impact activities",
		},
	},

	"meniscus_post_surgery": {
		Name:     "Post-Meniscus Surgery Rehabilitation",
		Overview: "Protocol varies by tear type (repair vs. partial meniscectomy). Repairs require protected weight-bearing and slower ROM progression.",
		Phases: []Phase{
			{
				Phase: 1,
				Name:  "Immediate Post-Op - MENISCUS REPAIR (Weeks 0-3)",
				Goals: []string{"Protect repair", "Control swelling", "Maintain quad strength"},
				Exercises: []Exercise{
					{Name: "Quad sets", Sets: "3", Reps: "20", Frequency: "3x/day", Notes: "Isometric quad activation"},
					{Name: "Straight leg raises", Sets: "3", Reps: "15", Frequency: "2x/day", Notes: "Keep knee straight"},
					{Name: "Hamstring sets", Sets: "3", Reps: "15", Frequency: "2x/day", Notes: "Gentle isometric"},
					{Name: "Ankle pumps", Sets: "3", Reps: "20", Frequency: "Hourly", Notes: "Prevent DVT"},
					{Name: "PROM/AAROM (0-90°)", Sets: "3", Reps: "10", Frequency: "Daily", Notes: "Limited ROM initially"},
				},
				Restrictions: []string{"Toe-touch weight-bearing only (repair)", "Brace locked in extension", "ROM limited to 90° flexion"},
			},
			{
				Phase: 2,
				Name:  "Protected Weight-Bearing - REPAIR (Weeks 3-8)",
				Goals: []string{"Progress WB gradually", "Increase ROM to 125°", "Begin closed-chain exercises"},
				Exercises: []Exercise{
					{Name: "Gait training (progressive WB)", Sets: "Multiple", Reps: "As tolerated", Frequency: "Daily", Notes: "25% → 50% → 75% → full WB"},
					{Name: "Heel slides", Sets: "3", Reps: "15", Frequency: "Daily", Notes: "Progress ROM"},
					{Name: "Mini-squats (bilateral)", Sets: "3", Reps: "12", Frequency: "3x/week", Notes: "0-45° flexion"},
					{Name: "Leg press (light)", Sets: "3", Reps: "15", Frequency: "2x/week", Notes: "Closed-chain strengthening"},
					{Name: "Stationary bike (low resistance)", Sets: "1", Reps: "10-15 min", Frequency: "Daily", Notes: "ROM + cardiovascular"},
				},
				Restrictions: []string{"No open-chain quad exercises yet", "Avoid deep squatting", "No pivoting/twisting"},
			},
			{
				Phase: 3,
				Name:  "Strengthening & ROM - REPAIR (Weeks 8-16)",
				Goals: []string{"Full ROM", "Progressive strengthening", "Improve proprioception"},
				Exercises: []Exercise{
					{Name: "Full ROM exercises", Sets: "3", Reps: "15", Frequency: "Daily", Notes: "0-135°+ flexion"},
					{Name: "Leg press (progressive load)", Sets: "3", Reps: "12", Frequency: "3x/week", Notes: "Build quad strength"},
					{Name: "Step-ups", Sets: "3", Reps: "12", Frequency: "3x/week", Notes: "Functional strength"},
					{Name: "Single-leg balance", Sets: "3", Reps: "60 sec", Frequency: "Daily", Notes: "Progress to unstable surface"},
					{Name: "Hamstring curls", Sets: "3", Reps: "15", Frequency: "3x/week", Notes: "Posterior chain"},
					{Name: "Open-chain quad exercises (light)", Sets: "3", Reps: "12", Frequency: "2x/week", Notes: "After 12 weeks"},
				},
				Restrictions: []string{"No running until week 12+", "No cutting/jumping until cleared"},
			},
			{
				Phase: 4,
				Name:  "Return to Sport - REPAIR (4-6+ months)",
				Goals: []string{"Return to full activity", "Pass functional tests", "Prevent reinjury"},
				Exercises: []Exercise{
					{Name: "Running progression", Sets: "Varies", Reps: "Varies", Frequency: "Per protocol", Notes: "Gradual return"},
					{Name: "Agility drills", Sets: "3", Reps: "Varies", Frequency: "3x/week", Notes: "Cutting, pivoting"},
					{Name: "Plyometrics", Sets: "3", Reps: "10", Frequency: "2-3x/week", Notes: "Box jumps, depth jumps"},
					{Name: "Sport-specific training", Sets: "Varies", Reps: "Varies", Frequency: "As needed", Notes: "Full clearance from MD"},
				},
				Restrictions: []string{"Must pass hop tests (>90% limb symmetry)", "Minimum 4-6 months for repair"},
			},
		},
		AdditionalNotes: map[string]string{
			"partial_meniscectomy": "Faster protocol—full WB immediately, ROM unlimited, return to sport 4-8 weeks",
			"repair_variations":    "Radial/root tears require 6-9 months due to disrupted hoop stress",
		},
		KeyPrinciples: []string{
			"Repair vs. meniscectomy = vastly different timelines",
			"Protected WB for repairs (hoop stress preservation)",
			"ROM progression slower for repairs to avoid gap formation",
			"~90% return to sport rate for isolated repairs",
		},
	},
}
