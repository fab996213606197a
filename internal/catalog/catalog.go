// Package catalog exposes the fixed BRACU curriculum: course codes and
// names, the prerequisite/unlock graph, category streams, credit weights and
// program credit requirements.
package catalog

import "sort"

// Known reports whether code belongs to the institutional course set.
func Known(code string) bool {
	_, ok := Unlocks[code]
	return ok
}

// AllCodes returns every course code in the catalog, sorted.
func AllCodes() []string {
	out := make([]string, 0, len(Unlocks))
	for c := range Unlocks {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// NameFor returns the display name for a course, falling back to the code
// itself when the catalog has none.
func NameFor(code string) string {
	if n, ok := Names[code]; ok {
		return n
	}
	return code
}

// CreditFor returns the credit weight for a course. Everything is 3 credits
// except the capstone.
func CreditFor(code string) float64 {
	if code == CapstoneCode {
		return capstoneCredit
	}
	return defaultCredit
}

// Categorize labels a course for the given program ("CSE" or "CS").
func Categorize(code, program string) string {
	core := CoreCSE
	if program == "CS" {
		core = CoreCS
	}
	switch {
	case member(core, code):
		return "Core"
	case member(CompulsoryGenEd, code):
		return "Compulsory General Education"
	case member(Electives, code):
		return "CSE Elective"
	case member(ScienceStream, code):
		return "Science Stream"
	case member(ArtsStream, code):
		return "Arts Stream"
	case member(SocialScienceStream, code):
		return "Social Science Stream"
	case member(CSTStream, code):
		return "CST Stream"
	default:
		return "Other"
	}
}

// Requirements describes the credit targets for a degree program.
type Requirements struct {
	TotalCredits    int `json:"total_credits"`
	CoreCredits     int `json:"core_credits"`
	GenEdCredits    int `json:"general_ed_credits"`
	ElectiveCredits int `json:"elective_credits"`
}

// RequirementsFor returns the credit requirements for a program. Unknown
// programs get the CSE defaults.
func RequirementsFor(program string) Requirements {
	if program == "CS" {
		return Requirements{
			TotalCredits:    124,
			CoreCredits:     len(CoreCS)*defaultCredit + capstoneCredit,
			GenEdCredits:    36,
			ElectiveCredits: 12,
		}
	}
	return Requirements{
		TotalCredits:    136,
		CoreCredits:     len(CoreCSE)*defaultCredit + capstoneCredit,
		GenEdCredits:    36,
		ElectiveCredits: 18,
	}
}

// Unlocked returns the courses whose prerequisites are all satisfied by the
// completed set, excluding courses already completed. Sorted.
func Unlocked(completed []string) []string {
	done := set(completed...)

	// Invert the unlock graph into course -> prerequisites.
	prereqs := map[string][]string{}
	for course, unlocks := range Unlocks {
		for _, u := range unlocks {
			prereqs[u] = append(prereqs[u], course)
		}
	}

	var out []string
	for course := range Unlocks {
		if _, ok := done[course]; ok {
			continue
		}
		ready := true
		for _, p := range prereqs[course] {
			if _, ok := done[p]; !ok {
				ready = false
				break
			}
		}
		if ready {
			out = append(out, course)
		}
	}
	sort.Strings(out)
	return out
}

// GenEdPlan is a suggested spread of general-education stream courses.
type GenEdPlan struct {
	Picks                  []GenEdPick `json:"plan"`
	ArtsDone               int         `json:"arts_completed"`
	SocialScienceDone      int         `json:"social_science_completed"`
	CSTDone                int         `json:"cst_completed"`
	ScienceDone            int         `json:"science_completed"`
	TotalStreamCoursesDone int         `json:"total_completed"`
	RemainingSlots         int         `json:"remaining_slots"`
}

type GenEdPick struct {
	Stream string `json:"stream"`
	Course string `json:"course"`
}

// PlanGenEd suggests one course from each stream the student has not touched
// yet, in priority order Arts, Social Science, CST, Science, until maxCourses
// stream slots are used.
func PlanGenEd(completed []string, maxCourses int) GenEdPlan {
	done := set(completed...)

	plan := GenEdPlan{
		ArtsDone:          countIn(done, ArtsStream),
		SocialScienceDone: countIn(done, SocialScienceStream),
		CSTDone:           countIn(done, CSTStream),
		ScienceDone:       countIn(done, ScienceStream),
	}
	plan.TotalStreamCoursesDone = plan.ArtsDone + plan.SocialScienceDone + plan.CSTDone + plan.ScienceDone
	plan.RemainingSlots = maxCourses - plan.TotalStreamCoursesDone

	pick := func(stream string, pool map[string]struct{}, completedInStream int) {
		if completedInStream > 0 || plan.RemainingSlots <= 0 {
			return
		}
		if c, ok := firstAvailable(pool, done); ok {
			plan.Picks = append(plan.Picks, GenEdPick{Stream: stream, Course: c})
			plan.RemainingSlots--
		}
	}
	pick("Arts", ArtsStream, plan.ArtsDone)
	pick("Social Science", SocialScienceStream, plan.SocialScienceDone)
	pick("CST", CSTStream, plan.CSTDone)
	pick("Science", ScienceStream, plan.ScienceDone)
	return plan
}

func member(s map[string]struct{}, code string) bool {
	_, ok := s[code]
	return ok
}

func countIn(done, stream map[string]struct{}) int {
	n := 0
	for c := range done {
		if _, ok := stream[c]; ok {
			n++
		}
	}
	return n
}

func firstAvailable(pool, done map[string]struct{}) (string, bool) {
	codes := make([]string, 0, len(pool))
	for c := range pool {
		if _, ok := done[c]; !ok {
			codes = append(codes, c)
		}
	}
	if len(codes) == 0 {
		return "", false
	}
	sort.Strings(codes)
	return codes[0], true
}
