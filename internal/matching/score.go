// Package matching scores and ranks job postings against a candidate's
// skill set.
package matching

import "strings"

// SkillScore returns the fraction of the job's declared skills that the
// candidate possesses, in [0, 1]. Comparison is case-insensitive and not
// symmetric: candidate skills the job does not ask for never change the
// score. Duplicate entries in jobSkills inflate the denominator exactly as
// the legacy engine counted them; candidate bug, kept for compatibility.
func SkillScore(jobSkills []string, candidateSkills map[string]bool) float64 {
	if len(jobSkills) == 0 {
		return 0
	}

	matched := 0
	for _, skill := range jobSkills {
		if candidateSkills[strings.ToLower(skill)] {
			matched++
		}
	}

	return float64(matched) / float64(len(jobSkills))
}
