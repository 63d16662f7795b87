// Package types provides type definitions for structured data used throughout the career-compass system.
package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Skill is the canonical internal representation of a skill: a name plus an
// occurrence score. Legacy data stores skills either as plain strings or as
// objects, so UnmarshalJSON accepts both shapes and normalizes here at the
// boundary instead of branching deep inside scoring logic.
type Skill struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// UnmarshalJSON accepts either a JSON string ("react") or an object
// ({"name": "react", "score": 3}). A bare string gets score 0.
func (s *Skill) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		s.Name = name
		s.Score = 0
		return nil
	}

	var obj struct {
		Name  string `json:"name"`
		Score int    `json:"score"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("skill must be a string or an object with a name: %w", err)
	}
	s.Name = obj.Name
	s.Score = obj.Score
	return nil
}

// SkillNames is a list of skill names that tolerates mixed legacy encodings:
// elements may be strings or {name} objects.
type SkillNames []string

// UnmarshalJSON normalizes each element to its name string.
func (n *SkillNames) UnmarshalJSON(data []byte) error {
	var skills []Skill
	if err := json.Unmarshal(data, &skills); err != nil {
		return err
	}
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	*n = names
	return nil
}

// SkillSet builds a lowercased membership set from a list of skills.
func SkillSet(skills []Skill) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		name := strings.ToLower(strings.TrimSpace(s.Name))
		if name != "" {
			set[name] = true
		}
	}
	return set
}

// Names returns the name of each skill, preserving order.
func Names(skills []Skill) []string {
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}
	return names
}
