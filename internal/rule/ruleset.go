// Package rule holds the ordered, mutable set of escalation rules.
package rule

import (
	"fmt"
	"strings"
	"sync"

	"escalation-srv/internal/model"
)

// Set is an ordered collection of escalation rules. Insertion order is the
// evaluation order, so it is preserved exactly through add, update and remove.
type Set struct {
	mu    sync.RWMutex
	rules []model.EscalationRule
}

// NewSet validates rules and builds a Set. An empty list is rejected: a
// monitor without rules can never escalate, which is a startup error.
func NewSet(rules []model.EscalationRule) (*Set, error) {
	if len(rules) == 0 {
		return nil, ErrEmptyRuleSet
	}

	seen := make(map[string]struct{}, len(rules))
	out := make([]model.EscalationRule, 0, len(rules))
	for _, r := range rules {
		r = normalize(r)
		if err := Validate(r); err != nil {
			return nil, err
		}
		if _, ok := seen[r.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRule, r.ID)
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}

	return &Set{rules: out}, nil
}

// All returns a copy of the rules in evaluation order.
func (s *Set) All() []model.EscalationRule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.EscalationRule, len(s.rules))
	for i, r := range s.rules {
		out[i] = r.Clone()
	}
	return out
}

// Len returns the number of rules.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rules)
}

// Get returns the rule with the given id.
func (s *Set) Get(id string) (model.EscalationRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexLocked(id); i >= 0 {
		return s.rules[i].Clone(), nil
	}
	return model.EscalationRule{}, fmt.Errorf("%w: %s", ErrRuleNotFound, id)
}

// Add appends a rule at the end of the evaluation order.
func (s *Set) Add(r model.EscalationRule) error {
	r = normalize(r)
	if err := Validate(r); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexLocked(r.ID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateRule, r.ID)
	}
	s.rules = append(s.rules, r)
	return nil
}

// Update replaces the rule with the given id in place, keeping its position.
// The stored id always stays id.
func (s *Set) Update(id string, r model.EscalationRule) error {
	r.ID = id
	r = normalize(r)
	if err := Validate(r); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrRuleNotFound, id)
	}
	s.rules[i] = r
	return nil
}

// Remove deletes the rule with the given id. The last rule cannot be
// removed, matching the startup check in NewSet.
func (s *Set) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrRuleNotFound, id)
	}
	if len(s.rules) == 1 {
		return fmt.Errorf("%w: %s is the last rule", ErrEmptyRuleSet, id)
	}
	s.rules = append(s.rules[:i], s.rules[i+1:]...)
	return nil
}

// normalize returns a copy of r with categories trimmed and lowercased, the
// form complaints are stored in.
func normalize(r model.EscalationRule) model.EscalationRule {
	r = r.Clone()
	for i, c := range r.Conditions.Category {
		r.Conditions.Category[i] = strings.ToLower(strings.TrimSpace(c))
	}
	return r
}

func (s *Set) indexLocked(id string) int {
	for i, r := range s.rules {
		if r.ID == id {
			return i
		}
	}
	return -1
}
