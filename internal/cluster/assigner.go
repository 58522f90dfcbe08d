// Package cluster buckets catalog courses into topical clusters once,
// at catalog-load time.
package cluster

import (
	"sort"
	"strings"

	"github.com/openabit/advisor/internal/knowledge"
	"github.com/openabit/advisor/internal/model"
)

// Assign returns the cluster key for a course, or "" when no rule
// matches. Rules are evaluated in priority order and the first match
// wins; collisions between keyword groups are resolved by rule order,
// not by best match.
func Assign(course model.Course, rules []knowledge.AssignmentRule) string {
	name := strings.ToLower(course.Name)

	for _, rule := range rules {
		if !containsAny(name, rule.Keywords) {
			continue
		}
		if len(rule.Qualifiers) > 0 && !containsAny(name, rule.Qualifiers) {
			continue
		}
		return rule.Cluster
	}
	return ""
}

// Index holds the frozen cluster catalog for one engine instance.
// Course lists only grow during New; afterwards the index is read-only
// and safe for concurrent use.
type Index struct {
	clusters map[string]*model.CourseCluster
}

// New builds the cluster index from the catalog. Every course lands in
// at most one cluster; unmatched courses stay unclustered but remain
// visible to scoring.
func New(programs []model.Program) *Index {
	clusters := knowledge.Clusters()
	rules := sortedRules()

	for _, program := range programs {
		for _, course := range program.Courses {
			key := Assign(course, rules)
			if key == "" {
				continue
			}
			if c, ok := clusters[key]; ok {
				c.Courses = append(c.Courses, course)
			}
		}
	}

	return &Index{clusters: clusters}
}

// Cluster returns a copy of the named cluster.
func (ix *Index) Cluster(key string) (model.CourseCluster, bool) {
	c, ok := ix.clusters[key]
	if !ok {
		return model.CourseCluster{}, false
	}
	return *c, true
}

// HasCourses reports whether the named cluster received any courses.
func (ix *Index) HasCourses(key string) bool {
	c, ok := ix.clusters[key]
	return ok && len(c.Courses) > 0
}

// Keys returns the cluster keys in deterministic order.
func (ix *Index) Keys() []string {
	keys := make([]string, 0, len(ix.clusters))
	for k := range ix.clusters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedRules() []knowledge.AssignmentRule {
	rules := knowledge.AssignmentRules()
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	return rules
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
