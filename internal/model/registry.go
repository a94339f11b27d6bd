package model

import "molpredict/internal/port"

// RegistryInfo carries the release metadata of a loaded registry.
type RegistryInfo struct {
	Version      string
	Algorithm    string
	Backend      string
	FeatureCount int
}

// Registry is the immutable set of loaded classifiers: the level-1 gate, the
// per-group level-2 classifiers and the ordered group declarations. A nil
// Registry means models are not loaded for the lifetime of the process.
type Registry struct {
	level1 port.BinaryClassifier
	level2 map[string]port.BinaryClassifier
	groups []string
	info   RegistryInfo
}

// NewRegistry assembles a registry from loaded classifiers. The group slice
// fixes the declaration order used everywhere downstream.
func NewRegistry(level1 port.BinaryClassifier, level2 map[string]port.BinaryClassifier, groups []string, info RegistryInfo) *Registry {
	ownedGroups := make([]string, len(groups))
	copy(ownedGroups, groups)
	ownedLevel2 := make(map[string]port.BinaryClassifier, len(level2))
	for group, clf := range level2 {
		ownedLevel2[group] = clf
	}
	if info.FeatureCount <= 0 {
		info.FeatureCount = DefaultFeatureCount
	}
	return &Registry{level1: level1, level2: ownedLevel2, groups: ownedGroups, info: info}
}

// Level1 returns the binary gate classifier.
func (r *Registry) Level1() port.BinaryClassifier {
	return r.level1
}

// Level2 returns the classifier for a group, if one was loaded.
func (r *Registry) Level2(group string) (port.BinaryClassifier, bool) {
	clf, ok := r.level2[group]
	return clf, ok
}

// Level2Count reports how many group classifiers were loaded.
func (r *Registry) Level2Count() int {
	return len(r.level2)
}

// Groups returns the declared group names in order.
func (r *Registry) Groups() []string {
	out := make([]string, len(r.groups))
	copy(out, r.groups)
	return out
}

// FeatureCount is the vector length the classifiers expect.
func (r *Registry) FeatureCount() int {
	return r.info.FeatureCount
}

// Version is the release version string.
func (r *Registry) Version() string {
	return r.info.Version
}

// Algorithm describes the model family in the release.
func (r *Registry) Algorithm() string {
	return r.info.Algorithm
}

// Backend names the classifier backend that loaded the release.
func (r *Registry) Backend() string {
	return r.info.Backend
}
