// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package recommend

import "strings"

// RecommendationType is the diet family recommended for a profile.
type RecommendationType int

const (
	LowCarb RecommendationType = iota
	LowFat
	Balanced
)

var typeNames = [...]string{"Low-Carb", "Low-Fat", "Balanced"}

var typeLabels = [...]string{"Low-Carb Foods", "Low-Fat Foods", "Balanced (Low-Calorie) Foods"}

func (t RecommendationType) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Unknown"
	}
	return typeNames[t]
}

// Label is the client-facing text used in responses.
func (t RecommendationType) Label() string {
	if t < 0 || int(t) >= len(typeLabels) {
		return "Unknown"
	}
	return typeLabels[t]
}

// ParseRecommendationType accepts the short name or the label, ignoring case
// and surrounding space.
func ParseRecommendationType(s string) (RecommendationType, bool) {
	s = strings.TrimSpace(s)
	for i := range typeNames {
		if strings.EqualFold(s, typeNames[i]) || strings.EqualFold(s, typeLabels[i]) {
			return RecommendationType(i), true
		}
	}
	return 0, false
}

// Profile describes one cluster.
type Profile struct {
	Cluster int
	Name    string
	Type    RecommendationType
}

var profiles = [NumClusters]Profile{
	{Cluster: 0, Name: "Prediabetic, Active Profile", Type: LowCarb},
	{Cluster: 1, Name: "Older, Active Diabetic Profile", Type: LowCarb},
	{Cluster: 2, Name: "Active Diabetic with High Blood Pressure", Type: LowFat},
	{Cluster: 3, Name: "Low-Activity Diabetic with Very High Blood Sugar", Type: LowCarb},
	{Cluster: 4, Name: "Active Walker with High Blood Pressure", Type: LowFat},
	{Cluster: 5, Name: "High BMI (Obese) with Diabetes", Type: Balanced},
}

// ProfileFor returns the fixed profile of a cluster index.
func ProfileFor(cluster int) (Profile, error) {
	if cluster < 0 || cluster >= NumClusters {
		return Profile{}, configErrorf("profile table", "cluster %d outside [0,%d]", cluster, NumClusters-1)
	}
	return profiles[cluster], nil
}

// Profiles returns a copy of the whole table.
func Profiles() []Profile {
	out := make([]Profile, NumClusters)
	copy(out, profiles[:])
	return out
}
