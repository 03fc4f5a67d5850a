// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package recommend

import "math"

// NumClusters is fixed by the trained model and the profile table.
const NumClusters = 6

// ClusterModel holds the frozen K-Means centroids.
type ClusterModel struct {
	centroids [][]float64
	dim       int
}

// NewClusterModel requires exactly NumClusters centroids of length dim.
func NewClusterModel(centroids [][]float64, dim int) (*ClusterModel, error) {
	if len(centroids) != NumClusters {
		return nil, configErrorf("cluster model", "expected %d centroids, got %d", NumClusters, len(centroids))
	}
	cs := make([][]float64, len(centroids))
	for i, c := range centroids {
		if len(c) != dim {
			return nil, configErrorf("cluster model", "centroid %d has %d dimensions, feature vector has %d", i, len(c), dim)
		}
		for _, x := range c {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, configErrorf("cluster model", "centroid %d contains a non-finite value", i)
			}
		}
		cs[i] = append([]float64(nil), c...)
	}
	return &ClusterModel{centroids: cs, dim: dim}, nil
}

// Assign returns the index of the nearest centroid by squared Euclidean
// distance. Ties go to the lowest index.
func (m *ClusterModel) Assign(v FeatureVector) (int, error) {
	if len(v) != m.dim {
		return 0, configErrorf("cluster model", "feature vector has %d dimensions, want %d", len(v), m.dim)
	}
	best, bestDist := 0, math.Inf(1)
	for i, c := range m.centroids {
		var d float64
		for j, x := range v {
			diff := x - c[j]
			d += diff * diff
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, nil
}
