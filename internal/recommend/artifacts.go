// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package recommend

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
)

// NumericFeature holds the standardization parameters of one numeric column.
type NumericFeature struct {
	Name string  `json:"name"`
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// CategoricalFeature holds the one-hot vocabulary of one categorical column.
// Categories are expanded in the order given.
type CategoricalFeature struct {
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
}

// ModelArtifact is the frozen output of the offline training job.
type ModelArtifact struct {
	Version             string               `json:"version"`
	NumericFeatures     []NumericFeature     `json:"numeric_features"`
	CategoricalFeatures []CategoricalFeature `json:"categorical_features"`
	Centroids           [][]float64          `json:"centroids"`
}

// LoadModelArtifact reads and decodes the JSON model artifact at path.
// Shape checks happen in NewPreprocessor and NewClusterModel.
func LoadModelArtifact(path string) (*ModelArtifact, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, &ConfigError{Component: "model artifact", Err: err}
	}
	defer f.Close()

	art, err := ParseModelArtifact(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return art, nil
}

// ParseModelArtifact decodes a model artifact from r.
func ParseModelArtifact(r io.Reader) (*ModelArtifact, error) {
	var art ModelArtifact
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&art); err != nil {
		return nil, &ConfigError{Component: "model artifact", Err: fmt.Errorf("decode: %w", err)}
	}
	if len(art.NumericFeatures) == 0 && len(art.CategoricalFeatures) == 0 {
		return nil, configErrorf("model artifact", "no features declared")
	}
	return &art, nil
}
