// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package recommend

import (
	"math"
	"sort"
	"strings"

	"github.com/tomtom215/nutriprofile/internal/models"
)

// FeatureVector is a preprocessed HealthRecord.
type FeatureVector []float64

// Preprocessor applies the training-time column transform. It is immutable
// after construction.
type Preprocessor struct {
	numeric     []NumericFeature
	categorical []CategoricalFeature
	width       int
}

// NewPreprocessor checks the parameters against the input schema: every
// numeric and categorical field must appear exactly once, every std must be
// positive and each vocabulary must equal the field's allowed values.
func NewPreprocessor(numeric []NumericFeature, categorical []CategoricalFeature) (*Preprocessor, error) {
	if err := checkFeatureNames("numeric", names(numeric, func(f NumericFeature) string { return f.Name }), models.NumericFeatures()); err != nil {
		return nil, err
	}
	if err := checkFeatureNames("categorical", names(categorical, func(f CategoricalFeature) string { return f.Name }), models.CategoricalFeatures()); err != nil {
		return nil, err
	}

	width := len(numeric)
	for _, f := range numeric {
		if f.Std <= 0 || math.IsNaN(f.Std) || math.IsInf(f.Std, 0) || math.IsNaN(f.Mean) || math.IsInf(f.Mean, 0) {
			return nil, configErrorf("preprocessor", "feature %s has invalid parameters (mean=%v, std=%v)", f.Name, f.Mean, f.Std)
		}
	}
	for _, f := range categorical {
		if !sameSet(f.Categories, models.AllowedValues[f.Name]) {
			return nil, configErrorf("preprocessor", "feature %s vocabulary %v does not match allowed values %v",
				f.Name, f.Categories, models.AllowedValues[f.Name])
		}
		width += len(f.Categories)
	}

	return &Preprocessor{
		numeric:     append([]NumericFeature(nil), numeric...),
		categorical: cloneCategorical(categorical),
		width:       width,
	}, nil
}

// Width is the length of every vector produced by Transform.
func (p *Preprocessor) Width() int {
	return p.width
}

// Transform maps rec into feature space: numerics as (x-mean)/std, then one
// indicator per category.
func (p *Preprocessor) Transform(rec *models.HealthRecord) (FeatureVector, error) {
	out := make(FeatureVector, 0, p.width)
	for _, f := range p.numeric {
		v, ok := rec.Numeric(f.Name)
		if !ok {
			return nil, configErrorf("preprocessor", "unknown numeric feature %s", f.Name)
		}
		out = append(out, (v-f.Mean)/f.Std)
	}
	for _, f := range p.categorical {
		v, ok := rec.Categorical(f.Name)
		if !ok {
			return nil, configErrorf("preprocessor", "unknown categorical feature %s", f.Name)
		}
		matched := false
		for _, c := range f.Categories {
			if c == v {
				out = append(out, 1)
				matched = true
			} else {
				out = append(out, 0)
			}
		}
		if !matched {
			return nil, configErrorf("preprocessor", "value %q of %s is not in the trained vocabulary", v, f.Name)
		}
	}
	return out, nil
}

func names[T any](items []T, name func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = name(it)
	}
	return out
}

func checkFeatureNames(kind string, got, want []string) error {
	seen := make(map[string]bool, len(got))
	for _, n := range got {
		if seen[n] {
			return configErrorf("preprocessor", "duplicate %s feature %s", kind, n)
		}
		seen[n] = true
	}
	if !sameSet(got, want) {
		return configErrorf("preprocessor", "%s features %v do not match schema %v", kind, got, want)
	}
	return nil
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	return strings.Join(as, "\x00") == strings.Join(bs, "\x00")
}

func cloneCategorical(in []CategoricalFeature) []CategoricalFeature {
	out := make([]CategoricalFeature, len(in))
	for i, f := range in {
		out[i] = CategoricalFeature{Name: f.Name, Categories: append([]string(nil), f.Categories...)}
	}
	return out
}
