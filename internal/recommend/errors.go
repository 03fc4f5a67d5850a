// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

package recommend

import "fmt"

// ConfigError reports an inconsistency in the loaded artifacts. It is an
// operator fault: the request was valid but the service cannot serve it.
type ConfigError struct {
	Component string
	Err       error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Component, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configErrorf(component, format string, args ...any) *ConfigError {
	return &ConfigError{Component: component, Err: fmt.Errorf(format, args...)}
}
