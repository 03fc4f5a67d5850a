// NutriProfile - Health-Profile Clustering and Food Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriprofile

// Package config loads NutriProfile configuration with Koanf v2.
//
// Sources are layered, later layers winning:
//
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML file: $CONFIG_PATH, ./config.yaml, /etc/nutriprofile/config.yaml
//  3. Environment variables, through an explicit name mapping
//
// Only mapped environment variables are read, so unrelated variables in the
// process environment never leak into the configuration.
//
// Example config.yaml:
//
//	server:
//	  port: 5000
//	artifacts:
//	  model_path: /srv/nutriprofile/model.json
//	  food_table_path: /srv/nutriprofile/nutrients.csv
//	recommend:
//	  filter_mode: cluster
//	security:
//	  cors_origins:
//	    - https://app.example.com
package config
