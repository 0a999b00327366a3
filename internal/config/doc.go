// Package config manages user-level settings stored at ~/.loadout/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// templates_root, which points the scaffolder at an alternate template payload.
package config
