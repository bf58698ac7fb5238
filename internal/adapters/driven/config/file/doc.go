// Package file keeps settings in a TOML file, config.toml, inside the
// config directory (~/.valuesort unless --config-dir says otherwise).
package file
