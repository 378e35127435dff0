package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// AppState represents the persistent colorization defaults. CLI flags
// override these per invocation.
type AppState struct {
	PaletteSize int    `json:"palette_size"`
	Theme       string `json:"theme"` // "auto", "dark" or "light"
}

// DefaultState returns the state used when nothing has been persisted yet
func DefaultState() *AppState {
	return &AppState{
		PaletteSize: 32,
		Theme:       "auto",
	}
}

// GetPrismDir returns the path to the .prism directory
func GetPrismDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".prism"), nil
}

// EnsurePrismDir creates the .prism directory if it doesn't exist
func EnsurePrismDir() error {
	prismDir, err := GetPrismDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(prismDir, 0755)
}

// getStateFilePath returns the path to the state.json file
func getStateFilePath() (string, error) {
	prismDir, err := GetPrismDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(prismDir, "state.json"), nil
}

// LoadState loads the persisted defaults from disk
func LoadState() (*AppState, error) {
	stateFile, err := getStateFilePath()
	if err != nil {
		return nil, err
	}

	// If file doesn't exist, return default state
	if _, err := os.Stat(stateFile); os.IsNotExist(err) {
		return DefaultState(), nil
	}

	data, err := os.ReadFile(stateFile)
	if err != nil {
		return nil, err
	}

	var state AppState
	if err := json.Unmarshal(data, &state); err != nil {
		// If JSON is invalid, return default state
		return DefaultState(), nil
	}

	// Guard against hand-edited nonsense
	if state.PaletteSize < 1 {
		state.PaletteSize = DefaultState().PaletteSize
	}
	if state.Theme != "dark" && state.Theme != "light" {
		state.Theme = "auto"
	}

	return &state, nil
}

// SaveState saves the defaults to disk
func SaveState(state *AppState) error {
	if err := EnsurePrismDir(); err != nil {
		return err
	}

	stateFile, err := getStateFilePath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(stateFile, data, 0644)
}
