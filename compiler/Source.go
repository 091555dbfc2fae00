package compiler

import "os"

// ReadSource loads a translation unit's text for the lexical module
// scanner : every backend without a native scanner
// falls back to this same read-and-scan path.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
