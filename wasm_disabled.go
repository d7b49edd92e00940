//go:build !(js && wasm)

package main

import "os"

func getUsername() string {
	if name := os.Getenv("NEWYEAR_USER"); name != "" {
		return name
	}
	return "newyear-dev"
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}
