package parts

import (
	"log"
	"os"
	"sync"
)

var (
	cssOnce   sync.Once
	cssCached string
)

// GetCriticalCSS reads the critical CSS file and returns it as a string.
func GetCriticalCSS() (string, error) {
	css, err := os.ReadFile("assets/critical.css")
	if err != nil {
		log.Println("Critical CSS error:", err)
		return "", err
	}
	return string(css), nil
}

// GetCriticalCSSCached reads the critical CSS once and serves it from memory.
func GetCriticalCSSCached() (string, error) {
	cssOnce.Do(func() {
		css, err := GetCriticalCSS()
		if err != nil {
			return
		}
		cssCached = css
	})
	return cssCached, nil
}
