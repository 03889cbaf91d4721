// Package solvedlist writes the collected problem ids to disk.
package solvedlist

import (
	"fmt"
	"os"
	"strings"
)

func FileName(username string) string {
	return fmt.Sprintf("kattis_solved_problems_%s.txt", username)
}

// Format renders one id per line, every line newline-terminated.
func Format(problems []string) string {
	var out strings.Builder
	for _, id := range problems {
		out.WriteString(id)
		out.WriteByte('\n')
	}
	return out.String()
}

func Write(path string, problems []string) error {
	return os.WriteFile(path, []byte(Format(problems)), 0644)
}
