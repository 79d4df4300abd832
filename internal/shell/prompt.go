package shell

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/iliyamo/booking-manager/internal/model"
)

func (s *Shell) readLine(prompt string) string {
	fmt.Print(prompt)
	if !s.in.Scan() {
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

// readInt keeps prompting until it gets an integer in [min, max].
func (s *Shell) readInt(prompt string, min, max int) int {
	for {
		v, err := strconv.Atoi(s.readLine(prompt))
		if err != nil {
			fmt.Println("Enter a valid number.")
			continue
		}
		if v < min || v > max {
			fmt.Printf("Enter a number between %d and %d.\n", min, max)
			continue
		}
		return v
	}
}

// readID reads a positive identifier.  An empty line cancels the
// operation and returns 0.
func (s *Shell) readID(prompt string) int64 {
	for {
		line := s.readLine(prompt)
		if line == "" {
			return 0
		}
		id, err := strconv.ParseInt(line, 10, 64)
		if err != nil || id <= 0 {
			fmt.Println("Enter a valid id.")
			continue
		}
		return id
	}
}

// readTime parses a timestamp in the dd/MM/yyyy HH:mm wire format.
func (s *Shell) readTime(prompt string) (time.Time, error) {
	return time.Parse(model.TimeLayout, s.readLine(prompt))
}

// confirm asks a yes/no question; only "y" (case-insensitive) is a yes.
func (s *Shell) confirm(prompt string) bool {
	return strings.EqualFold(s.readLine(prompt), "y")
}

func (s *Shell) pause() {
	fmt.Print("\nPress ENTER to continue...")
	s.in.Scan()
}

func (s *Shell) banner(title string) {
	fmt.Println()
	fmt.Println("---", title, "---")
	fmt.Println()
}

func badTimeFormat() {
	fmt.Println("\nInvalid timestamp! Use dd/MM/yyyy HH:mm (e.g. 31/12/2026 18:30).")
}
