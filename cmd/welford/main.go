package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"welford/stats"
)

// Interactive demo: accumulate numbers from stdin until a line fails to
// parse, then report the running statistics.
func main() {
	welford := stats.NewWelford[float64]()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("Please enter a real number (anything else to quit): ")
		if !scanner.Scan() {
			break
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(scanner.Text()), 64)
		if err != nil {
			break
		}
		welford.Push(value)
	}
	fmt.Println()

	if mean, ok := welford.Mean(); ok {
		fmt.Printf("mean: %v\n", mean)
	} else {
		fmt.Println("mean: unavailable")
	}
	if variance, ok := welford.Var(); ok {
		fmt.Printf("variance: %v\n", variance)
	} else {
		fmt.Println("variance: unavailable")
	}
}
