// Command linsolve is a small interactive shell around the gauss engine:
// it reads augmented-matrix systems from stdin, solves them, and prints the
// classification and solution. All parsing/validation lives in the builder
// package; this file is deliberately thin I/O glue.
//
// Session protocol:
//
//	> 2 2            — m equations, n variables
//	  1 1 3          — m rows of n coefficients + RHS constant
//	  2 3 8
//	unique solution: x0=1, x1=2
//	> exit           — quits (so does EOF / Ctrl-D)
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/linsolve/builder"
	"github.com/katalvlaran/linsolve/gauss"
)

const prompt = "> "

func main() {
	in := bufio.NewScanner(os.Stdin)
	out := os.Stdout

	fmt.Fprintln(out, "linsolve — Gauss-Jordan linear system solver")
	fmt.Fprintln(out, `enter "m n" then m rows of n+1 numbers; "exit" quits`)

	for {
		fmt.Fprint(out, prompt)
		if !in.Scan() {
			return // EOF ends the session like "exit"
		}
		line := strings.TrimSpace(in.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			return
		}

		var m, n int
		if _, err := fmt.Sscanf(line, "%d %d", &m, &n); err != nil || m < 0 || n < 0 {
			fmt.Fprintf(out, "expected \"m n\" (non-negative integers), got %q\n", line)
			continue
		}

		lines := make([]string, 0, m)
		for len(lines) < m && in.Scan() {
			lines = append(lines, in.Text())
		}
		if len(lines) < m {
			fmt.Fprintf(out, "input ended after %d of %d rows\n", len(lines), m)
			return
		}

		mat, err := rows(lines, m, n)
		if err != nil {
			fmt.Fprintln(out, "error:", err)
			continue
		}
		res, err := gauss.Solve(mat, m, n, nil)
		if err != nil {
			fmt.Fprintln(out, "error:", err)
			continue
		}
		fmt.Fprintln(out, res)
	}
}

// rows builds the augmented matrix: an empty system needs no parsing.
func rows(lines []string, m, n int) ([][]float64, error) {
	if m == 0 {
		return builder.New(0, n)
	}

	return builder.ParseSystem(lines, n)
}
