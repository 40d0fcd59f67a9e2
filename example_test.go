package calc_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/zephyrtronium/calc"
)

func ExampleParse() {
	env := calc.NewEnv()
	for _, line := range []string{"x = 2 + 3*4", "(x - 4) / 5", "x/0"} {
		r, err := calc.Parse(calc.Tokenize(line), env)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Println(r)
	}

	// Output:
	// 14
	// 2
	// Error: Division by zero
}

func ExampleTokenize() {
	fmt.Printf("%q\n", calc.Tokenize("x=3+4"))
	fmt.Printf("%q\n", calc.Tokenize("(1 + 2) * 3"))

	// Output:
	// ["x" "=" "3" "+" "4"]
	// ["(" "1" "+" "2" ")" "*" "3"]
}

func ExampleSession_Run() {
	in := strings.NewReader("r = 2\nr * r * 3\nq\nexit\n")
	s := calc.NewSession(nil, calc.Prompt(""))
	if err := s.Run(context.Background(), in, os.Stdout); err != nil {
		panic(err)
	}

	// Output:
	// 2
	// 12
	// Error: Invalid token
}
