package solver_test

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/roadwork/config"
	"github.com/katalvlaran/roadwork/instance"
	"github.com/katalvlaran/roadwork/solver"
)

// ExampleSolver_Solve schedules the five roads of a kite-shaped town over
// three days, at most two closures a day.
func ExampleSolver_Solve() {
	in := `4 5 3 2
1 2 1
1 3 4
1 4 3
2 4 2
3 4 5
0 0
10 0
0 10
10 10
`
	inst, err := instance.Read(strings.NewReader(in))
	if err != nil {
		fmt.Println(err)
		return
	}
	cfg := config.Default()
	cfg.Search.TimeLimit = time.Minute
	cfg.Search.MaxIterations = 500

	rep, err := solver.New(cfg).Solve(context.Background(), inst)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("edges:", len(rep.Schedule))
	fmt.Println("overloaded days:", rep.Overloaded)
	// Output:
	// edges: 5
	// overloaded days: 0
}
