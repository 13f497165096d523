package pipemaze

// Solve parses lines, traces the loop and returns both answers.
func Solve(lines []string, opts ...Option) (Result, error) {
	m, err := ParseMaze(lines)
	if err != nil {
		return Result{}, err
	}
	loop, err := Trace(m, opts...)
	if err != nil {
		return Result{}, err
	}
	return Result{Steps: loop.Steps(), Area: loop.Area()}, nil
}

// Part1 returns the number of steps to the loop cell farthest from the entrance.
func Part1(lines []string) (int, error) {
	r, err := Solve(lines)
	return r.Steps, err
}

// Part2 returns the number of cells enclosed by the loop.
func Part2(lines []string) (int, error) {
	r, err := Solve(lines)
	return r.Area, err
}
