package pattern

// Still lifes, oscillators, spaceships and methuselahs from the Life
// folklore. All drawn with a top-left origin.
var catalog = []Pattern{
	{
		Name: "block",
		Desc: "2x2 still life, the simplest stable object",
		Rows: []string{
			"##",
			"##",
		},
	},
	{
		Name: "beehive",
		Desc: "six-cell still life",
		Rows: []string{
			".##.",
			"#..#",
			".##.",
		},
	},
	{
		Name: "blinker",
		Desc: "period-2 oscillator, three cells in a row",
		Rows: []string{
			"###",
		},
	},
	{
		Name: "toad",
		Desc: "period-2 oscillator",
		Rows: []string{
			".###",
			"###.",
		},
	},
	{
		Name: "beacon",
		Desc: "period-2 oscillator, two blocks flashing at the corner",
		Rows: []string{
			"##..",
			"##..",
			"..##",
			"..##",
		},
	},
	{
		Name: "pulsar",
		Desc: "period-3 oscillator with fourfold symmetry",
		Rows: []string{
			"..###...###..",
			".............",
			"#....#.#....#",
			"#....#.#....#",
			"#....#.#....#",
			"..###...###..",
			".............",
			"..###...###..",
			"#....#.#....#",
			"#....#.#....#",
			"#....#.#....#",
			".............",
			"..###...###..",
		},
	},
	{
		Name: "glider",
		Desc: "smallest spaceship, moves one cell diagonally every 4 generations",
		Rows: []string{
			".#.",
			"..#",
			"###",
		},
	},
	{
		Name: "lwss",
		Desc: "lightweight spaceship, moves two cells horizontally every 4 generations",
		Rows: []string{
			".#..#",
			"#....",
			"#...#",
			"####.",
		},
	},
	{
		Name: "r-pentomino",
		Desc: "methuselah, five cells that churn for over a thousand generations",
		Rows: []string{
			".##",
			"##.",
			".#.",
		},
	},
	{
		Name: "acorn",
		Desc: "methuselah, seven cells that run for thousands of generations",
		Rows: []string{
			".#.....",
			"...#...",
			"##..###",
		},
	},
	{
		Name: "gosper-gun",
		Desc: "Gosper glider gun, emits a glider every 30 generations",
		Rows: []string{
			"........................#...........",
			"......................#.#...........",
			"............##......##............##",
			"...........#...#....##............##",
			"##........#.....#...##..............",
			"##........#...#.##....#.#...........",
			"..........#.....#.......#...........",
			"...........#...#....................",
			"............##......................",
		},
	},
}
