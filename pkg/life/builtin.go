package life

// The built-in library: still lifes, oscillators, and ships from the usual
// public catalogs. Registration order is the order shown in help text.
func init() {
	Register("block", "XX/XX")
	Register("blink", "XXX")
	Register("bounce", "XX/XX/..XX/..XX")
	Register("glider", ".X/..X/XXX")
	Register("spaceship", ".XXXX/X...X/....X/X..X")
	Register("expanding", "......X/....X.XX/....X.X/....X/..X/X.X")
	Register("pulsar", "..XXX...XXX../"+
		"............./"+
		"X....X.X....X/"+
		"X....X.X....X/"+
		"X....X.X....X/"+
		"..XXX...XXX../"+
		"............./"+
		"..XXX...XXX../"+
		"X....X.X....X/"+
		"X....X.X....X/"+
		"X....X.X....X/"+
		"............./"+
		"..XXX...XXX..")
}
