package driver

// RegridWindow exposes the window computation for tests.
func (l *Loop) RegridWindow(step int) (int, int) {
	return l.regridWindow(step)
}

// ShouldRegrid exposes the regrid trigger for tests.
func (l *Loop) ShouldRegrid(step int) bool {
	return l.shouldRegrid(step)
}
