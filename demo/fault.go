package demo

// faultDenominator is deliberately zero. Keeping it in a variable stops the
// compiler from rejecting the division as a constant expression.
var faultDenominator = 0

// InjectFault deliberately divides by zero so crash-capture tooling has a
// reproducible failure signature. The resulting runtime panic is never
// recovered below the process entrypoint, which prints a one-line diagnostic
// and exits non-zero.
func InjectFault() {
	_ = 1 / faultDenominator
}
